package db

import (
	"context"
	"embed"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// ConnConfig converts go-pg options into a pgx connection config for database/sql consumers.
func ConnConfig(opt *pg.Options) (pgx.ConnConfig, error) {
	host, port, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("split database addr %q: %w", opt.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse database port %q: %w", port, err)
	}

	return pgx.ConnConfig{
		Host:     host,
		Port:     uint16(p),
		Database: opt.Database,
		User:     opt.User,
		Password: opt.Password,
	}, nil
}

// Migrate applies embedded migrations that have not been applied yet.
func Migrate(ctx context.Context, config pgx.ConnConfig) error {
	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
