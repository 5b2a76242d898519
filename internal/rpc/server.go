package rpc

import (
	"log/slog"
	"net/http"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/article-feed/internal/newsportal"
)

const articleNamespace = "article"

func New(logger *slog.Logger, manager *newsportal.Manager) http.Handler {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(articleNamespace, NewArticleService(manager, logger))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "article-feed", nil))

	return rpcServer
}
