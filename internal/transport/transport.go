// Package transport provides a new server-entity(by ginext) for the search node with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

// SearchProcessor is implemented by processor.Processor.
type SearchProcessor interface {
	ProcessInput(ctx context.Context, req *model.SearchRequest) *model.SearchResult
}

type handlers struct {
	proc SearchProcessor
	log  *zap.Logger
}

func NewSearchServer(addr string, proc SearchProcessor, log *zap.Logger) *http.Server {
	if log == nil {
		log = zap.NewNop()
	}
	h := handlers{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveSearch)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.log.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveSearch(ctx *ginext.Context) {
	var req model.SearchRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.log.Warn("failed to parse search request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse search request from body: " + err.Error()})
		return
	}

	res := h.proc.ProcessInput(ctx.Request.Context(), &req)
	h.log.Info("search request served",
		zap.String("request_id", res.RequestID),
		zap.Int("lines", res.Count),
		zap.Uint64("hash", res.HashSumm),
	)

	ctx.JSON(http.StatusOK, res)
}
