package appmode

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"go.uber.org/zap"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// RunNode serves search requests on nc.Address until ctx is cancelled.
// A failure to bind or serve is returned instead of being only logged.
func RunNode(ctx context.Context, nc *model.NodeConfig, log *zap.Logger) error {
	fields := []zap.Field{zap.String("env", nc.Env), zap.String("address", nc.Address)}
	if nc.Env == "prod" {
		fields = append(fields, zap.String("log_file", nc.Log.File), zap.Int("log_max_size_mb", nc.Log.MaxSize))
	}
	log.Info("search node config resolved", fields...)

	srv := transport.NewSearchServer(nc.Address, processor.Processor{}, log)
	srv.ReadHeaderTimeout = readHeaderTimeout

	// слушаем порт сразу, чтобы занятый адрес был ошибкой запуска
	ln, err := net.Listen("tcp", nc.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", nc.Address, err)
	}
	log.Info("search node running", zap.String("address", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("search node stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown search node %q correctly: %w", nc.Address, err)
	}
	log.Info("search node server is closed", zap.String("address", nc.Address))
	return nil
}
