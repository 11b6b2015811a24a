package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"go.uber.org/zap"
)

func main() {
	// инициализировать параметры запуска узла
	nc, err := parser.InitNode(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch minigrepd: %q", err.Error())
		os.Exit(1)
	}

	zl, err := logger.New(nc)
	if err != nil {
		log.Printf("Failed to init logger: %q", err.Error())
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appmode.RunNode(ctx, nc, zl); err != nil {
		zl.Error("search node failed", zap.Error(err))
		_ = zl.Sync()
		stop()
		os.Exit(1)
	}
}
