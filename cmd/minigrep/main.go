package main

import (
	"context"
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
)

func main() {
	// сигналы не перехватываем: SIGINT/SIGTERM завершают процесс даже во время ожидания строки из stdin
	code := appmode.Run(context.Background(), appmode.Invocation{
		Args:      os.Args,
		LookupEnv: os.LookupEnv,
		Mode:      appmode.DetectMode(os.Stdin),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	})

	os.Exit(code)
}
