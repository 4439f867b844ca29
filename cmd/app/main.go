package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/passage-analyzer/internal/infra/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, config.ErrMissingAPIKey):
			fmt.Fprintln(os.Stderr, "❌ GROQ_API_KEY not found. Set it in the environment or in a .env file.")
		case errors.Is(err, errAlreadyReported):
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
