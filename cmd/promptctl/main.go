package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/prompt-optimizer/internal/infra/config"
	"github.com/yanqian/prompt-optimizer/internal/interface/cli"
	"github.com/yanqian/prompt-optimizer/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	deps, err := buildDeps(cfg, logger.NewTo(os.Stderr))
	if err != nil {
		return err
	}
	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}
