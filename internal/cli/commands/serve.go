package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/beastmatser/ti-basic-autocomplete/internal/cli/config"
	"github.com/beastmatser/ti-basic-autocomplete/internal/lsp"
	"github.com/beastmatser/ti-basic-autocomplete/internal/tooling"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Language Server Protocol server",
		Long: `Start the TI-Basic Language Server Protocol (LSP) server.

This command starts an LSP server that provides editor integration for
TI-Basic calculator programs:
  • Token completion (functions, keywords, colors, variables)
  • Diagnostics for spaced operators and all-uppercase words

The LSP server communicates via JSON-RPC over stdin/stdout.
It is typically started automatically by your editor/IDE.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Server-side defaults; clients with workspace/configuration support
	// override the cap per document.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	server := lsp.NewServer(&tooling.Config{
		MaxProblems: cfg.Diagnostics.MaxProblems,
	}, cfg.Log.Verbose)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run server
	return server.Run(ctx)
}
