// Package main is the entrypoint for the siteshield CLI.
// It delegates all command handling to the cmd package and owns the
// process exit status.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/toyinlola/siteshield/cmd"
	"github.com/toyinlola/siteshield/pkg/interfaces"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	os.Exit(interfaces.ExitCode(err))
}
