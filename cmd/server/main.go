// Command server runs the circleback API: contact and interaction-log
// storage behind the REST surface the bot front end consumes.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asmirnova/circleback/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
