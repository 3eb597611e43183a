// SPDX-License-Identifier: MIT

// Command nashpoly solves bimatrix games through their best-response
// polytopes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/katalvlaran/nashpoly/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &cli.Env{
		Ctx:    ctx,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  quartz.NewReal(),
	}
	if err := cli.Execute(os.Args[1:], env); err != nil {
		fmt.Fprintf(os.Stderr, "nashpoly: %v\n", err)
		stop()
		os.Exit(1)
	}
}
