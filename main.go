// ignition - starts a car, stops it, and announces it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ignition/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ignition: %v\n", err)
		os.Exit(1)
	}
}
