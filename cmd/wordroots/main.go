// Command wordroots loads a vocabulary corpus and answers anchor and root
// queries interactively, as one-shot commands, or over HTTP.
//
// Usage:
//
//	wordroots --corpus words.txt            # interactive loop
//	wordroots lookup anchor obdurate
//	wordroots lookup root dur
//	wordroots stats
//	wordroots serve
//
// Exit codes: 0 = success, 1 = error or lookup miss.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errNoResult) {
		fmt.Fprintf(os.Stderr, "wordroots: %v\n", err)
	}
	stop()
	os.Exit(1)
}
