// Command wordladder prints the shortest word ladder between two words.
//
//	wordladder cold warm
//	wordladder --strategy=bucket --dictionary-dir=/usr/share/ladder cold warm
//	wordladder            # prompts for both words
//
// Exit status is 0 when a ladder is printed, 1 when no ladder exists or the
// dictionary cannot be read, and 2 on usage errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
