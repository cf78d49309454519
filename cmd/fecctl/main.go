package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/arp_backend/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := cli.NewCLI(cli.Options{}).Execute(os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
