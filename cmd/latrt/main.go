package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/es-debug/latte-runtime/internal/application/latrt"
)

func main() {
	if err := latrt.Start(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error(fmt.Sprintf("latrt.Start(): %s", err))
		os.Exit(1)
	}
}
