package main

import (
	"os"
	"path/filepath"

	"github.com/dshills/isprime/internal/cli"
)

func main() {
	os.Exit(cli.Run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}
