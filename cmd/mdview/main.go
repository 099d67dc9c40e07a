package main

import (
	"os"

	"github.com/vector76/mdview/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
