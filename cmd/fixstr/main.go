package main

import (
	"os"

	"github.com/mhr3/fixstr/cmd/fixstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
