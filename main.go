// Package main provides the entrypoint for msg-app.
package main

import (
	"os"

	"github.com/isometry/msg-app/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
