package main

import (
	"os"

	"github.com/preston-bernstein/pickup-teams-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
