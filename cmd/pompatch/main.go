package main

import (
	"os"

	"github.com/dshills/pompatch/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
