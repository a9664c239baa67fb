package main

import (
	"os"

	"github.com/arthur-debert/appin/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
