package main

import (
	"os"

	"github.com/gcbaptista/go-movie-analyzer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
