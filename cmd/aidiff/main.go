package main

import (
	"os"

	"github.com/dshills/aidiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
