package main

import (
	"os"

	"github.com/flextcli/render/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
