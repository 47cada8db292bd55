package main

import (
	"os"

	"portfolio-admin/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
