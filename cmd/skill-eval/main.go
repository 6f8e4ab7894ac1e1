package main

import (
	"os"

	"github.com/baaaaaaaka/skill-eval/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
