package main

import (
	"github.com/solrange/fitsim/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
