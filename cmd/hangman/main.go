package main

import (
	"github.com/mcoot/hangman-go/internal/cli"
)

func main() {
	cli.Execute()
}
