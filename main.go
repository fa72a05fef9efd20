package main

import (
	"github.com/quantara/salesdash/cmd"
)

func main() {
	cmd.Execute()
}
