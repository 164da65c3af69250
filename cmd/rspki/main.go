package main

import (
	"os"

	"github.com/ziliangpeng/rspki/cmd/rspki/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
