package main

import (
	"os"

	"github.com/abhisek/doubtbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
