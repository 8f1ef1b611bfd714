package main

import (
	"os"

	"github.com/okaidia/fatlens/cmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
