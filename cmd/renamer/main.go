package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nkarlsen/renamer"
)

func main() {
	if err := renamer.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var cfgErr *renamer.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
