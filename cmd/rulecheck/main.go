package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInvalidDocuments) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
