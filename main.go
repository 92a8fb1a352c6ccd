// file: main.go
// version: 1.0.0
// guid: 3f8a1c2d-9b4e-4f7a-8c1d-2e5b6a7f9c0d

package main

import (
	"fmt"
	"os"

	"github.com/osmlint/roadname-checker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
