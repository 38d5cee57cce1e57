// ABOUTME: Entry point for the krishi CLI
// ABOUTME: Terminal client for the Kerala Krishi Sahai farming assistant

package main

import (
	"fmt"
	"os"

	"github.com/krishisahai/krishi-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
