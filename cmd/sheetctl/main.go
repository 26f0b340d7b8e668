package main

import (
	"fmt"
	"os"

	"github.com/Xenn-00/arbeitszeit-meister/cmd/sheetctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
