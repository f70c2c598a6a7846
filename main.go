package main

import (
	"os"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
