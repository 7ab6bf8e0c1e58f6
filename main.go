package main

import (
	"os"

	"github.com/accountapp/accountapp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
