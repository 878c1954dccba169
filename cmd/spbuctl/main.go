package main

import (
	"os"

	"spbu-monitor-backend/cmd/spbuctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
