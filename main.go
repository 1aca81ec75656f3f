package main

import (
	"log"
	"os"

	"github.com/harithj/ascent/internal/cli"
	"github.com/harithj/ascent/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	os.Exit(cli.Execute())
}
