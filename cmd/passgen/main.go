package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/passgen/passgen-go/internal/cli"
)

var version = "dev" // set by the linker

func main() {
	// A .env file may set WORDLIST_PATH; its absence is not an error for the CLI.
	_ = godotenv.Load()

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
