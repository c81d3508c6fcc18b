// Command nestegg compares a 401k account to benchmark instruments.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/nestegg/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("cannot load .env: %v", err)
	}

	// Exits when invoked for shell completion.
	cmd.Completion().Complete("nestegg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}
