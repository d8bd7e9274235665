package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rubiojr/dlog/cmd"
	"github.com/rubiojr/dlog/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	// Variables already set in the environment win over .env entries.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:  "dlog",
		Usage: "Annotated console logging with a debug gate and log file tooling",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug-tier output",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		},
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.EmitCommand(),
			cmd.TailCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
