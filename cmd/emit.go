package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rubiojr/dlog/pkg/config"
	"github.com/rubiojr/dlog/pkg/log"
	"github.com/urfave/cli/v3"
)

// emitOptions carries the emit command's settings.
type emitOptions struct {
	Debug   bool
	Tier    string
	Tag     string
	ToFile  string
	Stderr  bool
	Message []string
}

// EmitCommand creates the emit command
func EmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Append a log line from the command line, logger(1) style",
		ArgsUsage: "MESSAGE...",
		Description: "Writes one line through the logging layer. Debug-tier lines only print\n" +
			"when the gate is enabled (--debug, the config file, or DLOG_DEBUG=YES).",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tier",
				Aliases: []string{"t"},
				Usage:   "Tier to emit at: debug, normal or warning",
				Value:   "normal",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "Process tag shown in the line prefix (defaults to dlog)",
			},
			&cli.StringFlag{
				Name:  "to-file",
				Usage: "Append to this file instead of the configured log_file",
			},
			&cli.BoolFlag{
				Name:  "stderr",
				Usage: "Write to stderr, ignoring the configured log_file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runEmit(c.String("config"), emitOptions{
				Debug:   c.Bool("debug"),
				Tier:    c.String("tier"),
				Tag:     c.String("tag"),
				ToFile:  c.String("to-file"),
				Stderr:  c.Bool("stderr"),
				Message: c.Args().Slice(),
			})
		},
	}
}

// runEmit sends one line through a freshly configured logger
func runEmit(configPath string, opts emitOptions) error {
	if len(opts.Message) == 0 {
		return fmt.Errorf("nothing to log: provide a message")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tier, err := log.ParseTier(opts.Tier)
	if err != nil {
		return err
	}

	logger := log.New(opts.Tag)
	if opts.Debug || cfg.Debug {
		logger.SetEnabled(true)
	}

	target := opts.ToFile
	if target == "" && !opts.Stderr {
		target = cfg.LogFile
	}
	if target != "" {
		if err := logger.RedirectToFile(target); err != nil {
			return fmt.Errorf("redirecting log output: %w", err)
		}
		defer func() {
			if err := logger.Close(); err != nil {
				fmt.Printf("Warning: failed to close log file: %v\n", err)
			}
		}()
	}

	logger.Emit(tier, log.Origin{}, "%s", strings.Join(opts.Message, " "))
	return nil
}
