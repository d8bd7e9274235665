package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rubiojr/dlog/pkg/config"
	"github.com/rubiojr/dlog/pkg/tail"
	"github.com/urfave/cli/v3"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	stampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("32")).
			Padding(0, 1).
			Margin(1, 0, 1, 0)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

// TailCommand creates the tail command
func TailCommand() *cli.Command {
	return &cli.Command{
		Name:      "tail",
		Usage:     "Show the end of a log file, with warnings highlighted",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "Number of lines to show (0 uses the configured tail_lines)",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:    "follow",
				Aliases: []string{"f"},
				Usage:   "Keep the file open and stream appended lines",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager and output directly to terminal",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runTail(ctx, c.String("config"), c.Args().First(),
				c.Int("lines"), c.Bool("follow"), c.Bool("no-color"), c.Bool("no-pager"))
		},
	}
}

// runTail resolves the file to read and dispatches to tail or follow mode
func runTail(ctx context.Context, configPath, fileArg string, lines int, follow, noColor, noPager bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := fileArg
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		path, err = config.GetDefaultLogPath()
		if err != nil {
			return fmt.Errorf("resolving log path: %w", err)
		}
	}

	if lines <= 0 {
		lines = cfg.TailLines
	}

	color := colorEnabled(cfg.Color, noColor)

	if follow {
		return followFile(ctx, path, cfg.PollInterval.Duration, color)
	}
	return showLast(path, lines, color, noPager)
}

// showLast prints the last n lines, through the pager on a terminal
func showLast(path string, n int, color, noPager bool) error {
	lines, err := tail.Last(path, n)
	if err != nil {
		return fmt.Errorf("tailing %s: %w", path, err)
	}

	output := formatTailOutput(path, lines, color)

	if noPager || !isTerminal() {
		fmt.Print(output)
		return nil
	}
	return displayWithPager(output)
}

// followFile streams appended lines until interrupted
func followFile(ctx context.Context, path string, poll time.Duration, color bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println(render(titleStyle, fmt.Sprintf("📄 Following %s", path), color))

	lines := make(chan tail.Line, 64)
	errCh := make(chan error, 1)
	go func() {
		errCh <- tail.Follow(ctx, path, poll, lines)
	}()

	for {
		select {
		case line := <-lines:
			fmt.Println(renderLine(line, color))
		case err := <-errCh:
			for len(lines) > 0 {
				fmt.Println(renderLine(<-lines, color))
			}
			if err != nil {
				return fmt.Errorf("following %s: %w", path, err)
			}
			return nil
		}
	}
}

// formatTailOutput builds the styled tail view
func formatTailOutput(path string, lines []tail.Line, color bool) string {
	var output strings.Builder

	title := fmt.Sprintf("📄 %s", path)
	output.WriteString(render(titleStyle, title, color))
	output.WriteString("\n")

	if len(lines) == 0 {
		output.WriteString(render(noDataStyle, "No log lines yet.", color))
		output.WriteString("\n")
		return output.String()
	}

	for _, line := range lines {
		output.WriteString(renderLine(line, color))
		output.WriteString("\n")
	}

	stats := tail.Count(lines)
	summary := fmt.Sprintf("📊 %d lines, %d warnings", stats.Total, stats.Warnings)
	output.WriteString(render(summaryStyle, summary, color))
	output.WriteString("\n")

	return output.String()
}

// renderLine dims the console prefix and highlights warning lines
func renderLine(line tail.Line, color bool) string {
	if !color {
		return line.Text
	}
	prefix, body := tail.SplitPrefix(line.Text)
	if line.Warning {
		body = warnStyle.Render(body)
	}
	if prefix != "" {
		prefix = stampStyle.Render(prefix)
	}
	return prefix + body
}

// render applies a style only when color is enabled
func render(style lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return style.Render(s)
}

// colorEnabled decides whether to colorize output
func colorEnabled(mode string, noColor bool) bool {
	if noColor {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal()
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// displayWithPager displays content using a pager
func displayWithPager(content string) error {
	// Try to find a suitable pager
	pagerCmd := os.Getenv("PAGER")
	if pagerCmd == "" {
		// Try common pagers in order of preference
		pagers := []string{"less", "more", "cat"}
		for _, pager := range pagers {
			if _, err := exec.LookPath(pager); err == nil {
				pagerCmd = pager
				break
			}
		}
	}

	if pagerCmd == "" {
		// No pager found, output directly
		fmt.Print(content)
		return nil
	}

	// Set up less with good defaults if it's available
	args := []string{}
	if strings.Contains(pagerCmd, "less") {
		args = []string{"-R", "-S", "-F", "-X"}
	}

	cmd := exec.Command(pagerCmd, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
