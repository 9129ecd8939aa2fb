// Package main provides the entry point for the styler command. It loads a
// styled document definition from a TOML file, composes it into a styled
// text buffer, and writes the rendered string to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/isseis/go-styled-text/internal/config"
)

// Error definitions
var (
	ErrConfigPathRequired = errors.New("config file path is required")
)

var (
	configPath   = flag.String("config", "", "path to styled document TOML file")
	logLevel     = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	rawOutput    = flag.Bool("raw", false, "print the literal text without any styling")
	validateOnly = flag.Bool("validate", false, "validate the document file and exit")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "styler: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger configures the default slog logger with a text handler on
// stderr, so log records never mix into the rendered stdout output.
func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func run() error {
	flag.Parse()

	if err := setupLogger(*logLevel); err != nil {
		return err
	}

	if *configPath == "" {
		return ErrConfigPathRequired
	}

	doc, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	slog.Debug("document loaded", "path", *configPath, "spans", len(doc.Spans))

	if *validateOnly {
		fmt.Printf("Document %s is valid (%d spans)\n", *configPath, len(doc.Spans))
		return nil
	}

	buf, err := doc.Compose()
	if err != nil {
		return fmt.Errorf("failed to compose document: %w", err)
	}

	if *rawOutput {
		fmt.Println(buf.Raw())
		return nil
	}
	fmt.Println(buf.Render())
	return nil
}
