// Package cli implements the json5 command-line tool's command tree and
// flag configuration.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/qvecs/go-json5/internal/jsonio"
	"github.com/qvecs/go-json5/internal/loglevel"
)

// Flags holds CLI flag names, allowing callers to customize them while
// keeping sensible defaults via [NewConfig].
type Flags struct {
	Indent    string
	Output    string
	LogLevel  string
	LogFormat string
}

// Config holds CLI flag values shared by the json5 command tree.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags     Flags
	Indent    int
	Output    string
	LogLevel  string
	LogFormat string
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Indent:    "indent",
			Output:    "output",
			LogLevel:  "log-level",
			LogFormat: "log-format",
		},
		Indent:    -1,
		Output:    "-",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// RegisterFlags adds json5 CLI flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Indent, c.Flags.Indent, c.Indent,
		"indent width in spaces for the format command (negative means compact)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", c.Output,
		"output file path for the format command (- for stdout)")
	flags.StringVar(&c.LogLevel, c.Flags.LogLevel, "info",
		"log level, one of: error, warn, info, debug")
	flags.StringVar(&c.LogFormat, c.Flags.LogFormat, "text",
		"log format, one of: text, json")
}

// RegisterCompletions registers shell completions for json5 CLI flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.LogLevel,
		cobra.FixedCompletions([]string{"error", "warn", "info", "debug"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.LogLevel, err)
	}
	err = cmd.RegisterFlagCompletionFunc(c.Flags.LogFormat,
		cobra.FixedCompletions([]string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.LogFormat, err)
	}
	return nil
}

// logger builds the *slog.Logger for this invocation, writing to stderr.
func (c *Config) logger() (*slog.Logger, error) {
	h, err := loglevel.CreateHandlerFromStrings(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

// openInput opens arg for reading; "-" reads os.Stdin.
func openInput(arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// openOutput opens path for writing; "-" or "" writes os.Stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewRootCommand builds the json5 root cobra command with its format and
// validate subcommands, sharing cfg for flag values.
func NewRootCommand(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "json5",
		Short:         "Parse and format JSON5 documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newFormatCommand(cfg))
	root.AddCommand(newValidateCommand(cfg))

	if err := cfg.RegisterCompletions(root); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	return root
}

func newFormatCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "format [flags] <file|->",
		Short: "Parse a JSON5 document and re-serialize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFormat(cfg, args[0])
		},
	}
}

func newValidateCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Parse a JSON5 document without printing it, reporting any error",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(cfg, args[0])
		},
	}
}

func runFormat(cfg *Config, path string) error {
	log, err := cfg.logger()
	if err != nil {
		return err
	}

	start := time.Now()
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	v, err := jsonio.Load(in)
	if err != nil {
		log.Error("parse failed", "file", path, "error", err)
		return err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := jsonio.Dump(out, v, cfg.Indent); err != nil {
		return err
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write trailing newline: %w", err)
	}

	log.Debug("formatted document", "file", path, "elapsed", time.Since(start))
	return nil
}

func runValidate(cfg *Config, path string) error {
	log, err := cfg.logger()
	if err != nil {
		return err
	}

	start := time.Now()
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if _, err := jsonio.Load(in); err != nil {
		log.Error("validation failed", "file", path, "error", err)
		return err
	}

	log.Debug("document is valid JSON5", "file", path, "elapsed", time.Since(start))
	fmt.Printf("%s: ok\n", path)
	return nil
}
