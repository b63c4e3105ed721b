package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

// cli carries what every command needs. Tests build one directly.
type cli struct {
	out    io.Writer
	logger *zap.Logger
}

func main() {
	// A missing .env is normal; existing environment variables win.
	_ = godotenv.Load()

	c := &cli{out: os.Stdout}
	err := newRootCmd(c).Execute()
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "qams",
		Short:         "Create, answer, and score QA reviews",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log processing steps to stderr")

	root.AddCommand(
		newScorecardsCmd(c),
		newNewCmd(c),
		newSelectCmd(c),
		newScoreCmd(c),
		newValidateCmd(c),
	)
	return root
}
