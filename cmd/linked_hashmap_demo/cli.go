package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ordered/linkedmap/demo"
	"github.com/ordered/linkedmap/dlog"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linked_hashmap_demo",
		Short:         "Walk through inserting, iterating and removing LinkedHashmap entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sample session",
		Args:  cobra.NoArgs,
		RunE:  runHandler,
	}
	runCmd.Flags().String("format", demo.FormatText, "Output format (text|table)")
	runCmd.Flags().String("log-level", "info", "Log level (debug|info|warn|error)")
	runCmd.Flags().Int("buffer-size", 0, "Console buffer size in bytes; 0 writes through")
	runCmd.Flags().Duration("max-flush-interval", time.Second, "Maximum time between console flushes when buffering")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func runHandler(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	bufferSize, err := cmd.Flags().GetInt("buffer-size")
	if err != nil {
		return err
	}
	flushInterval, err := cmd.Flags().GetDuration("max-flush-interval")
	if err != nil {
		return err
	}

	level, err := dlog.ParseLevel(levelName)
	if err != nil {
		return err
	}

	stdout := dlog.NewBufferedConsole(cmd.OutOrStdout(), bufferSize, flushInterval)
	defer func() {
		if closeErr := stdout.Close(); err == nil {
			err = closeErr
		}
	}()
	stderr := dlog.NewBufferedConsole(cmd.ErrOrStderr(), bufferSize, flushInterval)
	defer func() {
		if closeErr := stderr.Close(); err == nil {
			err = closeErr
		}
	}()
	logger := dlog.NewLogger(stderr, level)

	runner, err := demo.NewRunner(stdout, logger, format)
	if err != nil {
		return err
	}
	return runner.Run()
}
