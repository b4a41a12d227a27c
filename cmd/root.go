package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

func Execute() error {
	return execute(newRootCmd())
}

// execute runs the command tree and then releases the app's stores,
// whether or not the command failed.
func execute(rootCmd *cobra.Command, app *app) error {
	err := rootCmd.Execute()
	if app == nil {
		return err
	}

	return errors.Join(err, app.close())
}

func newRootCmd() (*cobra.Command, *app) {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "persona",
		Short:         "persona: talk to LLM-backed personalities from the terminal",
		Long:          "persona relays prompts from simulated characters to a chat completion endpoint. It keeps each personality's conversation history, spaces requests with a global rate limit, detects refusals and can record a plain text transcript.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, err := parseLogLevel(app.cfg.Log.Level)
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}
		app.stderr = &syncWriter{w: cmd.ErrOrStderr()}
		app.logger = newLogger(app.stderr, level)
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPersonalityCmd(app),
		newAuthCmd(app),
		newDispatchCmd(app, dispatchAsk),
		newDispatchCmd(app, dispatchAssess),
		newDispatchCmd(app, dispatchReact),
		newHistoryCmd(app),
	)

	return rootCmd, app
}
