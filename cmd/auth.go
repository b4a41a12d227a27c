package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the completion API key",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var secretKey string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the API key in the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Put(cmd.Context(), secretKey, secretValue); err != nil {
				return fmt.Errorf("store API key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored API key under %s\n", secretKey)
			return err
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", app.cfg.API.KeyRef, "Secret-store key")
	cmd.Flags().StringVar(&secretValue, "secret-value", "", "API key")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var secretKey string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the API key from the secret store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), secretKey); err != nil {
				return fmt.Errorf("remove API key: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", app.cfg.API.KeyRef, "Secret-store key")

	return cmd
}
