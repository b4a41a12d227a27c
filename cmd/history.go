package cmd

import (
	"fmt"

	historyrender "github.com/bnema/persona-relay/internal/adapters/render/history"
	"github.com/bnema/persona-relay/internal/domain"
	"github.com/spf13/cobra"
)

type historyOutput struct {
	Personality string          `json:"personality"`
	Messages    []messageOutput `json:"messages"`
}

type messageOutput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear a personality's conversation history",
	}

	cmd.AddCommand(newHistoryShowCmd(app), newHistoryClearCmd(app))

	return cmd
}

func newHistoryShowCmd(app *app) *cobra.Command {
	var personalityID string
	var jsonOutput bool
	var opts historyrender.RenderOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the conversation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := domain.PersonalityID(personalityID)
			personality, err := app.service.GetPersonality(cmd.Context(), id)
			if err != nil {
				return err
			}
			messages, err := app.service.History(cmd.Context(), id)
			if err != nil {
				return err
			}

			if jsonOutput {
				shown := domain.TrimWindow(messages, opts.Last)
				output := historyOutput{
					Personality: string(id),
					Messages:    make([]messageOutput, 0, len(shown)),
				}
				for _, message := range shown {
					output.Messages = append(output.Messages, messageOutput{Role: string(message.Role), Content: message.Content})
				}
				return writeJSON(cmd, output)
			}

			view, err := app.historyRenderer(personality, messages, opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}

	cmd.Flags().StringVarP(&personalityID, "personality", "p", "", "Personality ID")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&opts.Last, "last", 0, "Show only the newest N messages")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Wrap width in columns")
	_ = cmd.MarkFlagRequired("personality")

	return cmd
}

func newHistoryClearCmd(app *app) *cobra.Command {
	var personalityID string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the conversation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := domain.PersonalityID(personalityID)
			if err := app.service.ClearHistory(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cleared history of %s\n", id)
			return err
		},
	}

	cmd.Flags().StringVarP(&personalityID, "personality", "p", "", "Personality ID")
	_ = cmd.MarkFlagRequired("personality")

	return cmd
}
