package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/spf13/cobra"
)

type personalityOutput struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Summary          string  `json:"summary,omitempty"`
	Backstory        string  `json:"backstory,omitempty"`
	Verbose          bool    `json:"verbose"`
	Temperature      float64 `json:"temperature"`
	PresencePenalty  float64 `json:"presence_penalty"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

func newPersonalityCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "personality",
		Aliases: []string{"p"},
		Short:   "Manage personalities",
	}

	cmd.AddCommand(
		newPersonalityAddCmd(app),
		newPersonalityListCmd(app),
		newPersonalityShowCmd(app),
		newPersonalityRemoveCmd(app),
	)

	return cmd
}

func newPersonalityAddCmd(app *app) *cobra.Command {
	var personality domain.Personality
	var id string
	var backstoryFile string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a personality or replace the one with the same ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personality.ID = domain.PersonalityID(id)
			if backstoryFile != "" {
				if personality.Backstory != "" {
					return fmt.Errorf("--backstory and --backstory-file are mutually exclusive")
				}
				raw, err := os.ReadFile(backstoryFile)
				if err != nil {
					return fmt.Errorf("read backstory file: %w", err)
				}
				personality.Backstory = string(raw)
			}

			if err := app.service.SavePersonality(cmd.Context(), personality); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "saved personality %s\n", personality.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Personality ID")
	cmd.Flags().StringVar(&personality.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&personality.Summary, "summary", "", "One-line description")
	cmd.Flags().StringVar(&personality.Backstory, "backstory", "", "Backstory shown in the history view")
	cmd.Flags().StringVar(&backstoryFile, "backstory-file", "", "Read the backstory from a file")
	cmd.Flags().Float64Var(&personality.Params.Temperature, "temperature", 1, "Sampling temperature [0, 2]")
	cmd.Flags().Float64Var(&personality.Params.PresencePenalty, "presence-penalty", 0, "Presence penalty [-2, 2]")
	cmd.Flags().Float64Var(&personality.Params.FrequencyPenalty, "frequency-penalty", 0, "Frequency penalty [-2, 2]")
	cmd.Flags().BoolVar(&personality.Verbose, "log-exchanges", false, "Log every prompt and completion at debug level")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPersonalityListCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List personalities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			personalities, err := app.service.ListPersonalities(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				outputs := make([]personalityOutput, 0, len(personalities))
				for _, personality := range personalities {
					outputs = append(outputs, toPersonalityOutput(personality))
				}
				return writeJSON(cmd, outputs)
			}

			for _, personality := range personalities {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", personality.ID, personality.Name, personality.Summary)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newPersonalityShowCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one personality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personality, err := app.service.GetPersonality(cmd.Context(), domain.PersonalityID(args[0]))
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, toPersonalityOutput(personality))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id: %s\n", personality.ID)
			_, _ = fmt.Fprintf(out, "name: %s\n", personality.Name)
			if personality.Summary != "" {
				_, _ = fmt.Fprintf(out, "summary: %s\n", personality.Summary)
			}
			_, _ = fmt.Fprintf(out, "temperature: %g\n", personality.Params.Temperature)
			_, _ = fmt.Fprintf(out, "presence penalty: %g\n", personality.Params.PresencePenalty)
			_, _ = fmt.Fprintf(out, "frequency penalty: %g\n", personality.Params.FrequencyPenalty)
			if personality.Backstory != "" {
				_, _ = fmt.Fprintf(out, "\n%s\n", personality.Backstory)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newPersonalityRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a personality and its conversation history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PersonalityID(args[0])
			if err := app.service.RemovePersonality(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed personality %s\n", id)
			return err
		},
	}
}

func toPersonalityOutput(personality domain.Personality) personalityOutput {
	return personalityOutput{
		ID:               string(personality.ID),
		Name:             personality.Name,
		Summary:          personality.Summary,
		Backstory:        personality.Backstory,
		Verbose:          personality.Verbose,
		Temperature:      personality.Params.Temperature,
		PresencePenalty:  personality.Params.PresencePenalty,
		FrequencyPenalty: personality.Params.FrequencyPenalty,
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
