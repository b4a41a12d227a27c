package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/persona-relay/internal/application"
	"github.com/bnema/persona-relay/internal/domain"
	"github.com/spf13/cobra"
)

type dispatchCommand struct {
	use   string
	short string
	kind  domain.TemplateKind
}

var (
	dispatchAsk = dispatchCommand{
		use:   "ask",
		short: "Ask a personality to reply to a prompt",
		kind:  domain.TemplateReply,
	}
	dispatchAssess = dispatchCommand{
		use:   "assess",
		short: "Ask a personality which visual cues it notices in a scene",
		kind:  domain.TemplateVisualCues,
	}
	dispatchReact = dispatchCommand{
		use:   "react",
		short: "Ask a personality how it would react to a situation",
		kind:  domain.TemplateReactionHints,
	}
)

type dispatchOutput struct {
	RequestID   string `json:"request_id"`
	Personality string `json:"personality"`
	Kind        string `json:"kind"`
	State       string `json:"state"`
	Content     string `json:"content,omitempty"`
	Error       string `json:"error,omitempty"`
}

func newDispatchCmd(app *app, def dispatchCommand) *cobra.Command {
	var personalityID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   def.use + " <prompt...>",
		Short: def.short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			id := domain.PersonalityID(personalityID)
			prompt := strings.Join(args, " ")

			personality, err := app.service.GetPersonality(cmd.Context(), id)
			if err != nil {
				return err
			}

			session, err := app.openDispatchSession(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, session.Close())
			}()

			notifier := session.dispatcher.Notifier()
			recorded := notifier.OnRecorded(func(p domain.Personality) {
				app.logger.Debug("transcript line recorded", "personality", p.ID)
			})
			defer recorded.Unsubscribe()
			// Set on the dispatcher goroutine before the result is sent, read
			// after it is received.
			var declinedBy string
			denied := notifier.OnDenied(func(p domain.Personality) {
				declinedBy = p.Name
			})
			defer denied.Unsubscribe()

			var result domain.Result
			dispatch := func(ctx context.Context, onPhase func(domain.DispatchState)) error {
				phaseHook := func(state domain.DispatchState) {
					app.logger.Debug("request phase", "personality", id, "state", state)
					if onPhase != nil {
						onPhase(state)
					}
				}
				results, err := session.service.Request(ctx, def.kind, id, prompt, nil, application.WithPhaseHook(phaseHook))
				if err != nil {
					return err
				}
				result = <-results
				return nil
			}

			if jsonOutput {
				err = dispatch(cmd.Context(), nil)
			} else {
				err = runDispatchSpinner(cmd.Context(), app.stderr, personality.Name, dispatch)
			}
			if err != nil {
				return err
			}

			if declinedBy != "" && !jsonOutput {
				_, _ = fmt.Fprintf(app.stderr, "%s declined to answer.\n", declinedBy)
			}

			return writeDispatchResult(cmd, def.kind, result, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&personalityID, "personality", "p", "", "Personality ID")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("personality")

	return cmd
}

func writeDispatchResult(cmd *cobra.Command, kind domain.TemplateKind, result domain.Result, jsonOutput bool) error {
	var resultErr error
	if result.State == domain.StateFailed || result.State == domain.StateRejected {
		resultErr = fmt.Errorf("request %s %s: %w", result.RequestID, result.State, result.Err)
	}

	if jsonOutput {
		output := dispatchOutput{
			RequestID:   result.RequestID,
			Personality: string(result.PersonalityID),
			Kind:        string(kind),
			State:       string(result.State),
			Content:     result.Content,
		}
		if result.Err != nil {
			output.Error = result.Err.Error()
		}
		if err := writeJSON(cmd, output); err != nil {
			return err
		}
		return resultErr
	}

	switch result.State {
	case domain.StateDelivered:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Content)
		return err
	case domain.StateSkipped:
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "sending is disabled (dispatch.send_requests = false); request skipped")
		return err
	case domain.StateDenied:
		return nil
	default:
		return resultErr
	}
}
