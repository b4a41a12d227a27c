package application

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

// OutputRecorder appends one transcript line per delivered exchange.
type OutputRecorder struct {
	sink     ports.TranscriptSink
	notifier *Notifier
}

func NewOutputRecorder(sink ports.TranscriptSink, notifier *Notifier) *OutputRecorder {
	return &OutputRecorder{sink: sink, notifier: notifier}
}

// Record writes the formatted line and, only when the write succeeds,
// fires the recorded notification.
func (r *OutputRecorder) Record(ctx context.Context, personality domain.Personality, originalPrompt string, output string) error {
	line := FormatRecord(personality, originalPrompt, output)
	if err := r.sink.AppendLine(ctx, line); err != nil {
		return fmt.Errorf("%w: append transcript line: %w", domain.ErrSink, err)
	}

	if r.notifier != nil {
		r.notifier.Recorded(personality)
	}

	return nil
}

// FormatRecord renders "<Prompt> | <name>: <summary> | <backstory> | <output>"
// on a single line.
func FormatRecord(personality domain.Personality, originalPrompt string, output string) string {
	who := personality.Name
	if personality.Summary != "" {
		who = fmt.Sprintf("%s: %s", personality.Name, personality.Summary)
	}

	fields := []string{
		capitalizeFirst(singleLine(originalPrompt)),
		singleLine(who),
		singleLine(personality.Backstory),
		singleLine(output),
	}

	return strings.Join(fields, " | ")
}

// capitalizeFirst upper-cases the first rune. The empty string is returned
// unchanged.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(first)) + s[size:]
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
