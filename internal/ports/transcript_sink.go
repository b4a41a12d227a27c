package ports

import "context"

type TranscriptSink interface {
	AppendLine(ctx context.Context, line string) error
	Close() error
}
