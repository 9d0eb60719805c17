package pipeline

import "context"

// Pipeline turns one meeting recording into a transcript, summary and task list.
type Pipeline interface {
	Process(ctx context.Context, mediaPath string) (*Meeting, error)
}
