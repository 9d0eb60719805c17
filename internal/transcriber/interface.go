package transcriber

import "context"

// Transcriber turns a recorded meeting into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}
