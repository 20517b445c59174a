package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Client abstracts text generation providers.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrEmptyResponse is returned when a provider answers with no text.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrNotConfigured is reported when no provider is wired.
	ErrNotConfigured = errors.New("llm client not configured")
)

// HashPrompt returns a stable fingerprint of a prompt for logging.
func HashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
