// Package assist integrates the optional AI helper that drafts a description
// and suggests tags for a snippet's code.
//
// THE FEATURE IS STRICTLY BEST-EFFORT:
// Nothing in the application depends on it. When no API key is configured the
// Disabled implementation stands in and every call reports
// apperror.ErrUnavailable, which the handler layer surfaces as "feature
// unavailable" — a snippet save never waits on, and can never be corrupted by,
// this collaborator.
package assist

import (
	"context"

	"github.com/sakif/codepocket/internal/apperror"
)

// Assistant produces documentation text and tag suggestions for code. Both
// methods are fallible and may be slow (they call an external service), so
// they take a context.
type Assistant interface {
	// Explain returns a short prose explanation of the code, suitable for a
	// snippet's description field.
	Explain(ctx context.Context, code, language string) (string, error)
	// SuggestTags returns a handful of keyword tags for the code.
	SuggestTags(ctx context.Context, code string) ([]string, error)
}

// Disabled is the Assistant used when no generative API is configured.
// Every call fails with ErrUnavailable.
type Disabled struct{}

var _ Assistant = Disabled{}

func (Disabled) Explain(context.Context, string, string) (string, error) {
	return "", apperror.Unavailable("AI assist")
}

func (Disabled) SuggestTags(context.Context, string) ([]string, error) {
	return nil, apperror.Unavailable("AI assist")
}
