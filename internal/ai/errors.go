package ai

import "errors"

var (
	// ErrConfigMissing means the selected provider has no credential.
	ErrConfigMissing = errors.New("AI provider is not configured: add a key under Settings → AI")
	// ErrParse means the model reply was not a JSON array of objects.
	ErrParse = errors.New("could not parse AI response")
	// ErrUnsupportedKind is returned for a record kind without a prompt.
	ErrUnsupportedKind = errors.New("unsupported content type")
	// ErrUpstream wraps any provider transport or status failure.
	ErrUpstream = errors.New("AI provider request failed")
)
