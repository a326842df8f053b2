// Package provider constructs the model-provider client. It is the single
// seam to swap if the agent ever targets a different hosted API.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// NewAnthropicClient returns a client using the API key from the environment
// (ANTHROPIC_API_KEY, read by the SDK). Credentials are never part of config.
func NewAnthropicClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// DefaultModel is used when config supplies no model identifier.
const DefaultModel = anthropic.ModelClaude3_7SonnetLatest
