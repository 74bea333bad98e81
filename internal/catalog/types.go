// Package catalog fetches the OpenRouter model catalog and classifies
// each entry as free or paid.
package catalog

// Model is a single catalog entry. Only ID and Pricing drive
// classification; the rest is carried for verbose reporting.
type Model struct {
	ID            string      `json:"id"`
	Name          string      `json:"name,omitempty"`
	Created       int64       `json:"created,omitempty"`
	ContextLength int         `json:"context_length,omitempty"`
	Pricing       Pricing     `json:"pricing,omitempty"`
	TopProvider   TopProvider `json:"top_provider,omitempty"`
}

// Pricing maps a price-dimension name ("prompt", "completion", "request",
// "image", ...) to its value. Dimensions vary per model and values arrive
// as strings, numbers, null, or one level of nested maps, so the shape is
// kept loose and normalized during classification.
type Pricing map[string]any

// TopProvider describes the primary upstream serving a model.
type TopProvider struct {
	Name                string `json:"name,omitempty"`
	ContextLength       int    `json:"context_length,omitempty"`
	MaxCompletionTokens int    `json:"max_completion_tokens,omitempty"`
	IsModerated         bool   `json:"is_moderated,omitempty"`
}

// modelsResponse is the catalog envelope. Current responses use "data";
// "models" is an older key the original tooling still accepted.
type modelsResponse struct {
	Data   []Model `json:"data"`
	Models []Model `json:"models"`
}
