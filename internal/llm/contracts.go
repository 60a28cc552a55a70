package llm

import "context"

// LabelFields is the normalized shape we want from the model. Either field
// may be empty, meaning "not determined".
type LabelFields struct {
	RecipientName    string `json:"recipient_name"`
	RecipientAddress string `json:"recipient_address"`
}

// Generator is the interface the pipeline depends on. Implementations send
// a prompt to a text-generation backend and return its raw textual reply,
// which may contain prose around (or instead of) the requested JSON.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
