package ollama

import "context"

// Provider binds a client to a single model name.
type Provider struct {
	client    *Client
	modelName string
}

func NewProvider(client *Client, modelName string) *Provider {
	return &Provider{
		client:    client,
		modelName: modelName,
	}
}

// Reasoning generates an answer for the given system instruction and prompt.
func (p *Provider) Reasoning(ctx context.Context, system string, prompt string) (string, error) {
	return p.client.Generate(ctx, p.modelName, system, prompt, map[string]interface{}{
		"temperature": 0.7,
		"top_p":       0.9,
	})
}

// Ping verifies that the endpoint is reachable and the model can answer
// by running a one-shot trivial generation. It is meant to be called once
// at startup; callers gate all later generation on its success.
func (p *Provider) Ping(ctx context.Context) error {
	_, err := p.client.Generate(ctx, p.modelName, "", "Hello", nil)
	return err
}

// Model returns the bound model name.
func (p *Provider) Model() string {
	return p.modelName
}
