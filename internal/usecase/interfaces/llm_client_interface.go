package interfaces

import "context"

//go:generate mockgen -source=llm_client_interface.go -destination=mocks/llm_client_interface_mock.go -package=mock_interfaces

// ILLMClient abstracts the language model provider (chat completion and embeddings).
type ILLMClient interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Complete(ctx context.Context, system string, prompt string) (string, error)
}
