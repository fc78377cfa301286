package entity

// OllamaEmbeddingRequest is the payload for POST /api/embeddings.
type OllamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type OllamaEmbeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// OllamaGenerateRequest is the payload for POST /api/generate.
// Stream is always false: the service consumes complete answers.
type OllamaGenerateRequest struct {
	Model   string               `json:"model"`
	Prompt  string               `json:"prompt"`
	Stream  bool                 `json:"stream"`
	Options OllamaGenerateOption `json:"options"`
}

type OllamaGenerateOption struct {
	Temperature float64 `json:"temperature"`
}

type OllamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}
