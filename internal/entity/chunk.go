package entity

// DocumentChunk is a contiguous slice of source text produced during
// ingestion. Chunks are immutable: a re-ingestion run replaces the
// whole index instead of mutating entries.
type DocumentChunk struct {
	Content   string
	Source    string
	Page      int
	Embedding []float64
}

// SearchResult is one vector store hit, ranked by similarity to the
// query embedding.
type SearchResult struct {
	Content    string
	Source     string
	Page       int
	Similarity float64
}

// SourceCitation is the caller-facing excerpt of a retrieved chunk.
// Content is truncated to citationMaxLen by the pipeline.
type SourceCitation struct {
	Source  string `json:"source"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// RAGAnswer is the result of one retrieval-augmented question.
type RAGAnswer struct {
	Answer  string
	Sources []SourceCitation
}
