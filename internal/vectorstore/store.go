// Package vectorstore persists embedded document chunks in a single
// SQLite file and answers brute-force cosine top-k queries over them.
// The corpus is a few thousand guideline chunks at most, so a linear
// scan beats maintaining an ANN index.
package vectorstore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	source TEXT NOT NULL,
	page INTEGER NOT NULL,
	embedding BLOB NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_chunks_source ON chunks(source);
`

// Store is a persistent chunk index backed by one SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

// Create opens the store at path for ingestion, replacing any previous
// index contents. Parent directories are created as needed.
func Create(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create vector store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create vector store schema: %w", err)
	}

	// Re-ingestion supersedes the previous index.
	if _, err := db.Exec("DELETE FROM chunks"); err != nil {
		db.Close()
		return nil, fmt.Errorf("clear vector store: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Open opens an existing store for querying. A missing store file is
// an initialization error: the caller is expected to fail fast rather
// than defer the problem to query time.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", entity.ErrVectorStoreMissing, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

// BulkInsert writes all chunks in one transaction.
func (s *Store) BulkInsert(ctx context.Context, chunks []entity.DocumentChunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO chunks (content, source, page, embedding) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			return fmt.Errorf("chunk %d has no embedding", i)
		}
		if _, err := stmt.ExecContext(ctx, chunk.Content, chunk.Source, chunk.Page, vectorToBlob(chunk.Embedding)); err != nil {
			return fmt.Errorf("insert chunk %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// SearchSimilar returns the k entries most similar to the query
// embedding, by cosine similarity, descending. Ties keep scan order.
func (s *Store) SearchSimilar(ctx context.Context, query []float64, k int) ([]entity.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT content, source, page, embedding FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var results []entity.SearchResult
	for rows.Next() {
		var (
			result entity.SearchResult
			blob   []byte
		)
		if err := rows.Scan(&result.Content, &result.Source, &result.Page, &blob); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		result.Similarity = cosineSimilarity(query, blobToVector(blob))
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunks: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > k {
		results = results[:k]
	}

	return results, nil
}

// Count returns the number of indexed chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return count, nil
}

func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

func blobToVector(blob []byte) []float64 {
	vector := make([]float64, len(blob)/8)
	for i := range vector {
		vector[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[i*8:]))
	}
	return vector
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
