package rag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageDocument is the text of one PDF page with its provenance.
type PageDocument struct {
	Content string
	Source  string
	Page    int
}

// LoadPDFDocuments reads every PDF directly inside dir (non-recursive)
// and returns page-level documents. An empty directory yields an empty
// slice, not an error; the caller decides what that means.
func LoadPDFDocuments(dir string) ([]PageDocument, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("glob source directory: %w", err)
	}
	sort.Strings(paths)

	var docs []PageDocument
	for _, path := range paths {
		pages, err := loadPDF(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}
		docs = append(docs, pages...)
	}

	return docs, nil
}

func loadPDF(path string) ([]PageDocument, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	source := filepath.Base(path)

	var docs []PageDocument
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := extractPageText(page)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageNum, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		docs = append(docs, PageDocument{
			Content: text,
			Source:  source,
			Page:    pageNum,
		})
	}

	return docs, nil
}

func extractPageText(page pdf.Page) (text string, err error) {
	// The pdf library panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	var sb strings.Builder
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
