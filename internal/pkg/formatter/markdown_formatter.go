package formatter

import (
	"bytes"
	"fmt"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(doc *entity.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", doc.Title)

	for _, sec := range sections(doc) {
		fmt.Fprintf(&buf, "## %s\n\n", sec.Heading)
		for _, line := range sec.Lines {
			fmt.Fprintf(&buf, "- %s\n", line)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
