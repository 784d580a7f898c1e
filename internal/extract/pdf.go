package extract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

func (e *Extractor) pdfText(content []byte) (string, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", &Error{Kind: KindPDFExtractFailed, Message: fmt.Sprintf("Error reading PDF: %v", err)}
	}
	defer doc.Close()

	total := doc.NumPage()
	if total > e.maxPDFPages {
		return "", &Error{
			Kind:       KindDocumentTooLong,
			Message:    fmt.Sprintf("Your document has %d pages. Max allowed: %d.", total, e.maxPDFPages),
			PageCount:  total,
			MaxAllowed: e.maxPDFPages,
		}
	}

	pages := make([]string, 0, total)
	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < total; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", &Error{Kind: KindPDFExtractFailed, Message: fmt.Sprintf("Error reading PDF: %v", err)}
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
