package extract

import "fmt"

const (
	MediaTypePDF   = "application/pdf"
	MediaTypePlain = "text/plain"
	MediaTypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePPTX  = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

const (
	KindUnsupportedType  = "unsupported_file_type"
	KindDocumentTooLong  = "document_too_long"
	KindPDFExtractFailed = "pdf_extraction_failed"
	KindDOCXFailed       = "docx_extraction_failed"
	KindPPTXFailed       = "pptx_extraction_failed"
)

// Error is a client-facing extraction failure. Kind is a stable tag, Message
// a human-readable explanation. The page fields are set only for
// document_too_long.
type Error struct {
	Kind       string
	Message    string
	PageCount  int
	MaxAllowed int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

type Extractor struct {
	maxPDFPages int
}

func NewExtractor(maxPDFPages int) *Extractor {
	return &Extractor{maxPDFPages: maxPDFPages}
}

// Text extracts the plain text of an uploaded document. fileType is the
// media type declared by the client.
func (e *Extractor) Text(content []byte, fileType string) (string, error) {
	switch fileType {
	case MediaTypePDF:
		return e.pdfText(content)
	case MediaTypePlain:
		return string(content), nil
	case MediaTypeDOCX:
		return docxText(content)
	case MediaTypePPTX:
		return pptxText(content)
	default:
		return "", &Error{Kind: KindUnsupportedType, Message: "Unsupported file type"}
	}
}
