package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxText pulls the paragraph text out of word/document.xml. Blank
// paragraphs are dropped, the rest joined with newlines.
func docxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &Error{Kind: KindDOCXFailed, Message: fmt.Sprintf("Error reading DOCX: %v", err)}
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", &Error{Kind: KindDOCXFailed, Message: fmt.Sprintf("Error reading DOCX: %v", err)}
			}
			break
		}
	}
	if doc == nil {
		return "", &Error{Kind: KindDOCXFailed, Message: "Error reading DOCX: missing word/document.xml"}
	}
	defer doc.Close()

	paragraphs, err := wordParagraphs(doc)
	if err != nil {
		return "", &Error{Kind: KindDOCXFailed, Message: fmt.Sprintf("Error reading DOCX: %v", err)}
	}

	return strings.Join(paragraphs, "\n"), nil
}

func wordParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		para       strings.Builder
		inRun      bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.CharData:
			if inRun {
				para.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if text := para.String(); strings.TrimSpace(text) != "" {
					paragraphs = append(paragraphs, text)
				}
				para.Reset()
			}
		}
	}

	return paragraphs, nil
}
