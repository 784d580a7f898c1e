package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// pptxText collects every text run of every slide, in slide order.
func pptxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", &Error{Kind: KindPPTXFailed, Message: fmt.Sprintf("Error reading PPTX: %v", err)}
	}

	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	sort.Slice(slides, func(i, j int) bool {
		return slideNumber(slides[i].Name) < slideNumber(slides[j].Name)
	})

	var lines []string
	for _, slide := range slides {
		rc, err := slide.Open()
		if err != nil {
			return "", &Error{Kind: KindPPTXFailed, Message: fmt.Sprintf("Error reading PPTX: %v", err)}
		}
		runs, err := slideRuns(rc)
		rc.Close()
		if err != nil {
			return "", &Error{Kind: KindPPTXFailed, Message: fmt.Sprintf("Error reading PPTX: %v", err)}
		}
		lines = append(lines, runs...)
	}

	return strings.Join(lines, "\n"), nil
}

func slideNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func slideRuns(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		runs  []string
		text  strings.Builder
		inRun bool
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
				text.Reset()
			}
		case xml.CharData:
			if inRun {
				text.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inRun = false
				runs = append(runs, text.String())
			}
		}
	}

	return runs, nil
}
