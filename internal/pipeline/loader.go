package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/openfnol/fnoltriage/internal/model"
)

// supportedExtensions are the document formats the loader accepts
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".html": true,
	".htm":  true,
}

// LoadDocument reads one FNOL document from disk. HTML files are
// reduced to visible text before extraction; everything else is read
// verbatim. The document ID is the file name without extension, or a
// generated ID when that would be empty.
func LoadDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, model.NewProcessingError(model.ErrorKindLoad, err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		text, err = htmlToText(text)
		if err != nil {
			return model.Document{}, model.NewProcessingError(model.ErrorKindLoad, fmt.Errorf("parse HTML: %w", err))
		}
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if id == "" {
		id = uuid.NewString()
	}

	return model.Document{ID: id, Text: text}, nil
}

// LoadDirectory loads every supported document in a directory,
// non-recursive, in lexical file-name order. A file that fails to load
// becomes a failure entry instead of aborting the rest.
func LoadDirectory(dir string) ([]model.Document, []model.DocumentOutcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read directory: %w", err)
	}

	var docs []model.Document
	var failures []model.DocumentOutcome
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			failures = append(failures, model.DocumentOutcome{
				DocumentID: entry.Name(),
				Failure: &model.Failure{
					Kind:    model.ErrorKindLoad,
					Message: err.Error(),
				},
			})
			continue
		}
		docs = append(docs, doc)
	}

	return docs, failures, nil
}

// blockElements get a newline after their text so label-per-line
// extraction patterns keep working on HTML input
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "section": true, "article": true,
}

// htmlToText extracts the visible text of an HTML document
func htmlToText(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n")
		}
	}

	walk(doc)
	return buf.String(), nil
}
