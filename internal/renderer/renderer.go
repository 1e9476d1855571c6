// Package renderer writes a built chart to a standalone HTML document.
package renderer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Chart is anything that can render itself as a full HTML page.
type Chart interface {
	Render(w io.Writer) error
}

// Renderer persists a chart to a browsable artifact.
type Renderer interface {
	Render(chart Chart, outputDir string) (string, error)
}

// HTMLRenderer writes the chart as index.html under the output
// directory, creating the directory if needed and overwriting any
// existing file.
type HTMLRenderer struct {
	FileName string
}

// NewHTMLRenderer creates a renderer writing to the default index.html.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{FileName: "index.html"}
}

func (r *HTMLRenderer) Render(chart Chart, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(outputDir, r.FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}
