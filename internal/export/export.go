// Package export writes resolved notes to disk as Markdown files with YAML
// front matter.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/ether-notes/models"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFrontMatter = errors.New("invalid front matter")

// FrontMatter is the YAML header of an exported note.
type FrontMatter struct {
	Author       string    `yaml:"author"`
	Timestamp    time.Time `yaml:"timestamp"`
	Visibility   string    `yaml:"visibility"`
	MintEligible bool      `yaml:"mint_eligible"`
}

// Markdown writes one file per view into dir, creating it if needed, and
// returns the written paths. Locked notes are exported with an empty body;
// neither ciphertext nor anything derived from it reaches the file.
func Markdown(dir string, views []models.NoteView) ([]string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	paths := make([]string, 0, len(views))
	for i, view := range views {
		data, err := render(view)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, fileName(i, view.Note))
		if err = os.WriteFile(path, data, 0o600); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Read parses a file written by Markdown.
func Read(path string) (FrontMatter, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FrontMatter{}, "", err
	}

	parts := bytes.SplitN(data, []byte("---\n"), 3)
	if len(parts) < 3 || len(parts[0]) != 0 {
		return FrontMatter{}, "", ErrInvalidFrontMatter
	}

	var fm FrontMatter
	if err = yaml.Unmarshal(parts[1], &fm); err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}
	return fm, strings.TrimPrefix(string(parts[2]), "\n"), nil
}

func render(view models.NoteView) ([]byte, error) {
	fm := FrontMatter{
		Author:       view.Note.Author.Hex(),
		Timestamp:    view.Note.Time(),
		Visibility:   view.Decoded.Visibility.String(),
		MintEligible: view.MintEligible,
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	encoder.Close()

	buf.WriteString("---\n\n")
	if view.Decoded.Body != nil {
		buf.WriteString(*view.Decoded.Body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// fileName is unique within one export: the index breaks ties between notes
// written in the same block.
func fileName(i int, note models.Note) string {
	return fmt.Sprintf("%d-%s-%03d.md", note.Timestamp, strings.ToLower(note.Author.Hex()[2:10]), i)
}
