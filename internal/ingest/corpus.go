package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mentiongraph/internal/model"
)

var (
	ErrDuplicateID = errors.New("duplicate post id")
	ErrEmptyAuthor = errors.New("post has empty author")

	ErrMissingTimestamp = errors.New("post has no timestamp")
)

// ReadJSON decodes a JSON array of posts.
func ReadJSON(r io.Reader) ([]model.Post, error) {
	var posts []model.Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode json corpus: %w", err)
	}
	return posts, validate(posts)
}

// ReadYAML decodes a YAML sequence of posts.
func ReadYAML(r io.Reader) ([]model.Post, error) {
	var posts []model.Post
	if err := yaml.NewDecoder(r).Decode(&posts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml corpus: %w", err)
	}
	return posts, validate(posts)
}

// LoadFile reads a corpus file, picking the decoder by extension.
func LoadFile(path string) ([]model.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", filepath.Ext(path))
	}
}

func validate(posts []model.Post) error {
	seen := make(map[int64]struct{}, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if strings.TrimSpace(p.Author) == "" {
			return fmt.Errorf("%w: id %d", ErrEmptyAuthor, p.ID)
		}
		if p.Timestamp.IsZero() {
			return fmt.Errorf("%w: id %d", ErrMissingTimestamp, p.ID)
		}
	}
	return nil
}
