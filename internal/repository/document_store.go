package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"survey-enrichment/internal/models"

	jsoniter "github.com/json-iterator/go"
)

// ResponsesKey is the top-level field holding the survey response records.
const ResponsesKey = "responses"

const backupMarker = ".backup"

// ErrMalformedDocument is returned when a document has no usable responses array.
var ErrMalformedDocument = errors.New("repository: document has no responses array")

// codec keeps numbers as json.Number so untouched values round-trip, sorts keys for stable
// output and leaves HTML characters unescaped. Indentation is applied afterwards with
// json.Indent since sorted nested maps lose their depth under codec.MarshalIndent.
var codec = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Document is a decoded survey data file.
type Document struct {
	// Fields holds every top-level field of the file, responses included.
	Fields map[string]any
	// Original is the file content exactly as read.
	Original []byte
}

// Responses returns the raw responses array.
func (d *Document) Responses() ([]any, error) {
	raw, ok := d.Fields[ResponsesKey]
	if !ok {
		return nil, ErrMalformedDocument
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, ErrMalformedDocument
	}
	return items, nil
}

// Records returns the responses as survey records. Elements that are not JSON objects map to
// nil records.
func (d *Document) Records() ([]models.SurveyResponse, error) {
	items, err := d.Responses()
	if err != nil {
		return nil, err
	}
	records := make([]models.SurveyResponse, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records[i] = models.SurveyResponse(obj)
		}
	}
	return records, nil
}

// SetRecords replaces the responses array. A nil record keeps the element that was at the same
// position before.
func (d *Document) SetRecords(records []models.SurveyResponse) error {
	items, err := d.Responses()
	if err != nil {
		return err
	}
	if len(items) != len(records) {
		return fmt.Errorf("repository: record count changed from %d to %d", len(items), len(records))
	}
	out := make([]any, len(records))
	for i, r := range records {
		if r == nil {
			out[i] = items[i]
			continue
		}
		out[i] = map[string]any(r)
	}
	d.Fields[ResponsesKey] = out
	return nil
}

// DocumentStore reads and writes survey data files on the local filesystem.
type DocumentStore struct{}

// NewDocumentStore creates a new document store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Load reads and decodes the document at path.
func (s *DocumentStore) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read %s: %w", path, err)
	}

	var fields map[string]any
	if err := codec.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("repository: failed to parse %s: %w", path, errors.Join(ErrMalformedDocument, err))
	}
	if fields == nil {
		return nil, fmt.Errorf("repository: failed to parse %s: %w", path, ErrMalformedDocument)
	}

	return &Document{Fields: fields, Original: data}, nil
}

// WriteBackup writes the original file content of doc next to path.
func (s *DocumentStore) WriteBackup(path string, doc *Document) (string, error) {
	backup := BackupPath(path)
	if err := os.WriteFile(backup, doc.Original, filePerm(path)); err != nil {
		return "", fmt.Errorf("repository: failed to write backup %s: %w", backup, err)
	}
	return backup, nil
}

// Save encodes doc with two-space indentation and overwrites path.
func (s *DocumentStore) Save(path string, doc *Document) error {
	data, err := codec.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("repository: failed to encode %s: %w", path, err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("repository: failed to indent %s: %w", path, err)
	}
	if err := os.WriteFile(path, out.Bytes(), filePerm(path)); err != nil {
		return fmt.Errorf("repository: failed to write %s: %w", path, err)
	}
	return nil
}

// BackupPath inserts the backup marker before the final extension: name.json becomes
// name.backup.json.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + backupMarker + ext
}

func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
