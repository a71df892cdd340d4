package records

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("document not found")

type MalformedDocument struct {
	Path   string
	nested error
}

func (e *MalformedDocument) Error() string {
	return "malformed document " + e.Path + ": " + e.nested.Error()
}

func (e *MalformedDocument) Unwrap() error {
	return e.nested
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMalformed(err error) bool {
	malformed := &MalformedDocument{}
	return errors.As(err, &malformed)
}

// Document is a JSON file holding a flat list of records.
type Document[T any] struct {
	path string
}

func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path}
}

func (d *Document[T]) Path() string {
	return d.path
}

// Load distinguishes an absent document (ErrNotFound) from one that is not
// valid JSON (*MalformedDocument).
func (d *Document[T]) Load() ([]T, error) {
	body, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "Failed to load %s", d.path)
		}
		return nil, errors.Wrapf(err, "Failed to read %s", d.path)
	}

	records := make([]T, 0)
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &MalformedDocument{Path: d.path, nested: err}
	}
	if records == nil {
		// "null" decodes into a nil slice
		records = make([]T, 0)
	}
	return records, nil
}

// LoadOrEmpty treats an absent or malformed document as an empty collection.
func (d *Document[T]) LoadOrEmpty() ([]T, error) {
	records, err := d.Load()
	if IsNotFound(err) || IsMalformed(err) {
		return make([]T, 0), nil
	}
	return records, err
}

// Save replaces the document with records, pretty-printed with a 2-space indent.
// The content goes to a temporary file first and is renamed over the target.
func (d *Document[T]) Save(records []T) error {
	if records == nil {
		records = make([]T, 0)
	}

	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Failed to marshal records")
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "Failed to create temporary document")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return errors.Wrap(err, "Failed to chmod document")
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return errors.Wrap(err, "Failed to write document")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "Failed to write document")
	}

	return errors.Wrap(os.Rename(tmp.Name(), d.path), "Failed to replace document")
}

func (d *Document[T]) Append(record T) error {
	records, err := d.LoadOrEmpty()
	if err != nil {
		return err
	}
	return d.Save(append(records, record))
}
