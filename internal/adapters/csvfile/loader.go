// Package csvfile loads datasets from CSV files on local disk.
package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/glance/internal/core/domain"
)

// Loader implements ports.DatasetLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the CSV file at path. Every failure is a *domain.LoadError.
func (l *Loader) Load(path string) (*domain.Dataset, error) {
	// #nosec G304 -- the data path is chosen by the user
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewLoadError(path, domain.ErrDataFileNotFound)
		}
		return nil, domain.NewLoadError(path, errors.Join(domain.ErrDataFileUnreadable, err))
	}
	defer func() { _ = f.Close() }()

	ds, err := Parse(path, f)
	if err != nil {
		return nil, domain.NewLoadError(path, err)
	}
	return ds, nil
}

// Parse reads CSV content from r. The returned error wraps domain.ErrDataFileUnreadable
// for I/O failures and domain.ErrDatasetMalformed for content problems.
func Parse(source string, r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrDatasetMalformed, domain.ErrMissingHeader)
	}
	if err != nil {
		return nil, classify(err)
	}
	// The header of a UTF-8 file exported by spreadsheets may start with a BOM.
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classify(err)
		}
		records = append(records, rec)
	}

	ds, err := domain.NewDataset(source, header, records)
	if err != nil {
		return nil, errors.Join(domain.ErrDatasetMalformed, err)
	}
	return ds, nil
}

// classify maps a csv.Reader error onto the load sentinels.
func classify(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return errors.Join(domain.ErrDatasetMalformed, parseErr)
	}
	return errors.Join(domain.ErrDataFileUnreadable, err)
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
