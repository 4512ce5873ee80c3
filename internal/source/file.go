package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads <dataDir>/<kind>.csv. The first record is the header; every
// following record becomes a Row keyed by header name.
type FileSource struct {
	dataDir string
}

func NewFileSource(dataDir string) *FileSource {
	return &FileSource{dataDir: dataDir}
}

func (s *FileSource) Fetch(_ context.Context, kind Kind) ([]Row, error) {
	path := filepath.Join(s.dataDir, string(kind)+".csv")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrUnavailable, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, path, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
