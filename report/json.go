package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/qosroute/compare"
)

// WriteJSON writes v as tab-indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}

// Export writes RunsFile, SummaryFile and JSONFile (the reports as a JSON
// array) into dir, creating it if needed, and returns the written paths.
func Export(dir string, reports ...*compare.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{RunsFile, func(w io.Writer) error { return WriteRunsCSV(w, reports...) }},
		{SummaryFile, func(w io.Writer) error { return WriteSummaryCSV(w, reports...) }},
		{JSONFile, func(w io.Writer) error { return WriteJSON(w, reports) }},
	}

	files := make([]string, 0, len(writers))
	for _, wr := range writers {
		path := filepath.Join(dir, wr.name)
		if err := writeFile(path, wr.write); err != nil {
			return files, err
		}
		files = append(files, path)
	}

	return files, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()

	return write(f)
}
