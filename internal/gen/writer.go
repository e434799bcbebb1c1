package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSameOutputPath is returned when two generated files would overwrite
// each other.
var ErrSameOutputPath = errors.New("several files share one output path")

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputPath returns where file is written: into outputDir when it is set,
// otherwise into the directory of the scope it was generated for.
func OutputPath(file GeneratedFile, outputDir string) string {
	dir := outputDir
	if dir == "" {
		dir = file.Dir
	}

	return filepath.Join(dir, file.Filename)
}

// WriteFiles writes the generated files to their OutputPath. Two files with
// the same path are rejected before anything is written.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		outputPath := OutputPath(file, outputDir)
		if seen[outputPath] {
			return fmt.Errorf("%w: %s", ErrSameOutputPath, outputPath)
		}

		seen[outputPath] = true
	}

	for _, file := range files {
		outputPath := OutputPath(file, outputDir)

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
