package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
)

// ContextData aggregates everything parsed out of a context directory.
type ContextData struct {
	Courses        []models.Course      `json:"courses"`
	Requirements   []models.Requirement `json:"requirements"`
	Results        []FileResult         `json:"parse_results"`
	FilesProcessed int                  `json:"total_files_processed"`
}

// ParseRTFFile parses a single RTF document from disk.
func ParseRTFFile(path string) FileResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errorResult(path, fmt.Errorf("error parsing RTF file: %w", err))
	}
	return ExtractFromText(StripRTF(string(raw)), filepath.Base(path))
}

// ParsePDFFile parses a single PDF document from disk.
func ParsePDFFile(path string) FileResult {
	text, err := extractPDFText(path)
	if err != nil {
		return errorResult(path, fmt.Errorf("error parsing PDF file: %w", err))
	}
	return ExtractFromText(text, filepath.Base(path))
}

func errorResult(path string, err error) FileResult {
	return FileResult{
		Filename: filepath.Base(path),
		Status:   StatusError,
		Error:    err.Error(),
	}
}

// ParseContextDir parses every .rtf and .pdf file in dir, de-duplicating
// courses by code and requirements by name across files (first occurrence
// wins). A file that fails to parse is recorded in Results and skipped;
// the catalog documents are independently authored and one bad export must
// not block the rest.
func ParseContextDir(dir string) (*ContextData, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("context directory %s not found: %w", dir, err)
	}

	data := &ContextData{
		Courses:      []models.Course{},
		Requirements: []models.Requirement{},
		Results:      []FileResult{},
	}
	seenCourses := make(map[string]bool)
	seenRequirements := make(map[string]bool)

	collect := func(result FileResult) {
		data.Results = append(data.Results, result)
		data.FilesProcessed++
		if result.Status != StatusSuccess {
			logger.Warn().Str("file", result.Filename).Str("error", result.Error).Msg("Skipping unparseable context file")
			return
		}
		for _, course := range result.ExtractedCourses {
			if course.Code == "" || seenCourses[course.Code] {
				continue
			}
			seenCourses[course.Code] = true
			data.Courses = append(data.Courses, course)
		}
		for _, req := range result.ExtractedRequirements {
			if req.Name == "" || seenRequirements[req.Name] {
				continue
			}
			seenRequirements[req.Name] = true
			data.Requirements = append(data.Requirements, req)
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".rtf":
			collect(ParseRTFFile(path))
		case ".pdf":
			collect(ParsePDFFile(path))
		}
	}

	return data, nil
}
