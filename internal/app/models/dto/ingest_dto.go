package dto

import "github.com/jcalhoun/degreeplanner/internal/ingest"

// ParseStatusResponse reports what the last ingestion pass produced.
type ParseStatusResponse struct {
	TotalFilesProcessed    int                 `json:"total_files_processed"`
	TotalCoursesFound      int                 `json:"total_courses_found"`
	TotalRequirementsFound int                 `json:"total_requirements_found"`
	ParseResults           []ingest.FileResult `json:"parse_results"`
	UsingParsedData        bool                `json:"using_parsed_data"`
}

// ReloadResponse confirms a reload pass and its counts.
type ReloadResponse struct {
	Message                string `json:"message"`
	TotalCoursesFound      int    `json:"total_courses_found"`
	TotalRequirementsFound int    `json:"total_requirements_found"`
}

// BatchParseResponse wraps per-file results for batch uploads.
type BatchParseResponse struct {
	Results []ingest.FileResult `json:"results"`
}
