package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcalhoun/degreeplanner/internal/app/models"
)

// FileResult is the outcome of parsing a single document.
type FileResult struct {
	Filename              string               `json:"filename"`
	TextContent           string               `json:"text_content,omitempty"`
	WordCount             int                  `json:"word_count"`
	ExtractedCourses      []models.Course      `json:"extracted_courses"`
	ExtractedRequirements []models.Requirement `json:"extracted_requirements"`
	Status                string               `json:"status"`
	Error                 string               `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// Credits assumed when a course line carries no credit annotation.
	defaultCredits = 3

	// Preview length for the echoed text content.
	textPreviewLen = 1000
)

// Course lines look like "BIBL 101 - Introduction to Biblical Studies (3
// credits)": a 2-4 letter subject, 3-4 digit number with optional section
// letter, a separator, the title, and an optional parenthesized credit
// count.
var courseLinePattern = regexp.MustCompile(`(?i)\b([A-Z]{2,4}\s?\d{3,4}[A-Z]?)\b[\s:–—-]+(.+?)(?:\s*\((\d+)\s*credits?\))?$`)

// courseCodePattern accepts only normalized codes; anything else that
// happened to match the line pattern is noise.
var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,4}\d{3,4}[A-Z]?$`)

// Section headers that open a requirement block.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Core\s+Requirements?|Electives?|Required\s+Courses?|Program\s+Requirements?)`),
	regexp.MustCompile(`(?i)(Total\s+Credits?\s*:\s*\d+)`),
	regexp.MustCompile(`(?i)(\d+\s+credits?\s+required)`),
}

var creditPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*credits?`),
	regexp.MustCompile(`(?i)\((\d+)\s*credits?\)`),
	regexp.MustCompile(`(?i)(\d+)\s*credit\s*hours?`),
}

var prereqPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)prerequisites?\s*:\s*([^.]+)`),
	regexp.MustCompile(`(?i)prerequisites?\s*\(([^)]+)\)`),
	regexp.MustCompile(`(?i)prereqs?\s*:\s*([^.]+)`),
}

var codeRefPattern = regexp.MustCompile(`[A-Z]{2,4}\s?\d{3,4}[A-Z]?`)

// Line-level junk filters: bare years, shouty headings, semester-year
// banners.
var (
	yearLinePattern     = regexp.MustCompile(`^(19|20)\d{2}$`)
	headingLinePattern  = regexp.MustCompile(`^[A-Z ]{5,}$`)
	semesterLinePattern = regexp.MustCompile(`(?i)^(fall|spring|summer|winter)\s*\d{4}$`)
)

// Subject prefixes used to attribute a course to a school.
var (
	utsSubjects      = []string{"BIBL", "THEO", "HIST", "ETH", "MIN", "PAST", "LANG"}
	columbiaSubjects = []string{"SW", "SOC", "PSYCH", "POL", "ECON"}
)

// ExtractFromText runs the pattern-matching extraction over plain text.
// This is best-effort by design: lines that do not look like course or
// requirement entries are ignored, never reported as errors.
func ExtractFromText(text, filename string) FileResult {
	result := FileResult{
		Filename:              filename,
		TextContent:           preview(text),
		WordCount:             len(strings.Fields(text)),
		ExtractedCourses:      []models.Course{},
		ExtractedRequirements: []models.Requirement{},
		Status:                StatusSuccess,
	}

	currentSection := -1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || skipLine(line) {
			continue
		}

		for _, pattern := range requirementPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			result.ExtractedRequirements = append(result.ExtractedRequirements, models.Requirement{
				Name:            m[1],
				Description:     line,
				CreditsRequired: extractCredits(line),
				Courses:         []string{},
				SubRequirements: []models.Requirement{},
			})
			currentSection = len(result.ExtractedRequirements) - 1
			break
		}

		m := courseLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		code := strings.ToUpper(strings.ReplaceAll(m[1], " ", ""))
		if !courseCodePattern.MatchString(code) {
			continue
		}

		credits := defaultCredits
		if m[3] != "" {
			credits, _ = strconv.Atoi(m[3])
		} else if c := extractCredits(line); c > 0 {
			credits = c
		}

		result.ExtractedCourses = append(result.ExtractedCourses, models.Course{
			Code:            code,
			Name:            strings.TrimSpace(m[2]),
			Credits:         credits,
			Description:     extractDescription(line),
			Prerequisites:   extractPrerequisites(line),
			Corequisites:    []string{},
			SemesterOffered: semesterFromFilename(filename),
			School:          determineSchool(code, filename),
		})

		if currentSection >= 0 {
			req := &result.ExtractedRequirements[currentSection]
			req.Courses = append(req.Courses, code)
		}
	}

	return result
}

func preview(text string) string {
	if len(text) > textPreviewLen {
		return text[:textPreviewLen] + "..."
	}
	return text
}

func skipLine(line string) bool {
	if isAllUpper(line) {
		return true
	}
	return yearLinePattern.MatchString(line) ||
		headingLinePattern.MatchString(line) ||
		semesterLinePattern.MatchString(line)
}

// isAllUpper reports whether the line contains letters and every letter is
// uppercase — typically a banner heading, not a course entry.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func extractCredits(text string) int {
	for _, pattern := range creditPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n
		}
	}
	return 0
}

func extractDescription(line string) string {
	if _, after, found := strings.Cut(line, " - "); found {
		return strings.TrimSpace(after)
	}
	return ""
}

func extractPrerequisites(line string) []string {
	for _, pattern := range prereqPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		refs := codeRefPattern.FindAllString(strings.ToUpper(m[1]), -1)
		codes := make([]string, 0, len(refs))
		for _, ref := range refs {
			codes = append(codes, strings.ReplaceAll(ref, " ", ""))
		}
		return codes
	}
	return []string{}
}

func determineSchool(code, filename string) string {
	for _, subject := range utsSubjects {
		if strings.HasPrefix(code, subject) {
			return models.SchoolUTS
		}
	}
	for _, subject := range columbiaSubjects {
		if strings.HasPrefix(code, subject) {
			return models.SchoolColumbia
		}
	}
	if strings.Contains(filename, "MDiv") || strings.Contains(filename, "UTS") {
		return models.SchoolUTS
	}
	if strings.Contains(filename, "MSSW") || strings.Contains(filename, "Columbia") {
		return models.SchoolColumbia
	}
	return models.SchoolUTS
}

func semesterFromFilename(filename string) []string {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "fall"):
		return []string{"Fall"}
	case strings.Contains(lower, "spring"):
		return []string{"Spring"}
	case strings.Contains(lower, "summer"):
		return []string{"Summer"}
	}
	return []string{"Fall", "Spring"}
}
