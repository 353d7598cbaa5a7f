package services

import (
	"io"

	"github.com/username/punchlog/backend/src/models"
)

// RunResult describes one completed pipeline run.
type RunResult struct {
	RunID        string
	OutputDir    string
	ErrorLogPath string
	JSONPath     string
	XLSXPath     string
	Records      int
	Dates        int
	Entries      int
}

// LoaderService turns a directory of raw attendance logs into cleaned records.
type LoaderService interface {
	// Load truncates errorLogPath, writes the banner and appends row diagnostics to it.
	Load(inputDir, errorLogPath string) ([]models.CleanedRecord, error)
	LoadFrom(inputDir string, sink io.Writer) ([]models.CleanedRecord, error)
}

// AttendanceService runs the whole pipeline for one input directory.
type AttendanceService interface {
	Run(inputDir string) (*RunResult, error)
}
