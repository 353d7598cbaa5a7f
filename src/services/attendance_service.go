// backend/src/services/attendance_service.go
package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/username/punchlog/backend/src/config"
	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/processors"
	"github.com/username/punchlog/backend/src/reports"
)

type attendanceServiceImpl struct {
	outputDirName string
	loader        LoaderService
	aggregator    processors.Aggregator
	jsonReporter  reports.Reporter
	xlsxReporter  reports.Reporter
	progress      io.Writer
}

func NewAttendanceService(
	outputDirName string,
	loader LoaderService,
	aggregator processors.Aggregator,
	jsonReporter reports.Reporter,
	xlsxReporter reports.Reporter,
	progress io.Writer,
) AttendanceService {
	if outputDirName == "" {
		outputDirName = config.DefaultOutputDirName
	}
	if progress == nil {
		progress = io.Discard
	}
	return &attendanceServiceImpl{
		outputDirName: outputDirName,
		loader:        loader,
		aggregator:    aggregator,
		jsonReporter:  jsonReporter,
		xlsxReporter:  xlsxReporter,
		progress:      progress,
	}
}

func (s *attendanceServiceImpl) Run(inputDir string) (*RunResult, error) {
	overallStartTime := time.Now()
	outputDir := filepath.Join(inputDir, s.outputDirName)
	result := &RunResult{
		RunID:        uuid.NewString(),
		OutputDir:    outputDir,
		ErrorLogPath: filepath.Join(outputDir, config.ErrorLogFileName),
		JSONPath:     filepath.Join(outputDir, config.JSONReportFileName),
		XLSXPath:     filepath.Join(outputDir, config.XLSXReportFileName),
	}
	log := logger.L.With("runID", result.RunID)
	log.Info("Attendance run START", "inputDir", inputDir, "outputDir", outputDir)

	if err := prepareOutputs(outputDir, result.ErrorLogPath, result.JSONPath, result.XLSXPath); err != nil {
		return nil, err
	}

	stepStartTime := time.Now()
	records, err := s.loader.Load(inputDir, result.ErrorLogPath)
	if err != nil {
		return nil, err
	}
	result.Records = len(records)
	log.Info("Load stage finished", "records", result.Records, "duration", time.Since(stepStartTime))
	fmt.Fprintln(s.progress, "1. Cleaned the dataset done")

	stepStartTime = time.Now()
	summary := s.aggregator.Process(records)
	result.Dates = len(summary)
	result.Entries = summary.EntryCount()
	if err := s.jsonReporter.Write(summary, result.JSONPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportFailed, err)
	}
	log.Info("Summary stage finished", "dates", result.Dates, "entries", result.Entries, "duration", time.Since(stepStartTime))
	fmt.Fprintln(s.progress, "2. Save data in json format done")

	stepStartTime = time.Now()
	if err := s.xlsxReporter.Write(summary, result.XLSXPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportFailed, err)
	}
	log.Info("Spreadsheet stage finished", "duration", time.Since(stepStartTime))
	fmt.Fprintln(s.progress, "3. Generate a excel file done")

	log.Info("Attendance run END", "duration", time.Since(overallStartTime))
	return result, nil
}

// prepareOutputs creates the output directory and empties the previous run's files.
func prepareOutputs(outputDir string, paths ...string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputSetup, err)
	}
	for _, p := range paths {
		f, err := os.Create(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOutputSetup, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputSetup, err)
		}
	}
	return nil
}
