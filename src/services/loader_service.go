// backend/src/services/loader_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/models"
	"github.com/username/punchlog/backend/src/parsers"
	"github.com/username/punchlog/backend/src/processors"
	"github.com/username/punchlog/backend/src/security/validation"
)

type loaderServiceImpl struct {
	strategies   []parsers.TableParser
	newProcessor func() processors.RecordProcessor
	now          func() time.Time
}

// NewLoaderService uses the given parse strategies in order, or the default
// whitespace-then-comma chain when none are given.
func NewLoaderService(strategies ...parsers.TableParser) LoaderService {
	if len(strategies) == 0 {
		strategies = parsers.DefaultStrategies()
	}
	return &loaderServiceImpl{
		strategies:   strategies,
		newProcessor: func() processors.RecordProcessor { return processors.NewPunchProcessor() },
		now:          time.Now,
	}
}

func (s *loaderServiceImpl) Load(inputDir, errorLogPath string) (records []models.CleanedRecord, err error) {
	errorLog, err := logger.OpenErrorLog(errorLogPath, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer func() {
		if closeErr := errorLog.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrLoadFailed, closeErr)
		}
	}()

	records, err = s.LoadFrom(inputDir, errorLog)
	if err != nil {
		return nil, err
	}
	logger.L.Info("Error log written", "path", errorLogPath, "lines", errorLog.Lines())
	return records, nil
}

// LoadFrom reads every attendance log in inputDir in name order. Problems with
// single rows or files go to sink and never stop the load; only an unreadable
// directory is returned as an error. The duplicate registry spans all files.
func (s *loaderServiceImpl) LoadFrom(inputDir string, sink io.Writer) ([]models.CleanedRecord, error) {
	startTime := time.Now()

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	proc := s.newProcessor()
	var records []models.CleanedRecord
	files, skipped := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !validation.IsAttendanceLogFile(entry.Name()) {
			continue
		}
		files++
		fileRecords, ok := s.loadFile(filepath.Join(inputDir, entry.Name()), entry.Name(), proc, sink)
		if !ok {
			skipped++
			continue
		}
		records = append(records, fileRecords...)
	}

	stats := proc.Stats()
	logger.L.Info("Attendance logs loaded",
		"dir", inputDir,
		"files", files,
		"skippedFiles", skipped,
		"rows", stats.Rows,
		"accepted", stats.Accepted,
		"invalid", stats.Invalid,
		"unconvertible", stats.Unconvertible,
		"duplicates", stats.Duplicates,
		"failed", stats.Failed,
		"duration", time.Since(startTime))
	return records, nil
}

func (s *loaderServiceImpl) loadFile(path, name string, proc processors.RecordProcessor, sink io.Writer) (records []models.CleanedRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(sink, "Failed reading file %s -> %v\n%s\n", name, r, debug.Stack())
			logger.L.Error("Recovered from panic while reading file", "file", name, "panic", r)
			records, ok = nil, false
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		reportUnreadable(sink, name, err)
		return nil, false
	}
	defer file.Close()

	if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
		reportUnreadable(sink, name, err)
		return nil, false
	}

	t, strategy, err := parsers.ParseWithFallback(file, s.strategies)
	if err == nil {
		var rows []models.RawRow
		rows, err = parsers.MapColumns(t, name)
		if err == nil {
			logger.L.Debug("Attendance log parsed", "file", name, "strategy", strategy, "rows", len(rows), "columns", t.Width)
			return proc.Process(rows, sink), true
		}
	}

	var colErr *parsers.InvalidColumnCountError
	if errors.As(err, &colErr) {
		fmt.Fprintf(sink, "File:%s -> Invalid format: expected %d-%d columns, got %d\n",
			name, parsers.MinColumns, parsers.MaxColumns, colErr.Got)
		logger.L.Warn("Skipping attendance log with too few columns", "file", name, "strategy", strategy, "columns", colErr.Got)
		return nil, false
	}
	reportUnreadable(sink, name, err)
	return nil, false
}

func reportUnreadable(sink io.Writer, name string, err error) {
	fmt.Fprintf(sink, "Failed reading file %s -> %v\n", name, err)
	logger.L.Warn("Skipping unreadable attendance log", "file", name, "error", err)
}
