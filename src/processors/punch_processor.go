// backend/src/processors/punch_processor.go
package processors

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/models"
	"github.com/username/punchlog/backend/src/security/validation"
	"github.com/username/punchlog/backend/src/utils"
)

// maxEpochSeconds is 9999-12-31T23:59:59Z, the last representable calendar second.
const maxEpochSeconds = 253402300799

var errYearOutOfRange = errors.New("year is out of range")

// ProcessStats counts what happened to the rows seen by a PunchProcessor.
type ProcessStats struct {
	Rows          int
	Accepted      int
	Invalid       int
	Unconvertible int
	Duplicates    int
	Failed        int
}

// PunchProcessor validates raw rows, converts epoch timestamps and keeps the
// first occurrence of every (emp_code, epoch, device) triple. One processor
// owns the duplicate registry for a whole run, so reuse it across files.
type PunchProcessor struct {
	seen  *cache.Cache
	stats ProcessStats
}

func NewPunchProcessor() *PunchProcessor {
	// No expiration and no janitor: the registry lives exactly as long as the run.
	return &PunchProcessor{seen: cache.New(cache.NoExpiration, 0)}
}

// Process handles rows in order and returns the accepted records.
func (p *PunchProcessor) Process(rows []models.RawRow, sink io.Writer) []models.CleanedRecord {
	var records []models.CleanedRecord
	for _, raw := range rows {
		p.stats.Rows++
		if rec, ok := p.processRow(raw, sink); ok {
			records = append(records, rec)
			p.stats.Accepted++
		}
	}
	return records
}

func (p *PunchProcessor) Stats() ProcessStats {
	return p.stats
}

func (p *PunchProcessor) processRow(raw models.RawRow, sink io.Writer) (rec models.CleanedRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(sink, "File:%s -> Row:%d -> Error: %v\n%s\n", raw.Info.FileName, raw.Info.RowNumber, r, debug.Stack())
			logger.L.Error("Recovered from panic while processing row", "file", raw.Info.FileName, "row", raw.Info.RowNumber, "panic", r)
			p.stats.Failed++
			rec, ok = models.CleanedRecord{}, false
		}
	}()

	row := raw.Trimmed()
	if !validation.ValidateRow(row, sink) {
		p.stats.Invalid++
		return models.CleanedRecord{}, false
	}

	epoch, punchTime, err := ParseEpoch(row.Timestamp)
	if err != nil {
		fmt.Fprintf(sink, "File:%s -> Row:%d -> Invalid timestamp '%s': %v\n", row.Info.FileName, row.Info.RowNumber, row.Timestamp, err)
		p.stats.Unconvertible++
		return models.CleanedRecord{}, false
	}

	rec = models.CleanedRecord{
		EmpCode:   row.EmpCode,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Epoch:     epoch,
		Timestamp: punchTime,
		Device:    row.Device,
		Date:      utils.DateOf(punchTime),
	}

	if err := p.seen.Add(dedupCacheKey(rec.Key()), struct{}{}, cache.NoExpiration); err != nil {
		fmt.Fprintf(sink, "File:%s -> Row:%d -> Duplicate data: %s %s %s %s %s\n",
			row.Info.FileName, row.Info.RowNumber, row.EmpCode, row.FirstName, row.LastName, row.Timestamp, row.Device)
		p.stats.Duplicates++
		return models.CleanedRecord{}, false
	}
	return rec, true
}

// ParseEpoch converts a decimal epoch-seconds string to a UTC instant.
func ParseEpoch(raw string) (int64, time.Time, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, time.Time{}, err
	}
	if n < 0 || n > maxEpochSeconds {
		return 0, time.Time{}, fmt.Errorf("%w: %d", errYearOutOfRange, n)
	}
	return n, time.Unix(n, 0).UTC(), nil
}

// dedupCacheKey keeps the epoch as an integer, so "01700000000" and
// "1700000000" are the same punch.
func dedupCacheKey(k models.DedupKey) string {
	return fmt.Sprintf("%s|%d|%s", k.EmpCode, k.Epoch, k.Device)
}
