package parsers

import (
	"github.com/username/punchlog/backend/src/models"
	"github.com/username/punchlog/backend/src/parsers/table"
)

const (
	MinColumns = 4
	MaxColumns = 5
)

// MapColumns labels the table columns positionally as emp_code, first_name,
// last_name, timestamp, device. Columns past the fifth are ignored. A
// four-column table keeps the same labels, so its fourth column is read as the
// timestamp and device stays empty.
func MapColumns(t table.Table, fileName string) ([]models.RawRow, error) {
	if t.Width < MinColumns {
		return nil, &InvalidColumnCountError{Got: t.Width}
	}

	rows := make([]models.RawRow, 0, len(t.Rows))
	for i, rec := range t.Rows {
		row := models.RawRow{
			Info:      models.RowInfo{FileName: fileName, RowNumber: i + 1},
			EmpCode:   rec[0],
			FirstName: rec[1],
			LastName:  rec[2],
			Timestamp: rec[3],
		}
		if t.Width >= MaxColumns {
			row.Device = rec[4]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
