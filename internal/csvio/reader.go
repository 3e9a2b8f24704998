package csvio

import (
	"encoding/csv"
	"io"

	"pytick/internal/domain"
	"pytick/internal/errors"
)

// batchColumns are the columns a bulk-submission source must provide. Extra
// columns are ignored; a missing required column is an error, never inferred.
var batchColumns = []string{"date", "hours", "notes", "task_id"}

// ReadBatchRows reads bulk-submission rows from a CSV source. The first
// record is the header; rows come back in source order with their values
// unmodified.
func ReadBatchRows(r io.Reader) ([]domain.BatchRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewInvalidInputError("csv", "", "source is empty")
	}
	if err != nil {
		return nil, errors.NewIOError("reading CSV header", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range batchColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.NewInvalidInputError("csv", col, "required column is missing")
		}
	}

	var rows []domain.BatchRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewIOError("reading CSV row", err)
		}
		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, domain.BatchRow{
			Date:   field("date"),
			Hours:  field("hours"),
			Notes:  field("notes"),
			TaskID: field("task_id"),
		})
	}
	return rows, nil
}
