package catalog

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/meur/blueprintlabs/internal/models"
)

// WriteCSV writes rows with a header line. The header is written even when rows is empty.
func WriteCSV(w io.Writer, rows []models.Row) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(models.Row{}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if len(rows) > 0 {
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode rows: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
