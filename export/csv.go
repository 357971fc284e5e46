package export

import (
	"encoding/csv"
	"fmt"
	"io"

	roster "github.com/Thomblin/duty-roster"
	"github.com/Thomblin/duty-roster/types"
)

// WriteCSV writes assignments as a CSV grid: a header "date,<places...>" with
// places sorted by name, then one row per date in ascending order. A slot
// without assignment is written as an empty cell.
func WriteCSV(w io.Writer, assignments []types.Assignment) error {
	grid := roster.NewGrid(assignments)

	cw := csv.NewWriter(w)
	header := append([]string{"date"}, grid.Places()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := cw.WriteAll(grid.Rows()); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	return nil
}
