package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// FilenameLayout is the timestamp layout of generated schedule file names.
const FilenameLayout = "2006_01_02_15_04"

// WriteSchedule writes the CSV grid, a blank line and the summary to w.
func WriteSchedule(w io.Writer, assignments []types.Assignment, people []*ledger.Person) error {
	if err := WriteCSV(w, assignments); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	if err := WriteSummary(w, people); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// WriteScheduleFile creates (or truncates) path and writes the schedule to it.
func WriteScheduleFile(path string, assignments []types.Assignment, people []*ledger.Person) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create schedule file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close schedule file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteSchedule(bw, assignments, people); err != nil {
		return fmt.Errorf("schedule file %q: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("schedule file %q: flush: %w", path, err)
	}

	return nil
}

// GenerateFilename returns the output path for a schedule generated from
// configPath at now: "<dir>/<stem>_YYYY_MM_DD_HH_MM.csv". The stem falls back
// to "schedule" when configPath has no base name.
func GenerateFilename(configPath string, now time.Time) string {
	base := filepath.Base(configPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "schedule"
	}

	return filepath.Join(filepath.Dir(configPath), stem+"_"+now.Format(FilenameLayout)+".csv")
}
