// Package report renders an attribution result for human or machine
// consumption. The underlying map is unordered; every format sorts its
// rows so identical input always renders identical output.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/binweight/binweight/internal/sizeattr"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

type Options struct {
	Format string
	// Top limits the table to the n largest rows, 0 shows all. JSON
	// and CSV always emit everything.
	Top int
	// TextSize is the binary's total executable bytes, used for the
	// coverage footer; 0 omits it.
	TextSize uint64
}

type row struct {
	key  string
	size uint64
}

func Render(w io.Writer, contributors sizeattr.Contributors, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		return renderTable(w, contributors, opts)
	case FormatJSON:
		return renderJSON(w, contributors)
	case FormatCSV:
		return renderCSV(w, contributors)
	}
	return errors.WithMessage(UnknownFormatError, opts.Format)
}

// sortedRows orders by size descending, then key, so that equally
// sized entries still render deterministically.
func sortedRows(contributors sizeattr.Contributors) []row {
	rows := make([]row, 0, len(contributors))
	for key, size := range contributors {
		rows = append(rows, row{key, size})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].size != rows[j].size {
			return rows[i].size > rows[j].size
		}
		return rows[i].key < rows[j].key
	})
	return rows
}

func renderTable(w io.Writer, contributors sizeattr.Contributors, opts Options) (err error) {
	rows := sortedRows(contributors)
	shown := len(rows)
	if opts.Top > 0 && opts.Top < shown {
		shown = opts.Top
	}

	header := color.New(color.Bold)
	if _, err = header.Fprintf(w, "%12s  %s\n", "BYTES", "KEY"); err != nil {
		return
	}
	for _, r := range rows[:shown] {
		if _, err = fmt.Fprintf(w, "%12s  %s\n", humanBytes(r.size), r.key); err != nil {
			return
		}
	}
	if shown < len(rows) {
		if _, err = fmt.Fprintf(w, "%12s  ... %d more rows\n", "", len(rows)-shown); err != nil {
			return
		}
	}

	total := contributors.Total()
	if _, err = header.Fprintf(w, "%12s  total over %d keys\n", humanBytes(total), len(rows)); err != nil {
		return
	}
	if opts.TextSize > 0 {
		coverage := float64(total) / float64(opts.TextSize) * 100
		_, err = fmt.Fprintf(w, "%12s  of %s text (%.1f%%) attributed\n", "", humanBytes(opts.TextSize), coverage)
	}
	return
}

func renderJSON(w io.Writer, contributors sizeattr.Contributors) error {
	// encoding/json sorts map keys, which keeps the output stable.
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(contributors)
}

func renderCSV(w io.Writer, contributors sizeattr.Contributors) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"bytes", "key"}); err != nil {
		return err
	}
	for _, r := range sortedRows(contributors) {
		if err := writer.Write([]string{strconv.FormatUint(r.size, 10), r.key}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func humanBytes(size uint64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	}
	return fmt.Sprintf("%d B", size)
}
