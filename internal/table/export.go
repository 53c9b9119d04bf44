package table

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Filename returns "<feature>-<YYYY-MM-DD>.<ext>".
func Filename(feature, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", feature, now.Format("2006-01-02"), strings.TrimPrefix(ext, "."))
}

// quote always wraps the field; encoding/csv only quotes when it must.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV serialises the header and the currently visible rows. Every field
// is whitespace-normalised and double-quoted; lines are joined by "\n".
func WriteCSV(w io.Writer, t *Table) error {
	if t == nil {
		return nil
	}
	lines := make([]string, 0, len(t.Rows)+1)
	if len(t.Headers) > 0 {
		lines = append(lines, joinQuoted(t.Headers))
	}
	for _, r := range t.Rows {
		if !r.Visible {
			continue
		}
		lines = append(lines, joinQuoted(r.Cells))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func joinQuoted(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = quote(Normalize(c))
	}
	return strings.Join(out, ",")
}

// WriteXLSX writes the same header and visible rows as WriteCSV into a
// single-sheet workbook named after the table feature.
func WriteXLSX(w io.Writer, t *Table) error {
	if t == nil {
		return nil
	}
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Feature)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	row := 1
	if len(t.Headers) > 0 {
		for i, h := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, Normalize(h)); err != nil {
				return fmt.Errorf("set header %s: %w", cell, err)
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), row)
		if err := f.SetCellStyle(sheet, first, last, bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
		row++
	}
	for _, r := range t.Rows {
		if !r.Visible {
			continue
		}
		for i, c := range r.Cells {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, Normalize(c)); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func sheetName(feature string) string {
	name := Normalize(feature)
	if name == "" {
		return "Sheet1"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
