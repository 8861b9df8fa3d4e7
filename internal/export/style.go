package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	minColWidth = 10
	maxColWidth = 60
	// header row gets a little extra room for the filter button
	headerPad = 1.5
)

// applyFormatting makes row 1 bold, puts an auto-filter on it and sizes every
// populated column by the widest cell.
func applyFormatting(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols == 0 {
		return nil
	}
	last := columnName(cols)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", bold); err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+last+"1", nil); err != nil {
		return err
	}

	widths := make([]float64, cols)
	for c := range widths {
		widths[c] = minColWidth
	}
	for rIdx, row := range rows {
		for cIdx, v := range row {
			w := float64(visualLen(v)) * 1.1
			if rIdx == 0 {
				w += headerPad
			}
			if w > maxColWidth {
				w = maxColWidth
			}
			if w > widths[cIdx] {
				widths[cIdx] = w
			}
		}
	}
	for i, w := range widths {
		col := columnName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// columnName: 1 -> A, 27 -> AA.
func columnName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func visualLen(s string) int {
	n := 0
	for _, r := range s {
		if r == '\t' {
			n += 4
		} else {
			n++
		}
	}
	return n
}

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|]+`)

// Filename returns "<kind>_<date>.xlsx" with the date taken in loc.
func Filename(kind string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	base := fmt.Sprintf("%s_%s.xlsx", strings.TrimSpace(kind), now.In(loc).Format("2006-01-02"))
	return sanitizeFileName(base)
}

func sanitizeFileName(s string) string {
	s = strings.Join(strings.Fields(s), "_")
	return invalidFileRe.ReplaceAllString(s, "_")
}

const timeLayout = "02.01.2006 15:04"

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timeLayout)
}
