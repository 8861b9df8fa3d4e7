// Package export renders the admin lists as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

type Workbook struct {
	File *excelize.File
}

// NewWorkbook builds one sheet per SheetSpec, in order. The first one takes over
// the default sheet.
func NewWorkbook(sheets []SheetSpec) (*Workbook, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}
	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Title); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Title); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", s.Title, err)
		}
		if err := writeSheet(f, s); err != nil {
			return nil, err
		}
		if err := applyFormatting(f, s.Title); err != nil {
			return nil, fmt.Errorf("format sheet %q: %w", s.Title, err)
		}
	}
	return &Workbook{File: f}, nil
}

func writeSheet(f *excelize.File, s SheetSpec) error {
	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.Title, "A1", &header); err != nil {
		return fmt.Errorf("header %q: %w", s.Title, err)
	}
	for r, row := range s.Rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(s.Title, cell, val); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.File.WriteTo(out)
}

func (w *Workbook) Close() error { return w.File.Close() }
