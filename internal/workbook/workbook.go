// Package workbook owns the destination spreadsheet: sheet creation, the
// existing-key scan, the watermark lookup, and appending reconciled rows.
// All changes stay in memory until Save, so an aborted pipeline leaves
// the file as it was.
package workbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/releve-dev/releve/internal/dateparse"
	"github.com/releve-dev/releve/internal/ledger"
)

// Sheet headers. Ledger sheets carry either a single amount column or the
// bank's debit/credit split; the shared duplicates sheet is wide enough
// for both plus the reason.
var (
	HeaderSingle     = []string{"Date", "Merchant", "Amount", "Category"}
	HeaderSplit      = []string{"Date", "Operation", "Debit", "Credit", "Category", "Sub Category"}
	HeaderDuplicates = []string{"Date", "Label", "Amount", "Credit", "Category", "Sub Category", "Reason"}
)

// Dates are persisted as fixed-width text, not spreadsheet serials.
const dateLayout = "02.01.2006"

// numFmtText is the built-in "@" (text) number format.
const numFmtText = 49

// Workbook wraps the open destination file.
type Workbook struct {
	path string
	f    *excelize.File

	textStyle     int
	textBoldStyle int
	boldStyle     int
	stylesReady   bool
}

// Open loads an existing workbook. Macro content survives the
// open/save round trip.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return &Workbook{path: path, f: f}, nil
}

// Save persists all buffered changes back to the file.
func (w *Workbook) Save() error {
	if err := w.f.Save(); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// Close releases the underlying file without saving.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// HasSheet reports whether a sheet exists.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// EnsureSheet creates a sheet with a header row if it does not exist yet.
func (w *Workbook) EnsureSheet(name string, header []string) error {
	if w.HasSheet(name) {
		return nil
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}
	for i, title := range header {
		if err := w.setCell(name, i+1, 1, title); err != nil {
			return err
		}
	}
	return nil
}

// LastRow returns the last row whose first column is non-empty, or 0 for
// an empty or missing sheet. New rows append right after it; existing
// rows are never reordered.
func (w *Workbook) LastRow(sheet string) (int, error) {
	if !w.HasSheet(sheet) {
		return 0, nil
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	last := 0
	for i, row := range rows {
		if cellAt(row, 0) != "" {
			last = i + 1
		}
	}
	return last, nil
}

// ExistingKeys builds the dedup key set from a ledger sheet's current
// rows. Rows whose date cannot be normalized or whose amounts are not
// numeric (the header row included) contribute no key.
func (w *Workbook) ExistingKeys(sheet string, split bool) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	if !w.HasSheet(sheet) {
		return keys, nil
	}
	// Raw values: date-typed cells must surface as serials, not as
	// whatever display format they happen to carry.
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	for _, row := range rows {
		date, err := dateparse.ParseCell(cellAt(row, 0))
		if err != nil {
			continue
		}
		label := cellAt(row, 1)
		if label == "" {
			continue
		}

		e := ledger.Entry{Date: date, Label: label, Split: split}
		if split {
			debit, err := parseAmount(cellAt(row, 2))
			if err != nil {
				continue
			}
			credit, err := parseAmount(cellAt(row, 3))
			if err != nil {
				continue
			}
			if debit.IsZero() && credit.IsZero() {
				continue
			}
			e.Amount, e.Credit = debit, credit
		} else {
			raw := cellAt(row, 2)
			if raw == "" {
				continue
			}
			amount, err := parseAmount(raw)
			if err != nil {
				continue
			}
			e.Amount = amount
		}
		keys[e.Key()] = struct{}{}
	}
	return keys, nil
}

// MaxDate returns the newest parseable date in the first column of a
// reference sheet, skipping its title row. found is false when the sheet
// is missing or holds no parseable dates, in which case no watermark
// filtering applies.
func (w *Workbook) MaxDate(sheet string) (max time.Time, found bool) {
	if !w.HasSheet(sheet) {
		return time.Time{}, false
	}
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		d, err := dateparse.ParseCell(cellAt(row, 0))
		if err != nil {
			continue
		}
		if !found || d.After(max) {
			max, found = d, true
		}
	}
	return max, found
}

// AppendLedger appends entries after the sheet's last occupied row. The
// entries carrying the batch's oldest date are written bold so the user
// can spot where the new block starts when sorting by hand later.
func (w *Workbook) AppendLedger(sheet string, entries []ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	last, err := w.LastRow(sheet)
	if err != nil {
		return err
	}
	var oldest time.Time
	for i, e := range entries {
		if i == 0 || e.Date.Before(oldest) {
			oldest = e.Date
		}
	}
	for i, e := range entries {
		row := last + 1 + i
		if err := w.writeLedgerRow(sheet, row, e, e.Date.Equal(oldest)); err != nil {
			return err
		}
	}
	return nil
}

// AppendDuplicates appends entries to the shared duplicates sheet with
// the pipeline's reason string.
func (w *Workbook) AppendDuplicates(sheet string, entries []ledger.Entry, reason string) error {
	if len(entries) == 0 {
		return nil
	}
	last, err := w.LastRow(sheet)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if err := w.writeDuplicateRow(sheet, last+1+i, e, reason); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) writeLedgerRow(sheet string, row int, e ledger.Entry, bold bool) error {
	if err := w.setDateCell(sheet, row, e.Date, bold); err != nil {
		return err
	}
	if err := w.setCell(sheet, 2, row, e.Label); err != nil {
		return err
	}

	lastCol := 4
	if e.Split {
		lastCol = 6
		if !e.Amount.IsZero() {
			if err := w.setCell(sheet, 3, row, e.Amount.InexactFloat64()); err != nil {
				return err
			}
		}
		if !e.Credit.IsZero() {
			if err := w.setCell(sheet, 4, row, e.Credit.InexactFloat64()); err != nil {
				return err
			}
		}
		if e.Category != "" {
			if err := w.setCell(sheet, 5, row, e.Category); err != nil {
				return err
			}
		}
		if e.SubCategory != "" {
			if err := w.setCell(sheet, 6, row, e.SubCategory); err != nil {
				return err
			}
		}
	} else {
		if err := w.setCell(sheet, 3, row, e.Amount.InexactFloat64()); err != nil {
			return err
		}
		if e.Category != "" {
			if err := w.setCell(sheet, 4, row, e.Category); err != nil {
				return err
			}
		}
	}

	if bold {
		if err := w.boldRange(sheet, 2, lastCol, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) writeDuplicateRow(sheet string, row int, e ledger.Entry, reason string) error {
	if err := w.setDateCell(sheet, row, e.Date, false); err != nil {
		return err
	}
	if err := w.setCell(sheet, 2, row, e.Label); err != nil {
		return err
	}
	if e.Split {
		if !e.Amount.IsZero() {
			if err := w.setCell(sheet, 3, row, e.Amount.InexactFloat64()); err != nil {
				return err
			}
		}
		if !e.Credit.IsZero() {
			if err := w.setCell(sheet, 4, row, e.Credit.InexactFloat64()); err != nil {
				return err
			}
		}
	} else {
		if err := w.setCell(sheet, 3, row, e.Amount.InexactFloat64()); err != nil {
			return err
		}
	}
	if e.Category != "" {
		if err := w.setCell(sheet, 5, row, e.Category); err != nil {
			return err
		}
	}
	if e.SubCategory != "" {
		if err := w.setCell(sheet, 6, row, e.SubCategory); err != nil {
			return err
		}
	}
	return w.setCell(sheet, 7, row, reason)
}

// setDateCell writes the date as dd.mm.yyyy text with the text number
// format, so spreadsheet applications do not coerce it back to a serial.
func (w *Workbook) setDateCell(sheet string, row int, date time.Time, bold bool) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell A%d: %w", row, err)
	}
	if err := w.f.SetCellStr(sheet, cell, date.Format(dateLayout)); err != nil {
		return fmt.Errorf("writing date cell %s: %w", cell, err)
	}
	if err := w.ensureStyles(); err != nil {
		return err
	}
	style := w.textStyle
	if bold {
		style = w.textBoldStyle
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("styling date cell %s: %w", cell, err)
	}
	return nil
}

func (w *Workbook) boldRange(sheet string, fromCol, toCol, row int) error {
	if err := w.ensureStyles(); err != nil {
		return err
	}
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", fromCol, row, err)
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", toCol, row, err)
	}
	if err := w.f.SetCellStyle(sheet, from, to, w.boldStyle); err != nil {
		return fmt.Errorf("styling row %d: %w", row, err)
	}
	return nil
}

func (w *Workbook) setCell(sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	if err := w.f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("writing cell %s: %w", cell, err)
	}
	return nil
}

func (w *Workbook) ensureStyles() error {
	if w.stylesReady {
		return nil
	}
	var err error
	if w.textStyle, err = w.f.NewStyle(&excelize.Style{NumFmt: numFmtText}); err != nil {
		return fmt.Errorf("creating text style: %w", err)
	}
	if w.textBoldStyle, err = w.f.NewStyle(&excelize.Style{
		NumFmt: numFmtText,
		Font:   &excelize.Font{Bold: true},
	}); err != nil {
		return fmt.Errorf("creating bold text style: %w", err)
	}
	if w.boldStyle, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return fmt.Errorf("creating bold style: %w", err)
	}
	w.stylesReady = true
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, " ", "")
	return decimal.NewFromString(s)
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
