package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Scenario groups the outcomes of one grid for export.
type Scenario struct {
	Name     string
	Grid     *gridgraph.Grid
	Outcomes []compare.Outcome
}

const (
	summarySheet = "Summary"
	maxSheetName = 31
)

var summaryHeaders = []string{"Scenario", "Rows", "Cols", "Strategy", "Found", "Cost", "Expanded", "Elapsed (ms)"}

// Workbook builds a workbook with a Summary sheet (one row per scenario
// and strategy) and one sheet per scenario holding the grid and each
// strategy's expansion order. The caller must Close the file.
func Workbook(runID string, scenarios []Scenario) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("report: header style: %w", err)
	}

	w := &sheetWriter{f: f, header: headerStyle}
	w.summary(runID, scenarios)
	used := make(map[string]bool, len(scenarios))
	for i, sc := range scenarios {
		name := sheetName(sc.Name, i, used)
		w.scenario(name, sc)
	}
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("report: %w", w.err)
	}
	return f, nil
}

// WriteXLSX builds the workbook and saves it at path.
func WriteXLSX(path, runID string, scenarios []Scenario) error {
	f, err := Workbook(runID, scenarios)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// EncodeXLSX builds the workbook and writes it to w.
func EncodeXLSX(w io.Writer, runID string, scenarios []Scenario) error {
	f, err := Workbook(runID, scenarios)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error so the layout code stays linear.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) set(sheet string, col, row int, v any) {
	if w.err != nil {
		return
	}
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheet, addr, v)
}

func (w *sheetWriter) style(sheet string, row, fromCol, toCol int) {
	if w.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	w.err = w.f.SetCellStyle(sheet, from, to, w.header)
}

func (w *sheetWriter) summary(runID string, scenarios []Scenario) {
	w.set(summarySheet, 1, 1, "Run")
	w.set(summarySheet, 2, 1, runID)
	for i, h := range summaryHeaders {
		w.set(summarySheet, i+1, 3, h)
	}
	w.style(summarySheet, 3, 1, len(summaryHeaders))

	row := 4
	for _, sc := range scenarios {
		for _, o := range sc.Outcomes {
			w.set(summarySheet, 1, row, sc.Name)
			w.set(summarySheet, 2, row, sc.Grid.Rows())
			w.set(summarySheet, 3, row, sc.Grid.Cols())
			w.set(summarySheet, 4, row, o.Strategy.Label())
			w.set(summarySheet, 5, row, o.Result.Found())
			w.set(summarySheet, 6, row, o.Summary.Cost)
			w.set(summarySheet, 7, row, o.Summary.Expansions)
			w.set(summarySheet, 8, row, float64(o.Elapsed.Microseconds())/1000)
			row++
		}
	}
}

// scenario writes the grid symbols at the top, then one column per
// strategy listing its expansion order.
func (w *sheetWriter) scenario(name string, sc Scenario) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = err
		return
	}
	for r := 0; r < sc.Grid.Rows(); r++ {
		for c := 0; c < sc.Grid.Cols(); c++ {
			sym := sc.Grid.Terrain(gridgraph.Cell{Row: r, Col: c}).Symbol()
			w.set(name, c+1, r+1, string(sym))
		}
	}

	top := sc.Grid.Rows() + 2
	w.set(name, 1, top, "Step")
	for i, o := range sc.Outcomes {
		w.set(name, i+2, top, o.Strategy.Label())
	}
	w.style(name, top, 1, len(sc.Outcomes)+1)

	longest := 0
	for _, o := range sc.Outcomes {
		if o.Result != nil {
			longest = max(longest, len(o.Result.Expanded))
		}
	}
	for step := 0; step < longest; step++ {
		w.set(name, 1, top+1+step, step+1)
		for i, o := range sc.Outcomes {
			if o.Result != nil && step < len(o.Result.Expanded) {
				w.set(name, i+2, top+1+step, o.Result.Expanded[step].String())
			}
		}
	}
}

// sheetName makes a unique, Excel-legal sheet name from a scenario name.
func sheetName(name string, idx int, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if clean == "" {
		clean = fmt.Sprintf("Scenario %d", idx+1)
	}
	base := []rune(clean)
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}
	clean = string(base)
	for n := 2; used[strings.ToLower(clean)] || strings.EqualFold(clean, summarySheet); n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		clean = string(base[:min(len(base), maxSheetName-len(suffix))]) + suffix
	}
	used[strings.ToLower(clean)] = true
	return clean
}
