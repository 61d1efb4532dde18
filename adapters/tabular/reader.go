// Package tabular reads per-imputation estimate tables and numeric data
// matrices from Excel and CSV files.
package tabular

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"goparam/domain/core"
	"goparam/domain/pooling"
	"goparam/internal"
	"goparam/ports"
)

// Reader handles reading Excel and CSV files into the shapes the toolkit
// consumes: an estimate table for pooling or a numeric matrix for the
// correlation diagnostics.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

var (
	_ ports.EstimateReaderPort = (*Reader)(nil)
	_ ports.MatrixReaderPort   = (*Reader)(nil)
)

// NewReader creates a reader for the given file; the type is inferred from
// the extension. Excel input defaults to Sheet1.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{
		filePath: filePath,
		fileType: fileType,
		sheet:    "Sheet1",
		logger:   internal.NewDefaultLogger().Named("tabular"),
	}
}

// WithSheet selects the Excel sheet to read.
func (r *Reader) WithSheet(name string) *Reader {
	r.sheet = name
	return r
}

// ReadMatrix reads the file as a numeric data matrix with a header row,
// returning column-major data. Blank and non-numeric cells become NaN so
// downstream code can use pairwise-complete observations.
func (r *Reader) ReadMatrix() ([]string, [][]float64, error) {
	rows, err := r.rows()
	if err != nil {
		return nil, nil, err
	}
	headers := rows[0]
	columns := make([][]float64, len(headers))
	for i := range columns {
		columns[i] = make([]float64, len(rows)-1)
	}
	for ri, row := range rows[1:] {
		for ci := range headers {
			value := math.NaN()
			if ci < len(row) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(row[ci]), 64); err == nil {
					value = v
				}
			}
			columns[ci][ri] = value
		}
	}
	r.logger.Debug("read matrix %s: %d columns, %d rows", r.filePath, len(headers), len(rows)-1)
	return headers, columns, nil
}

// Estimate-table column aliases, matched case-insensitively against the
// header row.
var (
	parameterColumns   = []string{"parameter", "term"}
	responseColumns    = []string{"response"}
	componentColumns   = []string{"component"}
	coefficientColumns = []string{"coefficient", "estimate", "beta"}
	seColumns          = []string{"se", "std_error", "std.error", "standard_error"}
	statisticColumns   = []string{"statistic", "z", "t"}
	dfColumns          = []string{"df", "df_error", "df.residual"}
)

// ReadEstimates reads the file as a per-imputation estimate table. Parameter,
// coefficient and standard-error columns are required; response, component,
// statistic and df are optional. A missing df column defaults every row to
// infinite complete-data df (normal approximation in pooling).
func (r *Reader) ReadEstimates() ([]pooling.ImputationEstimate, error) {
	rows, err := r.rows()
	if err != nil {
		return nil, err
	}

	index := headerIndex(rows[0])
	paramCol, ok := findColumn(index, parameterColumns)
	if !ok {
		return nil, core.NewColumnError("parameter", "not found in header")
	}
	coefCol, ok := findColumn(index, coefficientColumns)
	if !ok {
		return nil, core.NewColumnError("coefficient", "not found in header")
	}
	seCol, ok := findColumn(index, seColumns)
	if !ok {
		return nil, core.NewColumnError("se", "not found in header")
	}
	responseCol, hasResponse := findColumn(index, responseColumns)
	componentCol, hasComponent := findColumn(index, componentColumns)
	statCol, hasStat := findColumn(index, statisticColumns)
	dfCol, hasDF := findColumn(index, dfColumns)

	estimates := make([]pooling.ImputationEstimate, 0, len(rows)-1)
	for ri, row := range rows[1:] {
		coef, err := cellFloat(row, coefCol)
		if err != nil {
			return nil, core.NewColumnError("coefficient", fmt.Sprintf("row %d: %v", ri+2, err))
		}
		se, err := cellFloat(row, seCol)
		if err != nil {
			return nil, core.NewColumnError("se", fmt.Sprintf("row %d: %v", ri+2, err))
		}

		est := pooling.ImputationEstimate{
			Parameter:     cellString(row, paramCol),
			Coefficient:   coef,
			StandardError: se,
			DF:            math.Inf(1),
		}
		if hasResponse {
			est.Response = cellString(row, responseCol)
		}
		if hasComponent {
			est.Component = cellString(row, componentCol)
		}
		if hasStat {
			if v, err := cellFloat(row, statCol); err == nil {
				est.Statistic = v
			}
		}
		if hasDF {
			est.DF = cellDF(row, dfCol)
		}
		estimates = append(estimates, est)
	}
	r.logger.Debug("read estimates %s: %d rows", r.filePath, len(estimates))
	return estimates, nil
}

// rows reads the raw string rows, requiring a header plus one data row.
func (r *Reader) rows() ([][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	default:
		rows, err = r.readExcel()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have a header row and at least one data row", r.filePath)
	}
	return rows, nil
}

func (r *Reader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	return rows, nil
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func findColumn(index map[string]int, aliases []string) (int, bool) {
	for _, alias := range aliases {
		if col, ok := index[alias]; ok {
			return col, true
		}
	}
	return 0, false
}

func cellString(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func cellFloat(row []string, col int) (float64, error) {
	s := cellString(row, col)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(s, 64)
}

// cellDF parses a complete-data df cell; blank, NA and Inf all mean "no
// finite df available" and map to +Inf.
func cellDF(row []string, col int) float64 {
	s := cellString(row, col)
	if s == "" || strings.EqualFold(s, "NA") || strings.EqualFold(s, "Inf") {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
