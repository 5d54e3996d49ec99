package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRangeParams holds parameters for data range detection.
type DataRangeParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultDataRangeParams returns default data range detection parameters.
func DefaultDataRangeParams() DataRangeParams {
	return DataRangeParams{
		DensityMin:       0.5,
		MinNonemptyCells: 3,
	}
}

// DetectDataRange returns the bounding range of the non-empty cells of a sheet.
// It fails when the region is too sparse to be a chart data table.
func DetectDataRange(f *excelize.File, sheetName string, params DataRangeParams) (Range, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Range{}, err
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Range{}, fmt.Errorf("sheet %q has no data", sheetName)
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return Range{}, fmt.Errorf("sheet %q has %d non-empty cells, need %d", sheetName, nonEmptyCells, params.MinNonemptyCells)
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return Range{}, fmt.Errorf("data region of sheet %q is too sparse (density %.2f)", sheetName, density)
	}

	return Range{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
