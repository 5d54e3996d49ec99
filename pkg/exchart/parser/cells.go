package parser

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/excelize/v2"
)

// ReadRange returns the formatted cell values of r on a sheet, row by row.
// Cells past the end of a stored row read as empty strings.
func ReadRange(f *excelize.File, sheetName string, r Range) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	values := make([][]string, 0, r.R2-r.R1+1)
	for rowNum := r.R1; rowNum <= r.R2; rowNum++ {
		line := make([]string, r.C2-r.C1+1)
		if rowIdx := rowNum - 1; rowIdx < len(rows) {
			row := rows[rowIdx]
			for colNum := r.C1; colNum <= r.C2; colNum++ {
				if colIdx := colNum - 1; colIdx < len(row) {
					line[colNum-r.C1] = row[colIdx]
				}
			}
		}
		values = append(values, line)
	}
	return values, nil
}

// ExtractDataBlock reads r on a sheet into an addressed data block.
func ExtractDataBlock(f *excelize.File, sheetName string, r Range) (models.DataBlock, error) {
	values, err := ReadRange(f, sheetName, r)
	if err != nil {
		return models.DataBlock{}, err
	}
	return models.NewDataBlock(sheetName, r.Origin(), values)
}
