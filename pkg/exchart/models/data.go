package models

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Cell is one addressed cell of a data block.
type Cell struct {
	// Value is the formatted cell value.
	Value string `json:"value"`
	// Address is the A1 reference of the cell on its sheet (e.g., "B2").
	Address string `json:"address"`
}

// Number returns the cell value as a number when it parses as one.
func (c Cell) Number() (float64, bool) {
	if i, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
		return f, true
	}
	return 0, false
}

// DataBlock is a rectangular block of raw cell data taken from one sheet.
type DataBlock struct {
	// Sheet is the sheet name used in range formulas.
	Sheet string `json:"sheet"`
	// Rows holds the cells row by row. Rows may be ragged; missing cells are empty.
	Rows [][]Cell `json:"rows"`
}

// NewDataBlock lays values out on sheet starting at the origin cell (e.g., "A1")
// and assigns every cell its address.
func NewDataBlock(sheet, origin string, values [][]string) (DataBlock, error) {
	col, row, err := excelize.CellNameToCoordinates(origin)
	if err != nil {
		return DataBlock{}, fmt.Errorf("invalid origin %q: %w", origin, err)
	}

	block := DataBlock{Sheet: sheet, Rows: make([][]Cell, len(values))}
	for r, rowValues := range values {
		cells := make([]Cell, len(rowValues))
		for c, v := range rowValues {
			addr, err := excelize.CoordinatesToCellName(col+c, row+r)
			if err != nil {
				return DataBlock{}, err
			}
			cells[c] = Cell{Value: v, Address: addr}
		}
		block.Rows[r] = cells
	}
	return block, nil
}

// Height returns the number of rows.
func (b DataBlock) Height() int {
	return len(b.Rows)
}

// Width returns the length of the longest row.
func (b DataBlock) Width() int {
	w := 0
	for _, row := range b.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the cell at the 0-based row and column. Cells missing from a
// ragged row get an address derived from the row's first cell.
func (b DataBlock) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(b.Rows) || col < 0 {
		return Cell{}, false
	}
	cells := b.Rows[row]
	if col < len(cells) {
		return cells[col], true
	}
	if len(cells) == 0 {
		return Cell{}, false
	}
	c, r, err := excelize.CellNameToCoordinates(cells[0].Address)
	if err != nil {
		return Cell{}, false
	}
	addr, err := excelize.CoordinatesToCellName(c+col, r)
	if err != nil {
		return Cell{}, false
	}
	return Cell{Address: addr}, true
}

// Ref is a formula reference plus the cached values it points at.
type Ref struct {
	// Formula is the absolute range formula, e.g. 'My Sheet'!$B$2:$B$5.
	Formula string `json:"formula"`
	// Cache holds the referenced cell values in order.
	Cache []string `json:"cache,omitempty"`
	// Numeric is true when every cached value is a number.
	Numeric bool `json:"numeric,omitempty"`
}

// SeriesBinding is one data series' resolved cell references.
type SeriesBinding struct {
	// ID is the 0-based, contiguous series id in column order.
	ID int `json:"id"`
	// Header references the series name cell.
	Header Ref `json:"header"`
	// Categories references the category (or X value) cells.
	Categories Ref `json:"categories"`
	// Values references the value (or Y value) cells.
	Values Ref `json:"values"`
	// Sizes references bubble sizes (bubble charts only).
	Sizes *Ref `json:"sizes,omitempty"`
	// Labels references data label text cells.
	Labels *Ref `json:"labels,omitempty"`
}

// Name returns the cached series name.
func (s SeriesBinding) Name() string {
	if len(s.Header.Cache) == 0 {
		return ""
	}
	return s.Header.Cache[0]
}
