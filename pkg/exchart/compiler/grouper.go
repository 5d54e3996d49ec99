package compiler

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// SliceShape is the column footprint of one series.
type SliceShape struct {
	// Bubble series consume a value column followed by a size column.
	Bubble bool
	// Labels series consume one more column holding data label text.
	Labels bool
}

// Width returns the number of columns one series consumes.
func (s SliceShape) Width() int {
	w := 1
	if s.Bubble {
		w++
	}
	if s.Labels {
		w++
	}
	return w
}

// region is the bounded part of a data block.
type region struct {
	block    models.DataBlock
	rowStart int
	rowEnd   int
	category int
	columns  []int // series columns in order, category column excluded
}

func (r region) rows() int {
	return r.rowEnd - r.rowStart + 1
}

// bound applies the data settings to block. Ends are inclusive and 0 means
// the last row or column of the block.
func bound(block models.DataBlock, data models.DataSettings) (region, error) {
	height, width := block.Height(), block.Width()
	rowEnd, colEnd := data.RowEnd, data.ColumnEnd
	if rowEnd == 0 {
		rowEnd = height - 1
	}
	if colEnd == 0 {
		colEnd = width - 1
	}

	if data.RowStart < 0 || data.ColumnStart < 0 || rowEnd >= height || colEnd >= width {
		return region{}, NewDataShapeError(height, width,
			"bounds rows %d..%d, columns %d..%d exceed the data block", data.RowStart, rowEnd, data.ColumnStart, colEnd)
	}
	if data.RowStart > rowEnd || data.ColumnStart > colEnd {
		return region{}, NewDataShapeError(height, width,
			"bounds rows %d..%d, columns %d..%d are empty", data.RowStart, rowEnd, data.ColumnStart, colEnd)
	}

	r := region{block: block, rowStart: data.RowStart, rowEnd: rowEnd, category: data.ColumnStart}
	if data.CategoryColumn != nil {
		r.category = *data.CategoryColumn
		if r.category < 0 || r.category >= width {
			return region{}, NewDataShapeError(height, width, "category column %d is outside the data block", r.category)
		}
	}
	if r.rows() < 2 {
		return region{}, NewDataShapeError(r.rows(), colEnd-data.ColumnStart+1,
			"a header row and at least one data row are required")
	}
	for c := data.ColumnStart; c <= colEnd; c++ {
		if c != r.category {
			r.columns = append(r.columns, c)
		}
	}
	if len(r.columns) == 0 {
		return region{}, NewDataShapeError(r.rows(), colEnd-data.ColumnStart+1, "no series columns")
	}
	return r, nil
}

func (r region) shapeError(format string, args ...any) *DataShapeError {
	return NewDataShapeError(r.rows(), len(r.columns)+1, format, args...)
}

// ref builds the reference for column col over rows from..to.
func (r region) ref(col, from, to int, numeric bool) (models.Ref, error) {
	first, ok := r.block.Cell(from, col)
	if !ok {
		return models.Ref{}, r.shapeError("cell at row %d, column %d has no address", from, col)
	}
	last, ok := r.block.Cell(to, col)
	if !ok {
		return models.Ref{}, r.shapeError("cell at row %d, column %d has no address", to, col)
	}
	formula, err := RangeFormula(r.block.Sheet, first.Address, last.Address)
	if err != nil {
		return models.Ref{}, r.shapeError("%v", err)
	}

	ref := models.Ref{Formula: formula, Cache: make([]string, 0, to-from+1)}
	allNumbers, seen := true, false
	for row := from; row <= to; row++ {
		cell, _ := r.block.Cell(row, col)
		if cell.Value == "" {
			ref.Cache = append(ref.Cache, "")
			continue
		}
		seen = true
		if _, ok := cell.Number(); !ok {
			allNumbers = false
			if numeric {
				ref.Cache = append(ref.Cache, "")
				continue
			}
		}
		ref.Cache = append(ref.Cache, cell.Value)
	}
	ref.Numeric = numeric || (seen && allNumbers)
	return ref, nil
}

// binding builds the binding for one slice of series columns.
func (r region) binding(id int, cols []int, shape SliceShape) (models.SeriesBinding, error) {
	valueCol := cols[0]
	header, err := r.ref(valueCol, r.rowStart, r.rowStart, false)
	if err != nil {
		return models.SeriesBinding{}, err
	}
	header.Numeric = false
	categories, err := r.ref(r.category, r.rowStart+1, r.rowEnd, false)
	if err != nil {
		return models.SeriesBinding{}, err
	}
	values, err := r.ref(valueCol, r.rowStart+1, r.rowEnd, true)
	if err != nil {
		return models.SeriesBinding{}, err
	}

	b := models.SeriesBinding{ID: id, Header: header, Categories: categories, Values: values}
	next := 1
	if shape.Bubble {
		sizes, err := r.ref(cols[next], r.rowStart+1, r.rowEnd, true)
		if err != nil {
			return models.SeriesBinding{}, err
		}
		b.Sizes = &sizes
		next++
	}
	if shape.Labels {
		labels, err := r.ref(cols[next], r.rowStart+1, r.rowEnd, false)
		if err != nil {
			return models.SeriesBinding{}, err
		}
		labels.Numeric = false
		b.Labels = &labels
	}
	return b, nil
}

// GroupSeries splits the bounded data block into series bindings. The first
// bounded row holds the series headers, the category column holds the
// categories and every remaining column, in order, feeds a series of the given
// shape. Binding ids are 0..N-1 in column order.
func GroupSeries(block models.DataBlock, data models.DataSettings, shape SliceShape) ([]models.SeriesBinding, error) {
	r, err := bound(block, data)
	if err != nil {
		return nil, err
	}

	w := shape.Width()
	if len(r.columns)%w != 0 {
		switch {
		case shape.Bubble && shape.Labels:
			return nil, r.shapeError("bubble series with labels need value, size and label columns, got %d columns", len(r.columns))
		case shape.Bubble:
			return nil, r.shapeError("bubble series need value and size column pairs, got %d columns", len(r.columns))
		default:
			return nil, r.shapeError("series column %d has no label column", r.columns[len(r.columns)-1])
		}
	}

	bindings := make([]models.SeriesBinding, 0, len(r.columns)/w)
	for i := 0; i < len(r.columns); i += w {
		b, err := r.binding(len(bindings), r.columns[i:i+w], shape)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// Partition feeds the i-th contiguous column slice of the bounded data block to
// the i-th shape, producing one binding per shape with id i. It also returns the
// number of series columns left unused.
func Partition(block models.DataBlock, data models.DataSettings, shapes []SliceShape) ([]models.SeriesBinding, int, error) {
	r, err := bound(block, data)
	if err != nil {
		return nil, 0, err
	}

	bindings := make([]models.SeriesBinding, 0, len(shapes))
	next := 0
	for i, shape := range shapes {
		w := shape.Width()
		if next+w > len(r.columns) {
			return nil, 0, r.shapeError("fragment %d needs %d columns, %d left", i, w, len(r.columns)-next)
		}
		b, err := r.binding(i, r.columns[next:next+w], shape)
		if err != nil {
			return nil, 0, err
		}
		bindings = append(bindings, b)
		next += w
	}
	return bindings, len(r.columns) - next, nil
}
