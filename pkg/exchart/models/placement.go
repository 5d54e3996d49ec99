package models

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// Default chart size in EMU (a 16:9 slide).
const (
	DefaultPlacementWidth  int64 = 12192000
	DefaultPlacementHeight int64 = 6858000
)

// CellAnchor is a cell position with an EMU offset, used by worksheet hosts.
type CellAnchor struct {
	Column       int   `json:"column" yaml:"column"`
	ColumnOffset int64 `json:"column_offset,omitempty" yaml:"column_offset,omitempty"`
	Row          int   `json:"row" yaml:"row"`
	RowOffset    int64 `json:"row_offset,omitempty" yaml:"row_offset,omitempty"`
}

// Placement is the size and position of a chart on its hosting surface.
// Any family accepts the same placement regardless of the host.
type Placement struct {
	// X is the left offset in EMU.
	X int64 `json:"x" yaml:"x"`
	// Y is the top offset in EMU.
	Y int64 `json:"y" yaml:"y"`
	// Width is the width in EMU.
	Width int64 `json:"width" yaml:"width"`
	// Height is the height in EMU.
	Height int64 `json:"height" yaml:"height"`
	// From and To anchor the chart to worksheet cells when set.
	From *CellAnchor `json:"from,omitempty" yaml:"from,omitempty"`
	To   *CellAnchor `json:"to,omitempty" yaml:"to,omitempty"`
}

// DefaultPlacement returns a full-slide placement at the origin.
func DefaultPlacement() Placement {
	return Placement{Width: DefaultPlacementWidth, Height: DefaultPlacementHeight}
}

// PlacementFromPixels converts a pixel rectangle at 96 DPI to a placement.
func PlacementFromPixels(x, y, w, h int) Placement {
	return Placement{
		X:      PixelsToEMU(x),
		Y:      PixelsToEMU(y),
		Width:  PixelsToEMU(w),
		Height: PixelsToEMU(h),
	}
}

// PixelsToEMU converts pixels at 96 DPI to EMU.
func PixelsToEMU(px int) int64 {
	return int64(px) * EMUPerPixel
}

// EMUToPixels converts EMU (English Metric Units) to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// Layout is a manual layout in fractions of the chart area (0..1).
type Layout struct {
	// X is considered from left to right.
	X float64 `json:"x" yaml:"x"`
	// Y is considered from top to bottom.
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}
