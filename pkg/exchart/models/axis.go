package models

// AxisPosition is the side of the plot area an axis is drawn on.
type AxisPosition string

const (
	AxisTop    AxisPosition = "t"
	AxisBottom AxisPosition = "b"
	AxisLeft   AxisPosition = "l"
	AxisRight  AxisPosition = "r"
)

// AxisKind distinguishes category, value and depth axes.
type AxisKind string

const (
	AxisCategory AxisKind = "catAx"
	AxisValue    AxisKind = "valAx"
	AxisDepth    AxisKind = "serAx"
)

// TickMark is a tick mark mode.
type TickMark string

const (
	TickNone  TickMark = "none"
	TickIn    TickMark = "in"
	TickOut   TickMark = "out"
	TickCross TickMark = "cross"
)

// TickLabelPosition places tick labels.
type TickLabelPosition string

const (
	TickLabelNextTo TickLabelPosition = "nextTo"
	TickLabelHigh   TickLabelPosition = "high"
	TickLabelLow    TickLabelPosition = "low"
	TickLabelNone   TickLabelPosition = "none"
)

// Crosses tells where an axis crosses its partner.
type Crosses string

const (
	CrossesAutoZero Crosses = "autoZero"
	CrossesMax      Crosses = "max"
	CrossesMin      Crosses = "min"
)

// Axis is a resolved axis node.
type Axis struct {
	// ID is the numeric axis id referenced by chart groups.
	ID uint32 `json:"id"`
	// CrossAxisID is the id of the partner axis. The sentinel depth axis has no
	// partner: its CrossAxisID is left at zero, which is not a reference, and
	// the sentinel is never written to the node tree.
	CrossAxisID uint32 `json:"cross_axis_id"`
	// Kind is the axis element kind.
	Kind AxisKind `json:"kind"`
	// Position is the side the axis is drawn on.
	Position AxisPosition `json:"position"`
	// Visible is false when the axis is deleted from display.
	Visible bool `json:"visible"`
	// Reversed plots the axis maxMin.
	Reversed bool `json:"reversed"`
	// Title is the axis title text.
	Title string `json:"title,omitempty"`
	// Font is the resolved tick label style.
	Font TextStyle `json:"font"`
	// NumberFormat is the tick label format code.
	NumberFormat      string            `json:"number_format,omitempty"`
	MajorTickMark     TickMark          `json:"major_tick_mark"`
	MinorTickMark     TickMark          `json:"minor_tick_mark"`
	TickLabelPosition TickLabelPosition `json:"tick_label_position"`
	// LabelRotation is the tick label rotation in degrees.
	LabelRotation  int  `json:"label_rotation,omitempty"`
	MajorGridlines bool `json:"major_gridlines"`
	MinorGridlines bool `json:"minor_gridlines"`
	// Crosses tells where the partner axis crosses this one.
	Crosses Crosses  `json:"crosses"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	// Sentinel marks the unreferenced depth axis of 3-D and bubble charts.
	Sentinel bool `json:"sentinel,omitempty"`
	// Secondary marks axes of the secondary pair.
	Secondary bool `json:"secondary,omitempty"`
}
