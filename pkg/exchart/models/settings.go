// Package models defines data structures for chart compilation.
package models

// ChartFamily is the tag selecting a chart family.
type ChartFamily string

const (
	// FamilyBar is a horizontal bar chart.
	FamilyBar ChartFamily = "bar"
	// FamilyColumn is a vertical bar chart.
	FamilyColumn ChartFamily = "column"
	// FamilyLine is a line chart.
	FamilyLine ChartFamily = "line"
	// FamilyArea is an area chart.
	FamilyArea ChartFamily = "area"
	// FamilyScatter is a scatter (XY) or bubble chart.
	FamilyScatter ChartFamily = "scatter"
	// FamilyPie is a pie or doughnut chart.
	FamilyPie ChartFamily = "pie"
	// FamilyCombo composes several families in one plot area.
	FamilyCombo ChartFamily = "combo"
)

// BarGrouping selects how bar/column series are grouped.
type BarGrouping string

const (
	BarClustered        BarGrouping = "clustered"
	BarStacked          BarGrouping = "stacked"
	BarPercentStacked   BarGrouping = "percentStacked"
	BarClustered3D      BarGrouping = "clustered3D"
	BarStacked3D        BarGrouping = "stacked3D"
	BarPercentStacked3D BarGrouping = "percentStacked3D"
)

// Is3D reports whether the grouping is one of the 3-D variants.
func (g BarGrouping) Is3D() bool {
	return g == BarClustered3D || g == BarStacked3D || g == BarPercentStacked3D
}

// Base returns the 2-D grouping a 3-D variant is derived from.
func (g BarGrouping) Base() BarGrouping {
	switch g {
	case BarClustered3D:
		return BarClustered
	case BarStacked3D:
		return BarStacked
	case BarPercentStacked3D:
		return BarPercentStacked
	}
	return g
}

// BarShape selects the solid used by 3-D bar/column charts.
type BarShape string

const (
	ShapeBox          BarShape = "box"
	ShapeCylinder     BarShape = "cylinder"
	ShapeCone         BarShape = "cone"
	ShapeConeToMax    BarShape = "coneToMax"
	ShapePyramid      BarShape = "pyramid"
	ShapePyramidToMax BarShape = "pyramidToMax"
)

// LineGrouping selects the line chart variant.
type LineGrouping string

const (
	LineStandard             LineGrouping = "standard"
	LineStacked              LineGrouping = "stacked"
	LinePercentStacked       LineGrouping = "percentStacked"
	LineStandardMarker       LineGrouping = "standardMarker"
	LineStackedMarker        LineGrouping = "stackedMarker"
	LinePercentStackedMarker LineGrouping = "percentStackedMarker"
)

// AreaGrouping selects the area chart variant.
type AreaGrouping string

const (
	AreaStandard       AreaGrouping = "standard"
	AreaStacked        AreaGrouping = "stacked"
	AreaPercentStacked AreaGrouping = "percentStacked"
)

// ScatterStyle selects how scatter points are connected and marked.
type ScatterStyle string

const (
	// ScatterMarkers draws markers only.
	ScatterMarkers        ScatterStyle = "markers"
	ScatterSmooth         ScatterStyle = "smooth"
	ScatterSmoothMarker   ScatterStyle = "smoothMarker"
	ScatterStraight       ScatterStyle = "straight"
	ScatterStraightMarker ScatterStyle = "straightMarker"
	// ScatterBubble switches the family to bubble mode (value, size column pairs).
	ScatterBubble ScatterStyle = "bubble"
)

// PieVariant selects pie or doughnut.
type PieVariant string

const (
	PieStandard PieVariant = "pie"
	PieDoughnut PieVariant = "doughnut"
)

// BarSettings holds bar and column specific settings.
type BarSettings struct {
	// Grouping is the bar grouping. Defaults to clustered.
	Grouping BarGrouping `json:"grouping,omitempty" yaml:"grouping,omitempty"`
	// CategoryGap is the gap between categories in percent (clustered groupings only).
	CategoryGap *int `json:"category_gap,omitempty" yaml:"category_gap,omitempty"`
	// SeriesOverlap is the overlap between series in percent (clustered groupings only).
	SeriesOverlap *int `json:"series_overlap,omitempty" yaml:"series_overlap,omitempty"`
	// Shape is the solid used by 3-D groupings. Defaults to box.
	Shape BarShape `json:"shape,omitempty" yaml:"shape,omitempty"`
}

// LineSettings holds line specific settings.
type LineSettings struct {
	// Grouping is the line grouping. Defaults to standard.
	Grouping LineGrouping `json:"grouping,omitempty" yaml:"grouping,omitempty"`
	// Smooth smooths every series line.
	Smooth bool `json:"smooth,omitempty" yaml:"smooth,omitempty"`
}

// AreaSettings holds area specific settings.
type AreaSettings struct {
	// Grouping is the area grouping. Defaults to standard.
	Grouping AreaGrouping `json:"grouping,omitempty" yaml:"grouping,omitempty"`
}

// ScatterSettings holds scatter and bubble specific settings.
type ScatterSettings struct {
	// Style is the scatter style. Defaults to markers.
	Style ScatterStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// PieSettings holds pie and doughnut specific settings.
type PieSettings struct {
	// Variant selects pie or doughnut. Defaults to pie.
	Variant PieVariant `json:"variant,omitempty" yaml:"variant,omitempty"`
	// HoleSize is the doughnut hole size in percent. Ignored for pie.
	HoleSize *int `json:"hole_size,omitempty" yaml:"hole_size,omitempty"`
	// FirstSliceAngle is the angle of the first slice in degrees.
	FirstSliceAngle int `json:"first_slice_angle,omitempty" yaml:"first_slice_angle,omitempty"`
	// Explosion is the point explosion in percent.
	Explosion int `json:"explosion,omitempty" yaml:"explosion,omitempty"`
}

// Variant is a family tag plus the payload for that family.
// Only the payload matching Family may be set; a nil payload means defaults.
type Variant struct {
	// Family is the chart family.
	Family ChartFamily `json:"family" yaml:"family"`
	// Bar applies to FamilyBar and FamilyColumn.
	Bar *BarSettings `json:"bar,omitempty" yaml:"bar,omitempty"`
	// Line applies to FamilyLine.
	Line *LineSettings `json:"line,omitempty" yaml:"line,omitempty"`
	// Area applies to FamilyArea.
	Area *AreaSettings `json:"area,omitempty" yaml:"area,omitempty"`
	// Scatter applies to FamilyScatter.
	Scatter *ScatterSettings `json:"scatter,omitempty" yaml:"scatter,omitempty"`
	// Pie applies to FamilyPie.
	Pie *PieSettings `json:"pie,omitempty" yaml:"pie,omitempty"`
}

// IsBubble reports whether the variant is a bubble chart.
func (v Variant) IsBubble() bool {
	return v.Family == FamilyScatter && v.Scatter != nil && v.Scatter.Style == ScatterBubble
}

// PointStyle overrides colors of a single data point.
type PointStyle struct {
	// FillColor is a hex color (RRGGBB).
	FillColor string `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	// BorderColor is a hex color (RRGGBB).
	BorderColor string `json:"border_color,omitempty" yaml:"border_color,omitempty"`
}

// MarkerSymbol is the marker drawn at line and scatter points.
type MarkerSymbol string

const (
	MarkerNone     MarkerSymbol = "none"
	MarkerAuto     MarkerSymbol = "auto"
	MarkerCircle   MarkerSymbol = "circle"
	MarkerDash     MarkerSymbol = "dash"
	MarkerDiamond  MarkerSymbol = "diamond"
	MarkerDot      MarkerSymbol = "dot"
	MarkerPlus     MarkerSymbol = "plus"
	MarkerSquare   MarkerSymbol = "square"
	MarkerStar     MarkerSymbol = "star"
	MarkerTriangle MarkerSymbol = "triangle"
	MarkerX        MarkerSymbol = "x"
)

// MarkerSpec configures series markers.
type MarkerSpec struct {
	// Symbol is the marker symbol.
	Symbol MarkerSymbol `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	// Size is the marker size in points (2-72).
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
}

// SeriesStyle is the per-series override record, matched to series by position.
type SeriesStyle struct {
	// FillColor is a hex color (RRGGBB).
	FillColor string `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	// BorderColor is a hex color (RRGGBB).
	BorderColor string `json:"border_color,omitempty" yaml:"border_color,omitempty"`
	// NumberFormat is the format code applied to the value cache.
	NumberFormat string `json:"number_format,omitempty" yaml:"number_format,omitempty"`
	// DataLabel replaces the chart-level data label default for this series.
	DataLabel *DataLabelSpec `json:"data_label,omitempty" yaml:"data_label,omitempty"`
	// Points holds per-point overrides indexed by point position.
	Points []PointStyle `json:"points,omitempty" yaml:"points,omitempty"`
	// Marker configures markers for line and scatter series.
	Marker *MarkerSpec `json:"marker,omitempty" yaml:"marker,omitempty"`
	// LabelRange is a range formula (e.g., Sheet1!$F$2:$F$5) supplying data label
	// text. It takes precedence over a label column.
	LabelRange string `json:"label_range,omitempty" yaml:"label_range,omitempty"`
}

// AxisOptions configures one axis.
type AxisOptions struct {
	// Title is the axis title text.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Hidden deletes the axis from display.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	// Reversed plots the axis in reverse order.
	Reversed bool `json:"reversed,omitempty" yaml:"reversed,omitempty"`
	// Font is the tick label text style.
	Font TextStyle `json:"font,omitempty" yaml:"font,omitempty"`
	// NumberFormat is the tick label format code.
	NumberFormat string `json:"number_format,omitempty" yaml:"number_format,omitempty"`
	// LabelRotation is the tick label rotation in degrees (-90..90).
	LabelRotation int `json:"label_rotation,omitempty" yaml:"label_rotation,omitempty"`
	// TickLabelPosition places tick labels relative to the axis.
	TickLabelPosition TickLabelPosition `json:"tick_label_position,omitempty" yaml:"tick_label_position,omitempty"`
	// MajorTickMark is the major tick mark mode.
	MajorTickMark TickMark `json:"major_tick_mark,omitempty" yaml:"major_tick_mark,omitempty"`
	// MinorTickMark is the minor tick mark mode.
	MinorTickMark TickMark `json:"minor_tick_mark,omitempty" yaml:"minor_tick_mark,omitempty"`
	// Min is the fixed axis minimum (value axes).
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is the fixed axis maximum (value axes).
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// AxesOptions configures the primary and secondary axis pairs.
// For scatter charts Category is the X value axis and Value the Y value axis.
type AxesOptions struct {
	Category          AxisOptions `json:"category,omitempty" yaml:"category,omitempty"`
	Value             AxisOptions `json:"value,omitempty" yaml:"value,omitempty"`
	SecondaryCategory AxisOptions `json:"secondary_category,omitempty" yaml:"secondary_category,omitempty"`
	SecondaryValue    AxisOptions `json:"secondary_value,omitempty" yaml:"secondary_value,omitempty"`
}

// GridLineOptions toggles grid lines.
type GridLineOptions struct {
	MajorCategory bool `json:"major_category,omitempty" yaml:"major_category,omitempty"`
	// MajorValue defaults to true when unset.
	MajorValue    *bool `json:"major_value,omitempty" yaml:"major_value,omitempty"`
	MinorCategory bool  `json:"minor_category,omitempty" yaml:"minor_category,omitempty"`
	MinorValue    bool  `json:"minor_value,omitempty" yaml:"minor_value,omitempty"`
}

// LegendPosition places the legend.
type LegendPosition string

const (
	LegendBottom   LegendPosition = "bottom"
	LegendTop      LegendPosition = "top"
	LegendLeft     LegendPosition = "left"
	LegendRight    LegendPosition = "right"
	LegendTopRight LegendPosition = "topRight"
)

// LegendOptions configures the legend.
type LegendOptions struct {
	// Hidden removes the legend.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	// Position defaults to bottom.
	Position LegendPosition `json:"position,omitempty" yaml:"position,omitempty"`
	// Overlay lets the legend overlap the plot area.
	Overlay bool `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	// Font is the legend text style.
	Font TextStyle `json:"font,omitempty" yaml:"font,omitempty"`
	// ManualLayout positions the legend manually.
	ManualLayout *Layout `json:"manual_layout,omitempty" yaml:"manual_layout,omitempty"`
}

// TitleOptions configures the chart title.
type TitleOptions struct {
	Text string    `json:"text" yaml:"text"`
	Font TextStyle `json:"font,omitempty" yaml:"font,omitempty"`
}

// PlotAreaOptions configures the plot area.
type PlotAreaOptions struct {
	// ManualLayout positions the plot area manually.
	ManualLayout *Layout `json:"manual_layout,omitempty" yaml:"manual_layout,omitempty"`
}

// DataSettings selects the part of the data block used by the chart.
// Start indexes are 0-based; end indexes are inclusive and 0 means "to the end".
type DataSettings struct {
	RowStart    int `json:"row_start,omitempty" yaml:"row_start,omitempty"`
	RowEnd      int `json:"row_end,omitempty" yaml:"row_end,omitempty"`
	ColumnStart int `json:"column_start,omitempty" yaml:"column_start,omitempty"`
	ColumnEnd   int `json:"column_end,omitempty" yaml:"column_end,omitempty"`
	// CategoryColumn is the absolute column index of the categories. Defaults to ColumnStart.
	CategoryColumn *int `json:"category_column,omitempty" yaml:"category_column,omitempty"`
	// LabelsFromColumn consumes the column after each series as its data label source.
	LabelsFromColumn bool `json:"labels_from_column,omitempty" yaml:"labels_from_column,omitempty"`
}

// ComboFragment is one family taking part in a combo chart.
type ComboFragment struct {
	Variant `yaml:",inline"`
	// Series holds the series overrides for the fragment.
	Series []SeriesStyle `json:"series,omitempty" yaml:"series,omitempty"`
	// DataLabel is the fragment-level data label default.
	DataLabel *DataLabelSpec `json:"data_label,omitempty" yaml:"data_label,omitempty"`
	// SecondaryAxis plots the fragment against the secondary axis pair.
	SecondaryAxis bool `json:"secondary_axis,omitempty" yaml:"secondary_axis,omitempty"`
}

// ChartSpec is the declarative chart configuration handed to the compiler.
type ChartSpec struct {
	Variant `yaml:",inline"`
	// Title is the optional chart title.
	Title *TitleOptions `json:"title,omitempty" yaml:"title,omitempty"`
	// Series holds ordered series overrides.
	Series []SeriesStyle `json:"series,omitempty" yaml:"series,omitempty"`
	// DataLabel is the chart-level data label default.
	DataLabel *DataLabelSpec `json:"data_label,omitempty" yaml:"data_label,omitempty"`
	// Axes configures the axes.
	Axes AxesOptions `json:"axes,omitempty" yaml:"axes,omitempty"`
	// GridLines toggles grid lines.
	GridLines GridLineOptions `json:"grid_lines,omitempty" yaml:"grid_lines,omitempty"`
	// Legend configures the legend.
	Legend LegendOptions `json:"legend,omitempty" yaml:"legend,omitempty"`
	// PlotArea configures the plot area.
	PlotArea PlotAreaOptions `json:"plot_area,omitempty" yaml:"plot_area,omitempty"`
	// Data selects the data block region.
	Data DataSettings `json:"data,omitempty" yaml:"data,omitempty"`
	// Placement is the size and position of the chart on its host.
	Placement *Placement `json:"placement,omitempty" yaml:"placement,omitempty"`
	// Combo lists the fragments of a combo chart (FamilyCombo only).
	Combo []ComboFragment `json:"combo,omitempty" yaml:"combo,omitempty"`
}
