package models

// GroupKind is the plot-area element a chart group is serialized as.
type GroupKind string

const (
	GroupBar      GroupKind = "barChart"
	GroupBar3D    GroupKind = "bar3DChart"
	GroupLine     GroupKind = "lineChart"
	GroupArea     GroupKind = "areaChart"
	GroupScatter  GroupKind = "scatterChart"
	GroupBubble   GroupKind = "bubbleChart"
	GroupPie      GroupKind = "pieChart"
	GroupDoughnut GroupKind = "doughnutChart"
)

// Marker is a resolved series marker.
type Marker struct {
	Symbol  MarkerSymbol `json:"symbol"`
	Size    int          `json:"size,omitempty"`
	Fill    *ColorSpec   `json:"fill,omitempty"`
	Outline *ColorSpec   `json:"outline,omitempty"`
}

// DataPoint is a per-point override inside a series.
type DataPoint struct {
	// Index is the 0-based point index.
	Index int `json:"index"`
	// Fill is the resolved point fill. Nil keeps the series fill.
	Fill *ColorSpec `json:"fill,omitempty"`
	// Outline is the resolved point outline. Nil keeps the series outline.
	Outline *ColorSpec `json:"outline,omitempty"`
}

// Series is one resolved series node of a chart group.
type Series struct {
	// Binding holds the series id and cell references.
	Binding SeriesBinding `json:"binding"`
	// Fill is the series fill; nil with NoFill false leaves the fill to the application.
	Fill *ColorSpec `json:"fill,omitempty"`
	// NoFill suppresses the fill (line series).
	NoFill bool `json:"no_fill,omitempty"`
	// Outline is the series outline or line color.
	Outline *ColorSpec `json:"outline,omitempty"`
	// NoOutline suppresses the outline (bubble series, marker-only scatter).
	NoOutline        bool        `json:"no_outline,omitempty"`
	InvertIfNegative *bool       `json:"invert_if_negative,omitempty"`
	Marker           *Marker     `json:"marker,omitempty"`
	Explosion        *int        `json:"explosion,omitempty"`
	Points           []DataPoint `json:"points,omitempty"`
	DataLabels       *DataLabels `json:"data_labels,omitempty"`
	Smooth           *bool       `json:"smooth,omitempty"`
	Bubble3D         *bool       `json:"bubble_3d,omitempty"`
	// NumberFormat is the value format code.
	NumberFormat string `json:"number_format,omitempty"`
}

// ChartGroup is one chart-type subtree of the plot area.
type ChartGroup struct {
	// Family is the chart family that produced the group.
	Family ChartFamily `json:"family"`
	// Kind is the group element.
	Kind GroupKind `json:"kind"`
	// BarDirection is "bar" or "col" for bar groups.
	BarDirection string `json:"bar_direction,omitempty"`
	// Grouping is the grouping value for bar, line and area groups.
	Grouping string `json:"grouping,omitempty"`
	// ScatterStyle is the scatter style value for scatter groups.
	ScatterStyle string `json:"scatter_style,omitempty"`
	VaryColors   bool        `json:"vary_colors"`
	Series       []Series    `json:"series"`
	DataLabels   *DataLabels `json:"data_labels,omitempty"`
	GapWidth     *int        `json:"gap_width,omitempty"`
	Overlap      *int        `json:"overlap,omitempty"`
	Shape        BarShape    `json:"shape,omitempty"`
	// ShowMarker is the line group marker flag.
	ShowMarker          *bool `json:"show_marker,omitempty"`
	FirstSliceAngle     *int  `json:"first_slice_angle,omitempty"`
	HoleSize            *int  `json:"hole_size,omitempty"`
	BubbleScale         *int  `json:"bubble_scale,omitempty"`
	ShowNegativeBubbles *bool `json:"show_negative_bubbles,omitempty"`
	// AxisIDs lists the referenced axis ids, sentinel depth id last when present.
	AxisIDs []uint32 `json:"axis_ids,omitempty"`
	// Secondary marks groups plotted against the secondary axis pair.
	Secondary bool `json:"secondary,omitempty"`
}

// PlotArea is the resolved plot area.
type PlotArea struct {
	// Layout is the manual layout, nil for automatic.
	Layout *Layout      `json:"layout,omitempty"`
	Groups []ChartGroup `json:"groups"`
	Axes   []Axis       `json:"axes,omitempty"`
}

// Title is a resolved chart title.
type Title struct {
	Text string    `json:"text"`
	Font TextStyle `json:"font"`
}

// Legend is a resolved legend.
type Legend struct {
	Position LegendPosition `json:"position"`
	Overlay  bool           `json:"overlay"`
	Font     TextStyle      `json:"font"`
	Layout   *Layout        `json:"layout,omitempty"`
}

// View3D holds the 3-D view of 3-D bar charts.
type View3D struct {
	RotX         int  `json:"rot_x"`
	RotY         int  `json:"rot_y"`
	RightAngleAx bool `json:"right_angle_axes"`
}

// ChartDocument is the compiled, cross-referenced chart document model.
// It is produced once per compile and never mutated by the compiler afterwards.
type ChartDocument struct {
	// ID is a deterministic identifier derived from the compile inputs.
	ID string `json:"id"`
	// Family is the chart family tag of the chart spec.
	Family ChartFamily `json:"family"`
	// Title is the chart title, nil when none.
	Title *Title `json:"title,omitempty"`
	// AutoTitleDeleted suppresses the application's automatic title.
	AutoTitleDeleted bool `json:"auto_title_deleted"`
	// View3D is set for 3-D charts.
	View3D *View3D `json:"view_3d,omitempty"`
	// PlotArea holds chart groups and axes.
	PlotArea PlotArea `json:"plot_area"`
	// Legend is nil when hidden.
	Legend *Legend `json:"legend,omitempty"`
	// PlotVisibleOnly plots only visible cells.
	PlotVisibleOnly bool `json:"plot_visible_only"`
	// DisplayBlanksAs tells how blank cells are plotted.
	DisplayBlanksAs string `json:"display_blanks_as"`
	// Placement is the size and position on the host.
	Placement Placement `json:"placement"`
}

// Bindings returns the series bindings of all groups in plot order.
func (d *ChartDocument) Bindings() []SeriesBinding {
	var out []SeriesBinding
	for _, g := range d.PlotArea.Groups {
		for _, s := range g.Series {
			out = append(out, s.Binding)
		}
	}
	return out
}

// Axis returns the axis with the given id.
func (d *ChartDocument) Axis(id uint32) (Axis, bool) {
	for _, ax := range d.PlotArea.Axes {
		if ax.ID == id && !ax.Sentinel {
			return ax, true
		}
	}
	return Axis{}, false
}
