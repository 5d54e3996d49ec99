package models

// LabelPosition is the placement of a data label relative to its point.
type LabelPosition string

const (
	LabelCenter     LabelPosition = "center"
	LabelInsideEnd  LabelPosition = "insideEnd"
	LabelInsideBase LabelPosition = "insideBase"
	LabelOutsideEnd LabelPosition = "outsideEnd"
	LabelBestFit    LabelPosition = "bestFit"
	LabelLeft       LabelPosition = "left"
	LabelRight      LabelPosition = "right"
	LabelAbove      LabelPosition = "above"
	LabelBelow      LabelPosition = "below"
	// LabelShow shows labels without a position (area and doughnut charts).
	LabelShow LabelPosition = "show"
)

// TextStyle is a run style for labels, titles and tick labels.
type TextStyle struct {
	Bold      bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strike    bool `json:"strike,omitempty" yaml:"strike,omitempty"`
	// Size is the font size in points. Zero selects the default size.
	Size float64 `json:"size,omitempty" yaml:"size,omitempty"`
	// Color is a hex color (RRGGBB). Empty selects the theme text color.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	// Language is a BCP 47 language tag. Empty selects the default language.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// DataLabelSpec configures data labels for a chart or a series.
type DataLabelSpec struct {
	ShowValue        bool `json:"show_value,omitempty" yaml:"show_value,omitempty"`
	ShowCategoryName bool `json:"show_category_name,omitempty" yaml:"show_category_name,omitempty"`
	ShowSeriesName   bool `json:"show_series_name,omitempty" yaml:"show_series_name,omitempty"`
	ShowLegendKey    bool `json:"show_legend_key,omitempty" yaml:"show_legend_key,omitempty"`
	ShowBubbleSize   bool `json:"show_bubble_size,omitempty" yaml:"show_bubble_size,omitempty"`
	// ShowPercent shows each slice's share of the total. Pie and doughnut only.
	ShowPercent bool `json:"show_percent,omitempty" yaml:"show_percent,omitempty"`
	// Separator joins label parts when several are shown. Defaults to ", ".
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// Position must be legal for the chart family.
	Position LabelPosition `json:"position,omitempty" yaml:"position,omitempty"`
	// Text is the label text style.
	Text TextStyle `json:"text,omitempty" yaml:"text,omitempty"`
}

// DataLabels is a resolved data label node.
type DataLabels struct {
	// Deleted hides labels a group-level default would otherwise show.
	Deleted bool `json:"deleted,omitempty"`
	// Position is empty when the family does not place labels.
	Position LabelPosition `json:"position,omitempty"`
	// Text is the resolved text style.
	Text             TextStyle `json:"text"`
	ShowLegendKey    bool      `json:"show_legend_key"`
	ShowValue        bool      `json:"show_value"`
	ShowCategoryName bool      `json:"show_category_name"`
	ShowSeriesName   bool      `json:"show_series_name"`
	ShowPercent      bool      `json:"show_percent"`
	ShowBubbleSize   bool      `json:"show_bubble_size"`
	// Separator is set only when two or more parts are shown.
	Separator string `json:"separator,omitempty"`
	// Range is the cell range supplying label text, if any.
	Range *Ref `json:"range,omitempty"`
}
