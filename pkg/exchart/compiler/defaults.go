package compiler

// Defaults holds the constants the compiler falls back to when a setting is
// absent. The values match what spreadsheet applications write for new charts.
type Defaults struct {
	// FontSize is the default text size in points.
	FontSize float64
	// TitleFontSize is the default chart title size in points.
	TitleFontSize float64
	// Language is the default text language tag.
	Language string
	// ClusteredGap and ClusteredOverlap apply to clustered bar groupings.
	ClusteredGap     int
	ClusteredOverlap int
	// FixedGap and FixedOverlap apply to every other bar grouping.
	FixedGap     int
	FixedOverlap int
	// HoleSize is the doughnut hole size in percent.
	HoleSize    int
	BubbleScale int
	// Separator joins data label parts.
	Separator  string
	MarkerSize int
	// RotX and RotY are the 3-D view rotation angles.
	RotX int
	RotY int
}

// DefaultDefaults returns the built-in compiler defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		FontSize:         11.97,
		TitleFontSize:    14,
		Language:         "en-US",
		ClusteredGap:     219,
		ClusteredOverlap: -27,
		FixedGap:         150,
		FixedOverlap:     100,
		HoleSize:         50,
		BubbleScale:      100,
		Separator:        ", ",
		MarkerSize:       5,
		RotX:             15,
		RotY:             20,
	}
}
