package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolRef(b bool) *bool { return &b }

func intRef(i int) *int { return &i }

func colorRef(c ColorSpec) *ColorSpec { return &c }

func TestDataLabelsTreeOrder(t *testing.T) {
	d := DataLabels{
		Position:         LabelOutsideEnd,
		Text:             TextStyle{Size: 10, Language: "en-US"},
		ShowValue:        true,
		ShowCategoryName: true,
		Separator:        ", ",
		Range:            &Ref{Formula: "Sheet1!$F$2:$F$5"},
	}

	assert.Equal(t, []string{
		"dLblPos", "spPr", "txPr",
		"showLegendKey", "showVal", "showCatName", "showSerName", "showPercent", "showBubbleSize",
		"separator", "extLst",
	}, d.Tree().ChildNames())

	pos, ok := d.Tree().Child("dLblPos")
	require.True(t, ok)
	assert.Equal(t, "outEnd", pos.Value)

	d.Position = LabelShow
	d.Separator = ""
	d.Range = nil
	names := d.Tree().ChildNames()
	assert.Equal(t, "spPr", names[0])
	assert.NotContains(t, names, "separator")

	assert.Equal(t, []string{"delete"}, DataLabels{Deleted: true, ShowValue: true}.Tree().ChildNames())
}

func TestSeriesTreeOrder(t *testing.T) {
	s := Series{
		Binding: SeriesBinding{
			ID:         2,
			Header:     Ref{Formula: "Sheet1!$D$1", Cache: []string{"East"}},
			Categories: Ref{Formula: "Sheet1!$A$2:$A$3", Cache: []string{"Q1", "Q2"}},
			Values:     Ref{Formula: "Sheet1!$D$2:$D$3", Cache: []string{"30", ""}, Numeric: true},
			Labels:     &Ref{Formula: "Sheet1!$E$2:$E$3"},
		},
		Fill:             colorRef(AccentColor(2)),
		InvertIfNegative: boolRef(false),
		Points:           []DataPoint{{Index: 1, Fill: colorRef(LiteralColor("FF0000"))}},
		DataLabels:       &DataLabels{ShowValue: true},
		NumberFormat:     "0.0",
	}

	tree := s.Tree(GroupBar)
	assert.Equal(t, []string{
		"idx", "order", "tx", "spPr", "invertIfNegative", "dPt", "dLbls", "cat", "val", "extLst",
	}, tree.ChildNames())

	idx, _ := tree.Child("idx")
	assert.Equal(t, "2", idx.Value)

	val, _ := tree.Child("val")
	formats := val.Find("formatCode")
	require.Len(t, formats, 1)
	assert.Equal(t, "0.0", formats[0].Value)
	// Blank cached values are not written as points.
	assert.Len(t, val.Find("pt"), 1)
	count := val.Find("ptCount")
	require.Len(t, count, 1)
	assert.Equal(t, "2", count[0].Value)

	cat, _ := tree.Child("cat")
	assert.Len(t, cat.Find("strRef"), 1)

	dpt, _ := tree.Child("dPt")
	assert.Equal(t, []string{"idx", "invertIfNegative", "spPr"}, dpt.ChildNames())
}

func TestBubbleSeriesTreeOrder(t *testing.T) {
	s := Series{
		Binding: SeriesBinding{
			Values: Ref{Numeric: true},
			Sizes:  &Ref{Formula: "Sheet1!$C$2:$C$3", Numeric: true},
		},
		Fill:             colorRef(AccentColor(0)),
		NoOutline:        true,
		InvertIfNegative: boolRef(false),
		Bubble3D:         boolRef(false),
	}

	assert.Equal(t, []string{
		"idx", "order", "tx", "spPr", "invertIfNegative", "xVal", "yVal", "bubbleSize", "bubble3D",
	}, s.Tree(GroupBubble).ChildNames())

	sp, _ := s.Tree(GroupBubble).Child("spPr")
	assert.Equal(t, []string{"solidFill", "ln"}, sp.ChildNames())
	ln, _ := sp.Child("ln")
	assert.Equal(t, []string{"noFill"}, ln.ChildNames())
}

func TestLineSeriesTree(t *testing.T) {
	s := Series{
		Outline: colorRef(LiteralColor("123456")),
		Marker:  &Marker{Symbol: MarkerCircle, Size: 5, Fill: colorRef(AccentColor(0)), Outline: colorRef(AccentColor(0))},
		Smooth:  boolRef(true),
	}

	tree := s.Tree(GroupLine)
	assert.Equal(t, []string{"idx", "order", "tx", "spPr", "marker", "cat", "val", "smooth"}, tree.ChildNames())

	marker, _ := tree.Child("marker")
	assert.Equal(t, []string{"symbol", "size", "spPr"}, marker.ChildNames())
	clr := tree.Find("srgbClr")
	require.Len(t, clr, 1)
	assert.Equal(t, "123456", clr[0].Value)
}

func TestChartGroupTreeOrder(t *testing.T) {
	g := ChartGroup{
		Kind:         GroupBar,
		BarDirection: "col",
		Grouping:     "clustered",
		Series:       []Series{{}, {Binding: SeriesBinding{ID: 1}}},
		DataLabels:   &DataLabels{ShowValue: true},
		GapWidth:     intRef(150),
		Overlap:      intRef(100),
		AxisIDs:      []uint32{1362418656, 1358349936},
	}

	assert.Equal(t, []string{
		"barDir", "grouping", "varyColors", "ser", "ser", "dLbls", "gapWidth", "overlap", "axId", "axId",
	}, g.Tree().ChildNames())

	pie := ChartGroup{Kind: GroupDoughnut, VaryColors: true, FirstSliceAngle: intRef(0), HoleSize: intRef(50)}
	assert.Equal(t, []string{"varyColors", "firstSliceAng", "holeSize"}, pie.Tree().ChildNames())

	line := ChartGroup{Kind: GroupLine, Grouping: "standard", ShowMarker: boolRef(true), AxisIDs: []uint32{1, 2}}
	assert.Equal(t, []string{"grouping", "varyColors", "marker", "axId", "axId"}, line.Tree().ChildNames())
}

func TestAxisTreeOrder(t *testing.T) {
	lo, hi := 0.0, 100.0
	a := Axis{
		ID:                1358349936,
		CrossAxisID:       1362418656,
		Kind:              AxisValue,
		Position:          AxisLeft,
		Visible:           true,
		Reversed:          true,
		Title:             "Revenue",
		Font:              TextStyle{Size: 9, Language: "en-US"},
		NumberFormat:      "#,##0",
		MajorTickMark:     TickOut,
		MinorTickMark:     TickNone,
		TickLabelPosition: TickLabelNextTo,
		LabelRotation:     -45,
		MajorGridlines:    true,
		Crosses:           CrossesAutoZero,
		Min:               &lo,
		Max:               &hi,
	}

	tree := a.Tree()
	assert.Equal(t, "valAx", tree.Name)
	assert.Equal(t, []string{
		"axId", "scaling", "delete", "axPos", "majorGridlines", "title", "numFmt",
		"majorTickMark", "minorTickMark", "tickLblPos", "spPr", "txPr", "crossAx", "crosses", "crossBetween",
	}, tree.ChildNames())

	scaling, _ := tree.Child("scaling")
	assert.Equal(t, []string{"orientation", "max", "min"}, scaling.ChildNames())
	orientation, _ := scaling.Child("orientation")
	assert.Equal(t, "maxMin", orientation.Value)

	crossAx, _ := tree.Child("crossAx")
	assert.Equal(t, "1362418656", crossAx.Value)

	bodyPr := tree.Find("bodyPr")
	require.NotEmpty(t, bodyPr)
	assert.Contains(t, bodyPr[len(bodyPr)-1].Attrs, Attr{Key: "rot", Value: "-2700000"})

	cat := Axis{Kind: AxisCategory, Visible: false}
	names := cat.Tree().ChildNames()
	assert.Equal(t, []string{"auto", "lblAlgn", "lblOffset", "noMultiLvlLbl"}, names[len(names)-4:])
	del, _ := cat.Tree().Child("delete")
	assert.Equal(t, "1", del.Value)
}

func TestChartDocumentTree(t *testing.T) {
	doc := &ChartDocument{
		Title:           &Title{Text: "Sales", Font: TextStyle{Size: 14}},
		View3D:          &View3D{RotX: 15, RotY: 20, RightAngleAx: true},
		PlotVisibleOnly: true,
		DisplayBlanksAs: "gap",
		PlotArea: PlotArea{
			Layout: &Layout{X: 0.1, Y: 0.1, Width: 0.5, Height: 0.5},
			Groups: []ChartGroup{{Kind: GroupBar3D, AxisIDs: []uint32{1, 2, 0}}},
			Axes: []Axis{
				{ID: 1, CrossAxisID: 2, Kind: AxisCategory},
				{ID: 2, CrossAxisID: 1, Kind: AxisValue},
				{ID: 0, Kind: AxisDepth, Sentinel: true},
			},
		},
		Legend: &Legend{Position: LegendRight},
	}

	tree := doc.Tree()
	assert.Equal(t, "chartSpace", tree.Name)
	assert.Equal(t, []string{"date1904", "roundedCorners", "chart"}, tree.ChildNames())

	chart, _ := tree.Child("chart")
	assert.Equal(t, []string{
		"title", "autoTitleDeleted", "view3D", "plotArea", "legend", "plotVisOnly", "dispBlanksAs",
	}, chart.ChildNames())

	plotArea, _ := chart.Child("plotArea")
	assert.Equal(t, []string{"layout", "bar3DChart", "catAx", "valAx", "spPr"}, plotArea.ChildNames())
	assert.Len(t, plotArea.Find("manualLayout"), 1)

	legend, _ := chart.Child("legend")
	pos, _ := legend.Child("legendPos")
	assert.Equal(t, "r", pos.Value)

	texts := tree.Find("t")
	require.Len(t, texts, 1)
	assert.Equal(t, "Sales", texts[0].Value)
}

func TestTextStyleTree(t *testing.T) {
	tree := TextStyle{Size: 11.97, Bold: true, Color: "FF0000", Language: "ja-JP"}.Tree()
	assert.Equal(t, []string{"bodyPr", "lstStyle", "p"}, tree.ChildNames())

	rp := tree.Find("defRPr")
	require.Len(t, rp, 1)
	assert.Contains(t, rp[0].Attrs, Attr{Key: "sz", Value: "1197"})
	assert.Contains(t, rp[0].Attrs, Attr{Key: "b", Value: "1"})
	assert.Contains(t, rp[0].Attrs, Attr{Key: "lang", Value: "ja-JP"})
	assert.Len(t, rp[0].Find("srgbClr"), 1)
}

func TestNodeHelpers(t *testing.T) {
	n := elem("root", leaf("a", "1"), elem("b", leaf("a", "2")))

	assert.Equal(t, 1, n.Index("b"))
	assert.Equal(t, -1, n.Index("c"))
	_, ok := n.Child("c")
	assert.False(t, ok)

	found := n.Find("a")
	require.Len(t, found, 2)
	assert.Equal(t, "1", found[0].Value)
	assert.Equal(t, "2", found[1].Value)
}
