package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func TestColumnClusteredExample(t *testing.T) {
	block := newBlock(t, "Sheet1", columns(quarterly, 3))
	gap, overlap := 150, 100
	spec := models.ChartSpec{Variant: models.Variant{
		Family: models.FamilyColumn,
		Bar:    &models.BarSettings{Grouping: models.BarClustered, CategoryGap: &gap, SeriesOverlap: &overlap},
	}}

	doc := mustCompile(t, spec, block)

	require.Len(t, doc.PlotArea.Groups, 1)
	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupBar, group.Kind)
	assert.Equal(t, "col", group.BarDirection)
	assert.Equal(t, "clustered", group.Grouping)
	require.NotNil(t, group.GapWidth)
	require.NotNil(t, group.Overlap)
	assert.Equal(t, 150, *group.GapWidth)
	assert.Equal(t, 100, *group.Overlap)

	ids := []int{}
	for _, b := range doc.Bindings() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int{0, 1}, ids)

	require.Len(t, doc.PlotArea.Axes, 2)
	cat, val := doc.PlotArea.Axes[0], doc.PlotArea.Axes[1]
	assert.Equal(t, models.AxisLeft, cat.Position)
	assert.Equal(t, models.AxisBottom, val.Position)
	assert.Equal(t, []uint32{cat.ID, val.ID}, group.AxisIDs)
	requireSymmetricAxes(t, doc)

	for i, ser := range group.Series {
		require.NotNil(t, ser.Fill)
		assert.Equal(t, models.AccentColor(i), *ser.Fill)
		assert.Nil(t, ser.Outline)
		require.NotNil(t, ser.InvertIfNegative)
		assert.False(t, *ser.InvertIfNegative)
	}
}

func TestBarSpacing(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	gap := 80

	tests := []struct {
		name     string
		settings models.BarSettings
		gap      int
		overlap  *int
	}{
		{"clustered defaults", models.BarSettings{}, 219, intPtr(-27)},
		{"clustered gap", models.BarSettings{CategoryGap: &gap}, 80, intPtr(-27)},
		{"stacked ignores settings", models.BarSettings{Grouping: models.BarStacked, CategoryGap: &gap}, 150, intPtr(100)},
		{"percent stacked", models.BarSettings{Grouping: models.BarPercentStacked}, 150, intPtr(100)},
		{"clustered 3-D", models.BarSettings{Grouping: models.BarClustered3D, CategoryGap: &gap}, 80, nil},
		{"stacked 3-D", models.BarSettings{Grouping: models.BarStacked3D}, 150, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings
			spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyBar, Bar: &settings}}
			group := mustCompile(t, spec, block).PlotArea.Groups[0]
			require.NotNil(t, group.GapWidth)
			assert.Equal(t, tt.gap, *group.GapWidth)
			assert.Equal(t, tt.overlap, group.Overlap)
			assert.Equal(t, "bar", group.BarDirection)
		})
	}
}

func TestBar3D(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	doc := mustCompile(t, columnSpec(models.BarStacked3D), block)

	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupBar3D, group.Kind)
	assert.Equal(t, "stacked", group.Grouping)
	assert.Equal(t, models.ShapeBox, group.Shape)
	assert.Equal(t, []uint32{PrimaryCategoryAxisID, PrimaryValueAxisID, DepthAxisID}, group.AxisIDs)

	require.NotNil(t, doc.View3D)
	assert.Equal(t, 15, doc.View3D.RotX)
	assert.Equal(t, 20, doc.View3D.RotY)
	assert.True(t, doc.View3D.RightAngleAx)

	require.Len(t, doc.PlotArea.Axes, 3)
	assert.True(t, doc.PlotArea.Axes[2].Sentinel)
	_, ok := doc.Axis(DepthAxisID)
	assert.False(t, ok)
	requireSymmetricAxes(t, doc)

	// The sentinel axis is referenced by the group but never serialized.
	tree := doc.PlotArea.Tree()
	assert.Len(t, tree.Find("catAx"), 1)
	assert.Len(t, tree.Find("valAx"), 1)
	assert.Empty(t, tree.Find("serAx"))
}

func TestBarSettingsErrors(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	bad, overlap := 600, -150

	tests := []struct {
		name     string
		settings models.BarSettings
		field    string
	}{
		{"unknown grouping", models.BarSettings{Grouping: "sideways"}, "bar.grouping"},
		{"shape on 2-D", models.BarSettings{Shape: models.ShapeCone}, "bar.shape"},
		{"unknown shape", models.BarSettings{Grouping: models.BarClustered3D, Shape: "sphere"}, "bar.shape"},
		{"gap range", models.BarSettings{CategoryGap: &bad}, "bar.category_gap"},
		{"overlap range", models.BarSettings{SeriesOverlap: &overlap}, "bar.series_overlap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings
			spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyColumn, Bar: &settings}}
			_, err := compileSpec(t, spec, block)
			requireConfigError(t, err, tt.field)
		})
	}
}

func TestBarPointOverrides(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	spec := columnSpec(models.BarClustered)
	spec.Series = []models.SeriesStyle{{
		BorderColor: "000000",
		Points: []models.PointStyle{
			{},
			{FillColor: "FF0000"},
			{}, {}, {}, {},
			{FillColor: "00FF00"},
		},
	}}

	group := mustCompile(t, spec, block).PlotArea.Groups[0]
	ser := group.Series[0]
	require.NotNil(t, ser.Outline)
	assert.Equal(t, "000000", ser.Outline.Hex)

	// The override at point 6 lies past the four data points.
	require.Len(t, ser.Points, 1)
	assert.Equal(t, 1, ser.Points[0].Index)
	assert.Equal(t, models.LiteralColor("FF0000"), *ser.Points[0].Fill)
	assert.Equal(t, models.LiteralColor("000000"), *ser.Points[0].Outline)
}

func TestLineChart(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	spec := models.ChartSpec{
		Variant: models.Variant{
			Family: models.FamilyLine,
			Line:   &models.LineSettings{Grouping: models.LineStackedMarker, Smooth: true},
		},
		Series: []models.SeriesStyle{
			{BorderColor: "123456", Marker: &models.MarkerSpec{Symbol: models.MarkerDiamond, Size: 9}},
		},
	}

	doc := mustCompile(t, spec, block)
	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupLine, group.Kind)
	assert.Equal(t, "stacked", group.Grouping)
	require.NotNil(t, group.ShowMarker)
	assert.True(t, *group.ShowMarker)

	first := group.Series[0]
	assert.Equal(t, models.LiteralColor("123456"), *first.Outline)
	require.NotNil(t, first.Marker)
	assert.Equal(t, models.MarkerDiamond, first.Marker.Symbol)
	assert.Equal(t, 9, first.Marker.Size)
	assert.True(t, *first.Smooth)

	second := group.Series[1]
	assert.Equal(t, models.AccentColor(1), *second.Outline)
	assert.Equal(t, models.MarkerCircle, second.Marker.Symbol)
	assert.Equal(t, 5, second.Marker.Size)
	assert.Equal(t, models.AccentColor(1), *second.Marker.Fill)

	cat, val := doc.PlotArea.Axes[0], doc.PlotArea.Axes[1]
	assert.Equal(t, models.AxisBottom, cat.Position)
	assert.Equal(t, models.AxisLeft, val.Position)
}

func TestLineWithoutMarkers(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyLine}}

	group := mustCompile(t, spec, block).PlotArea.Groups[0]
	assert.Equal(t, "standard", group.Grouping)
	for _, ser := range group.Series {
		assert.Equal(t, models.MarkerNone, ser.Marker.Symbol)
		assert.Equal(t, []string{"symbol"}, ser.Marker.Tree().ChildNames())
		assert.False(t, *ser.Smooth)
	}
}

func TestLineErrors(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)

	spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyLine, Line: &models.LineSettings{Grouping: "wavy"}}}
	_, err := compileSpec(t, spec, block)
	requireConfigError(t, err, "line.grouping")

	spec = models.ChartSpec{
		Variant: models.Variant{Family: models.FamilyLine},
		Series:  []models.SeriesStyle{{}, {Marker: &models.MarkerSpec{Size: 100}}},
	}
	_, err = compileSpec(t, spec, block)
	requireConfigError(t, err, "series[1].marker.size")

	spec.Series = []models.SeriesStyle{{Marker: &models.MarkerSpec{Symbol: "heart"}}}
	_, err = compileSpec(t, spec, block)
	requireConfigError(t, err, "series[0].marker.symbol")

	spec.Series = []models.SeriesStyle{{NumberFormat: " "}}
	_, err = compileSpec(t, spec, block)
	requireConfigError(t, err, "series[0].number_format")
}

func TestAreaChart(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	spec := models.ChartSpec{
		Variant:   models.Variant{Family: models.FamilyArea, Area: &models.AreaSettings{Grouping: models.AreaPercentStacked}},
		DataLabel: &models.DataLabelSpec{ShowValue: true},
	}

	doc := mustCompile(t, spec, block)
	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupArea, group.Kind)
	assert.Equal(t, "percentStacked", group.Grouping)
	require.NotNil(t, group.DataLabels)
	assert.Empty(t, group.DataLabels.Position)
	for i, ser := range group.Series {
		assert.Equal(t, models.AccentColor(i), *ser.Fill)
	}
	assert.Equal(t, models.AxisBottom, doc.PlotArea.Axes[0].Position)

	spec.Variant.Area = &models.AreaSettings{Grouping: "3d"}
	_, err := compileSpec(t, spec, block)
	requireConfigError(t, err, "area.grouping")
}

func TestScatterChart(t *testing.T) {
	block := newBlock(t, "Sheet1", [][]string{
		{"x", "y1", "y2"},
		{"1", "10", "5"},
		{"2", "12", "7"},
		{"3", "15", "6"},
	})

	tests := []struct {
		style  models.ScatterStyle
		value  string
		line   bool
		symbol models.MarkerSymbol
		smooth bool
	}{
		{models.ScatterMarkers, "lineMarker", false, models.MarkerAuto, false},
		{models.ScatterStraight, "line", true, models.MarkerNone, false},
		{models.ScatterStraightMarker, "lineMarker", true, models.MarkerCircle, false},
		{models.ScatterSmooth, "smooth", true, models.MarkerNone, true},
		{models.ScatterSmoothMarker, "smoothMarker", true, models.MarkerCircle, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			spec := models.ChartSpec{Variant: models.Variant{
				Family:  models.FamilyScatter,
				Scatter: &models.ScatterSettings{Style: tt.style},
			}}
			doc := mustCompile(t, spec, block)
			group := doc.PlotArea.Groups[0]
			assert.Equal(t, models.GroupScatter, group.Kind)
			assert.Equal(t, tt.value, group.ScatterStyle)
			require.Len(t, group.Series, 2)
			for _, ser := range group.Series {
				assert.Equal(t, !tt.line, ser.NoOutline)
				assert.Equal(t, tt.line, ser.Outline != nil)
				assert.Equal(t, tt.symbol, ser.Marker.Symbol)
				assert.Equal(t, tt.smooth, *ser.Smooth)
				assert.True(t, ser.Binding.Categories.Numeric)
			}

			require.Len(t, doc.PlotArea.Axes, 2)
			assert.Equal(t, models.AxisValue, doc.PlotArea.Axes[0].Kind)
			assert.Equal(t, models.AxisValue, doc.PlotArea.Axes[1].Kind)
			requireSymmetricAxes(t, doc)

			ser := group.Series[0].Tree(group.Kind)
			assert.GreaterOrEqual(t, ser.Index("xVal"), 0)
			assert.Less(t, ser.Index("xVal"), ser.Index("yVal"))
			assert.Equal(t, -1, ser.Index("cat"))
		})
	}
}

func TestBubbleChart(t *testing.T) {
	block := newBlock(t, "Sheet1", [][]string{
		{"x", "Revenue", "Size", "Cost", "Size"},
		{"1", "10", "3", "4", "1"},
		{"2", "20", "5", "6", "2"},
	})
	spec := models.ChartSpec{
		Variant:   models.Variant{Family: models.FamilyScatter, Scatter: &models.ScatterSettings{Style: models.ScatterBubble}},
		DataLabel: &models.DataLabelSpec{ShowBubbleSize: true},
	}

	doc := mustCompile(t, spec, block)
	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupBubble, group.Kind)
	require.Len(t, group.Series, 2)
	assert.Equal(t, 100, *group.BubbleScale)
	assert.True(t, *group.ShowNegativeBubbles)
	assert.Equal(t, []uint32{PrimaryCategoryAxisID, PrimaryValueAxisID, DepthAxisID}, group.AxisIDs)
	require.NotNil(t, group.DataLabels)
	assert.True(t, group.DataLabels.ShowBubbleSize)

	for i, ser := range group.Series {
		assert.True(t, ser.NoOutline)
		assert.False(t, *ser.Bubble3D)
		require.NotNil(t, ser.Binding.Sizes)
		assert.Equal(t, models.AccentColor(i), *ser.Fill)
	}
	assert.Equal(t, "Sheet1!$E$2:$E$3", group.Series[1].Binding.Sizes.Formula)

	tree := group.Series[0].Tree(group.Kind)
	assert.Less(t, tree.Index("yVal"), tree.Index("bubbleSize"))
	assert.Less(t, tree.Index("bubbleSize"), tree.Index("bubble3D"))

	require.Len(t, doc.PlotArea.Axes, 3)
	assert.True(t, doc.PlotArea.Axes[2].Sentinel)
	requireSymmetricAxes(t, doc)

	_, err := compileSpec(t, spec, newBlock(t, "Sheet1", columns(quarterly, 4)))
	requireShapeError(t, err)
}

func TestScatterErrors(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)

	spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyScatter, Scatter: &models.ScatterSettings{Style: "dots"}}}
	_, err := compileSpec(t, spec, block)
	requireConfigError(t, err, "scatter.style")

	spec = models.ChartSpec{
		Variant:   models.Variant{Family: models.FamilyScatter},
		DataLabel: &models.DataLabelSpec{ShowBubbleSize: true},
	}
	_, err = compileSpec(t, spec, block)
	requireConfigError(t, err, "data_label.show_bubble_size")
}

func TestPieChart(t *testing.T) {
	block := newBlock(t, "Sheet1", columns(quarterly, 2))
	spec := models.ChartSpec{
		Variant: models.Variant{Family: models.FamilyPie, Pie: &models.PieSettings{FirstSliceAngle: 90, Explosion: 10}},
		Series:  []models.SeriesStyle{{Points: []models.PointStyle{{}, {FillColor: "ABCDEF"}}}},
	}

	doc := mustCompile(t, spec, block)
	assert.Empty(t, doc.PlotArea.Axes)

	group := doc.PlotArea.Groups[0]
	assert.Equal(t, models.GroupPie, group.Kind)
	assert.True(t, group.VaryColors)
	assert.Equal(t, 90, *group.FirstSliceAngle)
	assert.Nil(t, group.HoleSize)
	assert.Empty(t, group.AxisIDs)

	ser := group.Series[0]
	assert.Equal(t, 10, *ser.Explosion)
	require.Len(t, ser.Points, 4)
	assert.Equal(t, models.AccentColor(0), *ser.Points[0].Fill)
	assert.Equal(t, models.LiteralColor("ABCDEF"), *ser.Points[1].Fill)
	assert.Equal(t, models.AccentColor(0), *ser.Points[2].Fill)
	assert.Equal(t, models.AccentColor(0), *ser.Points[3].Fill)
	assert.Nil(t, ser.Points[0].Outline)

	tree := doc.PlotArea.Tree()
	assert.Empty(t, tree.Find("catAx"))
	assert.Empty(t, tree.Find("axId"))
}

func TestPieSliceColorsFollowSeriesAccent(t *testing.T) {
	block := newBlock(t, "Sheet1", quarterly)
	spec := models.ChartSpec{
		Variant: models.Variant{Family: models.FamilyPie},
		Series:  []models.SeriesStyle{{}, {FillColor: "112233"}},
	}

	group := mustCompile(t, spec, block).PlotArea.Groups[0]
	require.Len(t, group.Series, 3)
	for _, p := range group.Series[0].Points {
		assert.Equal(t, models.AccentColor(0), *p.Fill)
	}
	for _, p := range group.Series[1].Points {
		assert.Equal(t, models.LiteralColor("112233"), *p.Fill)
	}
	for _, p := range group.Series[2].Points {
		assert.Equal(t, models.AccentColor(2), *p.Fill)
	}
}

func TestDoughnutChart(t *testing.T) {
	block := newBlock(t, "Sheet1", columns(quarterly, 2))
	spec := models.ChartSpec{
		Variant: models.Variant{Family: models.FamilyPie, Pie: &models.PieSettings{Variant: models.PieDoughnut}},
		Series:  []models.SeriesStyle{{Points: []models.PointStyle{{BorderColor: "000000"}}}},
	}

	group := mustCompile(t, spec, block).PlotArea.Groups[0]
	assert.Equal(t, models.GroupDoughnut, group.Kind)
	require.NotNil(t, group.HoleSize)
	assert.Equal(t, 50, *group.HoleSize)

	points := group.Series[0].Points
	assert.Equal(t, models.LiteralColor("000000"), *points[0].Outline)
	assert.Equal(t, models.LiteralColor("FFFFFF"), *points[1].Outline)

	hole := 30
	spec.Variant.Pie.HoleSize = &hole
	group = mustCompile(t, spec, block).PlotArea.Groups[0]
	assert.Equal(t, 30, *group.HoleSize)
}

func TestPieErrors(t *testing.T) {
	block := newBlock(t, "Sheet1", columns(quarterly, 2))
	hole, bigHole := 40, 95

	tests := []struct {
		name     string
		settings models.PieSettings
		field    string
	}{
		{"unknown variant", models.PieSettings{Variant: "ring"}, "pie.variant"},
		{"angle", models.PieSettings{FirstSliceAngle: 400}, "pie.first_slice_angle"},
		{"explosion", models.PieSettings{Explosion: -1}, "pie.explosion"},
		{"hole on pie", models.PieSettings{HoleSize: &hole}, "pie.hole_size"},
		{"hole range", models.PieSettings{Variant: models.PieDoughnut, HoleSize: &bigHole}, "pie.hole_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings
			spec := models.ChartSpec{Variant: models.Variant{Family: models.FamilyPie, Pie: &settings}}
			_, err := compileSpec(t, spec, block)
			requireConfigError(t, err, tt.field)
		})
	}
}
