package compiler

import (
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var (
	barGroupings = []models.BarGrouping{
		models.BarClustered, models.BarStacked, models.BarPercentStacked,
		models.BarClustered3D, models.BarStacked3D, models.BarPercentStacked3D,
	}
	barShapes = []models.BarShape{
		models.ShapeBox, models.ShapeCylinder, models.ShapeCone,
		models.ShapeConeToMax, models.ShapePyramid, models.ShapePyramidToMax,
	}
)

// barBuilder builds bar (horizontal) and column (vertical) groups.
type barBuilder struct {
	family   models.ChartFamily
	settings models.BarSettings
}

func newBarBuilder(field string, v models.Variant) (*barBuilder, error) {
	b := &barBuilder{family: v.Family}
	if v.Bar != nil {
		b.settings = *v.Bar
	}
	field = join(field, "bar")
	if b.settings.Grouping == "" {
		b.settings.Grouping = models.BarClustered
	}
	if !slices.Contains(barGroupings, b.settings.Grouping) {
		return nil, NewConfigurationError(field+".grouping", "unknown bar grouping %q", b.settings.Grouping)
	}
	if b.settings.Shape != "" {
		if !b.settings.Grouping.Is3D() {
			return nil, NewConfigurationError(field+".shape", "shape %q requires a 3-D grouping", b.settings.Shape)
		}
		if !slices.Contains(barShapes, b.settings.Shape) {
			return nil, NewConfigurationError(field+".shape", "unknown bar shape %q", b.settings.Shape)
		}
	}
	if g := b.settings.CategoryGap; g != nil && (*g < 0 || *g > 500) {
		return nil, NewConfigurationError(field+".category_gap", "gap %d out of range 0..500", *g)
	}
	if o := b.settings.SeriesOverlap; o != nil && (*o < -100 || *o > 100) {
		return nil, NewConfigurationError(field+".series_overlap", "overlap %d out of range -100..100", *o)
	}
	return b, nil
}

func (b *barBuilder) Family() models.ChartFamily { return b.family }

func (b *barBuilder) Orientation() Orientation { return OrientationBar }

func (b *barBuilder) Shape(labels bool) SliceShape { return SliceShape{Labels: labels} }

// spacing returns gap width and overlap. Clustered groupings take the configured
// values; every other grouping uses fixed values. 3-D groupings have no overlap.
func (b *barBuilder) spacing(s *session) (gap, overlap *int) {
	g := b.settings.Grouping
	clustered := g.Base() == models.BarClustered
	if !clustered && (b.settings.CategoryGap != nil || b.settings.SeriesOverlap != nil) {
		s.logger.Debug("gap and overlap ignored for non-clustered grouping", "grouping", g)
	}

	gapWidth, ov := s.defaults.FixedGap, s.defaults.FixedOverlap
	if clustered {
		gapWidth, ov = s.defaults.ClusteredGap, s.defaults.ClusteredOverlap
		if b.settings.CategoryGap != nil {
			gapWidth = *b.settings.CategoryGap
		}
		if b.settings.SeriesOverlap != nil {
			ov = *b.settings.SeriesOverlap
		}
	}
	if g.Is3D() {
		return intPtr(gapWidth), nil
	}
	return intPtr(gapWidth), intPtr(ov)
}

func (b *barBuilder) BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	g := b.settings.Grouping
	group := models.ChartGroup{
		Family:       b.family,
		Kind:         models.GroupBar,
		BarDirection: "col",
		Grouping:     string(g.Base()),
		Secondary:    f.secondary,
	}
	if b.family == models.FamilyBar {
		group.BarDirection = "bar"
	}
	if g.Is3D() {
		group.Kind = models.GroupBar3D
		group.Shape = b.settings.Shape
		if group.Shape == "" {
			group.Shape = models.ShapeBox
		}
		s.view3D = &models.View3D{RotX: s.defaults.RotX, RotY: s.defaults.RotY, RightAngleAx: true}
	}

	for _, binding := range bindings {
		ser, _, _, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		ser.Fill = colorPtr(f.colors.ResolveFill(binding.ID, NoPoint))
		ser.Outline = f.colors.ExplicitBorder(binding.ID, NoPoint)
		ser.InvertIfNegative = boolPtr(false)
		ser.Points = f.points(s, binding, true, true)
		group.Series = append(group.Series, ser)
	}

	labels, err := f.labels.GroupLabels()
	if err != nil {
		return group, err
	}
	group.DataLabels = labels
	group.GapWidth, group.Overlap = b.spacing(s)

	pair, err := s.requestAxes(f, b.Orientation())
	if err != nil {
		return group, err
	}
	group.AxisIDs = pair.IDs()
	if g.Is3D() {
		group.AxisIDs = append(group.AxisIDs, s.axes.Depth())
	}
	return group, nil
}
