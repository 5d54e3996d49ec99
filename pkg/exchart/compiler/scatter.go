package compiler

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// scatterStyles maps each scatter style to its group style value, whether the
// series line is drawn, the default marker symbol and whether the line is smoothed.
var scatterStyles = map[models.ScatterStyle]struct {
	style  string
	line   bool
	marker models.MarkerSymbol
	smooth bool
}{
	models.ScatterMarkers:        {"lineMarker", false, models.MarkerAuto, false},
	models.ScatterStraight:       {"line", true, models.MarkerNone, false},
	models.ScatterStraightMarker: {"lineMarker", true, models.MarkerCircle, false},
	models.ScatterSmooth:         {"smooth", true, models.MarkerNone, true},
	models.ScatterSmoothMarker:   {"smoothMarker", true, models.MarkerCircle, true},
}

// scatterBuilder builds scatter (XY) groups and, for the bubble style, bubble groups.
type scatterBuilder struct {
	settings models.ScatterSettings
}

func newScatterBuilder(field string, v models.Variant) (*scatterBuilder, error) {
	b := &scatterBuilder{}
	if v.Scatter != nil {
		b.settings = *v.Scatter
	}
	if b.settings.Style == "" {
		b.settings.Style = models.ScatterMarkers
	}
	if _, ok := scatterStyles[b.settings.Style]; !ok && !b.bubble() {
		return nil, NewConfigurationError(join(field, "scatter.style"), "unknown scatter style %q", b.settings.Style)
	}
	return b, nil
}

func (b *scatterBuilder) bubble() bool {
	return b.settings.Style == models.ScatterBubble
}

func (b *scatterBuilder) Family() models.ChartFamily { return models.FamilyScatter }

func (b *scatterBuilder) Orientation() Orientation { return OrientationScatter }

func (b *scatterBuilder) Shape(labels bool) SliceShape {
	return SliceShape{Bubble: b.bubble(), Labels: labels}
}

func (b *scatterBuilder) BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	if b.bubble() {
		return b.buildBubble(s, f, bindings)
	}

	style := scatterStyles[b.settings.Style]
	group := models.ChartGroup{
		Family:       models.FamilyScatter,
		Kind:         models.GroupScatter,
		ScatterStyle: style.style,
		Secondary:    f.secondary,
	}
	for _, binding := range bindings {
		ser, st, field, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		stroke := f.colors.ResolveBorder(binding.ID, NoPoint)
		if style.line {
			ser.Outline = colorPtr(stroke)
		} else {
			ser.NoOutline = true
		}
		ser.Marker, err = marker(field, st.Marker, style.marker, f.colors.ResolveFill(binding.ID, NoPoint), stroke, s.defaults)
		if err != nil {
			return group, err
		}
		ser.Points = f.points(s, binding, true, true)
		ser.Smooth = boolPtr(style.smooth)
		group.Series = append(group.Series, ser)
	}

	if err := b.finish(s, f, &group); err != nil {
		return group, err
	}
	return group, nil
}

// buildBubble builds a bubble group: series have no outline, points carry
// their own outlines.
func (b *scatterBuilder) buildBubble(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	group := models.ChartGroup{
		Family:              models.FamilyScatter,
		Kind:                models.GroupBubble,
		BubbleScale:         intPtr(s.defaults.BubbleScale),
		ShowNegativeBubbles: boolPtr(true),
		Secondary:           f.secondary,
	}
	for _, binding := range bindings {
		ser, _, _, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		ser.Fill = colorPtr(f.colors.ResolveFill(binding.ID, NoPoint))
		ser.NoOutline = true
		ser.InvertIfNegative = boolPtr(false)
		ser.Bubble3D = boolPtr(false)
		ser.Points = f.points(s, binding, true, true)
		group.Series = append(group.Series, ser)
	}

	if err := b.finish(s, f, &group); err != nil {
		return group, err
	}
	group.AxisIDs = append(group.AxisIDs, s.axes.Depth())
	return group, nil
}

func (b *scatterBuilder) finish(s *session, f *fragment, group *models.ChartGroup) error {
	labels, err := f.labels.GroupLabels()
	if err != nil {
		return err
	}
	group.DataLabels = labels

	pair, err := s.requestAxes(f, b.Orientation())
	if err != nil {
		return err
	}
	group.AxisIDs = pair.IDs()
	return nil
}
