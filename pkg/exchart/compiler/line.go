package compiler

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// lineGroupings maps each line grouping to its grouping value and marker flag.
var lineGroupings = map[models.LineGrouping]struct {
	grouping string
	markers  bool
}{
	models.LineStandard:             {"standard", false},
	models.LineStacked:              {"stacked", false},
	models.LinePercentStacked:       {"percentStacked", false},
	models.LineStandardMarker:       {"standard", true},
	models.LineStackedMarker:        {"stacked", true},
	models.LinePercentStackedMarker: {"percentStacked", true},
}

type lineBuilder struct {
	settings models.LineSettings
}

func newLineBuilder(field string, v models.Variant) (*lineBuilder, error) {
	b := &lineBuilder{}
	if v.Line != nil {
		b.settings = *v.Line
	}
	if b.settings.Grouping == "" {
		b.settings.Grouping = models.LineStandard
	}
	if _, ok := lineGroupings[b.settings.Grouping]; !ok {
		return nil, NewConfigurationError(join(field, "line.grouping"), "unknown line grouping %q", b.settings.Grouping)
	}
	return b, nil
}

func (b *lineBuilder) Family() models.ChartFamily { return models.FamilyLine }

func (b *lineBuilder) Orientation() Orientation { return OrientationCategory }

func (b *lineBuilder) Shape(labels bool) SliceShape { return SliceShape{Labels: labels} }

func (b *lineBuilder) BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	variant := lineGroupings[b.settings.Grouping]
	group := models.ChartGroup{
		Family:     models.FamilyLine,
		Kind:       models.GroupLine,
		Grouping:   variant.grouping,
		ShowMarker: boolPtr(true),
		Secondary:  f.secondary,
	}

	def := models.MarkerNone
	if variant.markers {
		def = models.MarkerCircle
	}
	for _, binding := range bindings {
		ser, st, field, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		stroke := f.colors.ResolveBorder(binding.ID, NoPoint)
		ser.Outline = colorPtr(stroke)
		ser.Marker, err = marker(field, st.Marker, def, f.colors.ResolveFill(binding.ID, NoPoint), stroke, s.defaults)
		if err != nil {
			return group, err
		}
		ser.Points = f.points(s, binding, true, true)
		ser.Smooth = boolPtr(b.settings.Smooth)
		group.Series = append(group.Series, ser)
	}

	labels, err := f.labels.GroupLabels()
	if err != nil {
		return group, err
	}
	group.DataLabels = labels

	pair, err := s.requestAxes(f, b.Orientation())
	if err != nil {
		return group, err
	}
	group.AxisIDs = pair.IDs()
	return group, nil
}
