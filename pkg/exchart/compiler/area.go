package compiler

import (
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var areaGroupings = []models.AreaGrouping{models.AreaStandard, models.AreaStacked, models.AreaPercentStacked}

type areaBuilder struct {
	settings models.AreaSettings
}

func newAreaBuilder(field string, v models.Variant) (*areaBuilder, error) {
	b := &areaBuilder{}
	if v.Area != nil {
		b.settings = *v.Area
	}
	if b.settings.Grouping == "" {
		b.settings.Grouping = models.AreaStandard
	}
	if !slices.Contains(areaGroupings, b.settings.Grouping) {
		return nil, NewConfigurationError(join(field, "area.grouping"), "unknown area grouping %q", b.settings.Grouping)
	}
	return b, nil
}

func (b *areaBuilder) Family() models.ChartFamily { return models.FamilyArea }

func (b *areaBuilder) Orientation() Orientation { return OrientationCategory }

func (b *areaBuilder) Shape(labels bool) SliceShape { return SliceShape{Labels: labels} }

func (b *areaBuilder) BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	group := models.ChartGroup{
		Family:    models.FamilyArea,
		Kind:      models.GroupArea,
		Grouping:  string(b.settings.Grouping),
		Secondary: f.secondary,
	}
	for _, binding := range bindings {
		ser, _, _, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		ser.Fill = colorPtr(f.colors.ResolveFill(binding.ID, NoPoint))
		ser.Outline = f.colors.ExplicitBorder(binding.ID, NoPoint)
		ser.Points = f.points(s, binding, true, true)
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
