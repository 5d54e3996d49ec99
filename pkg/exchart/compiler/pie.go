package compiler

import (
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// sliceBorder is the outline drawn between doughnut slices when none is set.
var sliceBorder = models.LiteralColor("FFFFFF")

// pieBuilder builds pie and doughnut groups. They have no axes.
type pieBuilder struct {
	settings models.PieSettings
	holeSize int
}

func newPieBuilder(field string, v models.Variant) (*pieBuilder, error) {
	b := &pieBuilder{}
	if v.Pie != nil {
		b.settings = *v.Pie
	}
	field = join(field, "pie")
	switch b.settings.Variant {
	case "":
		b.settings.Variant = models.PieStandard
	case models.PieStandard, models.PieDoughnut:
	default:
		return nil, NewConfigurationError(field+".variant", "unknown pie variant %q", b.settings.Variant)
	}
	if a := b.settings.FirstSliceAngle; a < 0 || a > 360 {
		return nil, NewConfigurationError(field+".first_slice_angle", "angle %d out of range 0..360", a)
	}
	if e := b.settings.Explosion; e < 0 || e > 400 {
		return nil, NewConfigurationError(field+".explosion", "explosion %d out of range 0..400", e)
	}
	if h := b.settings.HoleSize; h != nil {
		if b.settings.Variant != models.PieDoughnut {
			return nil, NewConfigurationError(field+".hole_size", "hole size requires the doughnut variant")
		}
		if *h < 1 || *h > 90 {
			return nil, NewConfigurationError(field+".hole_size", "hole size %d out of range 1..90", *h)
		}
		b.holeSize = *h
	}
	return b, nil
}

func (b *pieBuilder) doughnut() bool {
	return b.settings.Variant == models.PieDoughnut
}

func (b *pieBuilder) Family() models.ChartFamily { return models.FamilyPie }

func (b *pieBuilder) Orientation() Orientation { return OrientationNone }

func (b *pieBuilder) Shape(labels bool) SliceShape { return SliceShape{Labels: labels} }

func (b *pieBuilder) BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error) {
	group := models.ChartGroup{
		Family:          models.FamilyPie,
		Kind:            models.GroupPie,
		VaryColors:      true,
		FirstSliceAngle: intPtr(b.settings.FirstSliceAngle),
	}
	if b.doughnut() {
		group.Kind = models.GroupDoughnut
		hole := b.holeSize
		if hole == 0 {
			hole = s.defaults.HoleSize
		}
		group.HoleSize = intPtr(hole)
	}

	for _, binding := range bindings {
		ser, _, _, err := f.seriesBase(binding)
		if err != nil {
			return group, err
		}
		if b.settings.Explosion > 0 {
			ser.Explosion = intPtr(b.settings.Explosion)
		}
		for i := range binding.Values.Cache {
			p := models.DataPoint{Index: i, Fill: colorPtr(f.colors.ResolveFill(binding.ID, i))}
			if b.doughnut() {
				p.Outline = f.colors.ExplicitBorder(binding.ID, i)
				if p.Outline == nil {
					p.Outline = colorPtr(sliceBorder)
				}
			}
			ser.Points = append(ser.Points, p)
		}
		group.Series = append(group.Series, ser)
	}

	labels, err := f.labels.GroupLabels()
	if err != nil {
		return group, err
	}
	group.DataLabels = labels
	return group, nil
}
