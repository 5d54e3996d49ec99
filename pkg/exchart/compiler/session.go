package compiler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// session holds the state of one compile. Nothing in it outlives the call.
type session struct {
	spec     *models.ChartSpec
	defaults Defaults
	logger   *slog.Logger
	axes     *AxisAllocator
	combo    bool
	view3D   *models.View3D
}

func newSession(spec *models.ChartSpec, d Defaults, logger *slog.Logger) *session {
	return &session{
		spec:     spec,
		defaults: d,
		logger:   logger,
		axes:     NewAxisAllocator(spec.Axes, spec.GridLines, d, logger),
		combo:    spec.Family == models.FamilyCombo,
	}
}

// requestAxes activates the axis pair of a fragment. Inside a combo every
// category family shares the category orientation.
func (s *session) requestAxes(f *fragment, o Orientation) (AxisPair, error) {
	if s.combo && o != OrientationScatter {
		o = OrientationCategory
	}
	pair, err := s.axes.Request(f.secondary, o)
	if err != nil {
		var ce *ConfigurationError
		if errors.As(err, &ce) && ce.Field == "" {
			ce.Field = f.field
		}
		return AxisPair{}, err
	}
	return pair, nil
}

// fragment is one family's share of a compile: the whole chart, or one combo entry.
type fragment struct {
	field     string
	variant   models.Variant
	styles    []models.SeriesStyle
	colors    *ColorResolver
	labels    *LabelPolicy
	secondary bool
	// first is the id of the first series the styles apply to.
	first int
}

func newFragment(s *session, field string, v models.Variant, styles []models.SeriesStyle,
	group *models.DataLabelSpec, secondary bool, first int) (*fragment, error) {
	colors, err := NewColorResolver(join(field, "series"), styles, first)
	if err != nil {
		return nil, err
	}
	labels, err := NewLabelPolicy(PositionRuleFor(v), join(field, "data_label"), group, s.defaults)
	if err != nil {
		return nil, err
	}
	return &fragment{
		field:     field,
		variant:   v,
		styles:    styles,
		colors:    colors,
		labels:    labels,
		secondary: secondary,
		first:     first,
	}, nil
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

// style returns the override record of a series, zero when none was given.
func (f *fragment) style(seriesID int) (models.SeriesStyle, string) {
	i := seriesID - f.first
	field := join(f.field, fmt.Sprintf("series[%d]", i))
	if i < 0 || i >= len(f.styles) {
		return models.SeriesStyle{}, field
	}
	return f.styles[i], field
}

// bindLabelRanges replaces label column references with explicit label ranges.
func (f *fragment) bindLabelRanges(bindings []models.SeriesBinding) error {
	for i := range bindings {
		st, field := f.style(bindings[i].ID)
		if st.LabelRange == "" {
			continue
		}
		formula, err := ValidateRangeFormula(st.LabelRange)
		if err != nil {
			return NewConfigurationError(field+".label_range", "%v", err)
		}
		bindings[i].Labels = &models.Ref{Formula: formula}
	}
	return nil
}
