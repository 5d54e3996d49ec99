package compiler

import (
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Fixed axis ids. Spreadsheet applications only require ids to be unique
// within a chart, so the same values are used for every compile.
const (
	PrimaryCategoryAxisID   uint32 = 1362418656
	PrimaryValueAxisID      uint32 = 1358349936
	SecondaryCategoryAxisID uint32 = 1432012848
	SecondaryValueAxisID    uint32 = 1431999920
	// DepthAxisID is the unreferenced sentinel axis of 3-D bar and bubble charts.
	DepthAxisID uint32 = 0
)

// Orientation selects how a family positions its axis pair.
type Orientation int

const (
	// OrientationNone is for families without axes (pie, doughnut).
	OrientationNone Orientation = iota
	// OrientationBar draws categories on the left and values at the bottom.
	OrientationBar
	// OrientationCategory draws categories at the bottom and values on the left.
	OrientationCategory
	// OrientationScatter draws two value axes, X at the bottom and Y on the left.
	OrientationScatter
)

func (o Orientation) String() string {
	switch o {
	case OrientationBar:
		return "bar"
	case OrientationCategory:
		return "category"
	case OrientationScatter:
		return "scatter"
	}
	return "none"
}

// AxisPair is a mutually cross-referencing category/value axis pair.
type AxisPair struct {
	Category  uint32
	Value     uint32
	Secondary bool
}

// IDs returns the pair's ids in the order chart groups reference them.
func (p AxisPair) IDs() []uint32 {
	return []uint32{p.Category, p.Value}
}

type pairState struct {
	active      bool
	orientation Orientation
}

// AxisAllocator hands out axis ids and builds the axis nodes of the pairs in use.
// It belongs to a single compile.
type AxisAllocator struct {
	opts      models.AxesOptions
	grid      models.GridLineOptions
	defaults  Defaults
	logger    *slog.Logger
	primary   pairState
	secondary pairState
	depth     bool
}

// NewAxisAllocator returns an allocator with no active pairs.
func NewAxisAllocator(opts models.AxesOptions, grid models.GridLineOptions, d Defaults, logger *slog.Logger) *AxisAllocator {
	return &AxisAllocator{opts: opts, grid: grid, defaults: d, logger: logger}
}

// Request activates the primary or secondary pair for a family with the given
// orientation. Scatter families cannot share a pair with category families.
func (a *AxisAllocator) Request(secondary bool, o Orientation) (AxisPair, error) {
	state, pair, name := &a.primary, AxisPair{Category: PrimaryCategoryAxisID, Value: PrimaryValueAxisID}, "primary"
	if secondary {
		state, pair, name = &a.secondary, AxisPair{Category: SecondaryCategoryAxisID, Value: SecondaryValueAxisID, Secondary: true}, "secondary"
	}
	if o == OrientationNone {
		return AxisPair{}, NewConfigurationError("", "charts without axes cannot request an axis pair")
	}
	if state.active {
		if (state.orientation == OrientationScatter) != (o == OrientationScatter) {
			return AxisPair{}, NewConfigurationError("", "scatter charts cannot share the %s axis pair with category charts", name)
		}
		return pair, nil
	}
	state.active = true
	state.orientation = o
	a.logger.Debug("axis pair activated", "pair", name, "orientation", o.String(),
		"category_id", pair.Category, "value_id", pair.Value)
	return pair, nil
}

// Depth activates the sentinel depth axis and returns its id.
func (a *AxisAllocator) Depth() uint32 {
	a.depth = true
	return DepthAxisID
}

// Active reports how many pairs are in use.
func (a *AxisAllocator) Active() int {
	n := 0
	if a.primary.active {
		n++
	}
	if a.secondary.active {
		n++
	}
	return n
}

// Axes builds the axis nodes: primary pair, secondary pair, then the sentinel.
func (a *AxisAllocator) Axes() ([]models.Axis, error) {
	var axes []models.Axis
	if a.primary.active {
		pair, err := a.buildPair(a.primary.orientation, false)
		if err != nil {
			return nil, err
		}
		axes = append(axes, pair...)
	}
	if a.secondary.active {
		pair, err := a.buildPair(a.secondary.orientation, true)
		if err != nil {
			return nil, err
		}
		axes = append(axes, pair...)
	}
	if a.depth {
		axes = append(axes, models.Axis{
			ID:                DepthAxisID,
			Kind:              models.AxisDepth,
			Position:          models.AxisBottom,
			MajorTickMark:     models.TickNone,
			MinorTickMark:     models.TickNone,
			TickLabelPosition: models.TickLabelNone,
			Crosses:           models.CrossesAutoZero,
			Sentinel:          true,
		})
	}
	return axes, nil
}

func (a *AxisAllocator) buildPair(o Orientation, secondary bool) ([]models.Axis, error) {
	catOpts, valOpts := a.opts.Category, a.opts.Value
	catField, valField := "axes.category", "axes.value"
	catID, valID := PrimaryCategoryAxisID, PrimaryValueAxisID
	if secondary {
		catOpts, valOpts = a.opts.SecondaryCategory, a.opts.SecondaryValue
		catField, valField = "axes.secondary_category", "axes.secondary_value"
		catID, valID = SecondaryCategoryAxisID, SecondaryValueAxisID
	}

	catKind := models.AxisCategory
	if o == OrientationScatter {
		catKind = models.AxisValue
	}
	cat, err := a.axis(catField, catOpts, catID, valID, catKind)
	if err != nil {
		return nil, err
	}
	val, err := a.axis(valField, valOpts, valID, catID, models.AxisValue)
	if err != nil {
		return nil, err
	}

	// Reversing one axis moves its partner to the opposite side.
	switch o {
	case OrientationBar:
		cat.Position = flip(models.AxisLeft, models.AxisRight, val.Reversed)
		val.Position = flip(models.AxisBottom, models.AxisTop, cat.Reversed)
	default:
		cat.Position = flip(models.AxisBottom, models.AxisTop, val.Reversed)
		val.Position = flip(models.AxisLeft, models.AxisRight, cat.Reversed)
	}

	if secondary {
		cat.Secondary, val.Secondary = true, true
		cat.Visible = false
		cat.MajorGridlines, cat.MinorGridlines = false, false
		val.MajorGridlines, val.MinorGridlines = false, false
		val.Position = flip(models.AxisRight, models.AxisLeft, cat.Reversed)
		val.Crosses = models.CrossesMax
	} else {
		cat.MajorGridlines, cat.MinorGridlines = a.grid.MajorCategory, a.grid.MinorCategory
		val.MajorGridlines = a.grid.MajorValue == nil || *a.grid.MajorValue
		val.MinorGridlines = a.grid.MinorValue
	}
	return []models.Axis{cat, val}, nil
}

func flip(normal, flipped models.AxisPosition, cond bool) models.AxisPosition {
	if cond {
		return flipped
	}
	return normal
}

func (a *AxisAllocator) axis(field string, opts models.AxisOptions, id, cross uint32, kind models.AxisKind) (models.Axis, error) {
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return models.Axis{}, NewConfigurationError(field, "contradictory axis flags: min %g is greater than max %g", *opts.Min, *opts.Max)
	}
	if kind == models.AxisCategory && (opts.Min != nil || opts.Max != nil) {
		return models.Axis{}, NewConfigurationError(field, "category axes have no min or max")
	}
	if opts.LabelRotation < -90 || opts.LabelRotation > 90 {
		return models.Axis{}, NewConfigurationError(field+".label_rotation", "rotation %d out of range -90..90", opts.LabelRotation)
	}
	if opts.NumberFormat != "" {
		if err := ValidateNumberFormat(opts.NumberFormat); err != nil {
			return models.Axis{}, NewConfigurationError(field+".number_format", "%v", err)
		}
	}
	font, err := resolveText(field+".font", opts.Font, a.defaults)
	if err != nil {
		return models.Axis{}, err
	}

	ax := models.Axis{
		ID:                id,
		CrossAxisID:       cross,
		Kind:              kind,
		Visible:           !opts.Hidden,
		Reversed:          opts.Reversed,
		Title:             opts.Title,
		Font:              font,
		NumberFormat:      opts.NumberFormat,
		MajorTickMark:     opts.MajorTickMark,
		MinorTickMark:     opts.MinorTickMark,
		TickLabelPosition: opts.TickLabelPosition,
		LabelRotation:     opts.LabelRotation,
		Crosses:           models.CrossesAutoZero,
		Min:               copyFloat(opts.Min),
		Max:               copyFloat(opts.Max),
	}
	if ax.MajorTickMark == "" {
		ax.MajorTickMark = models.TickNone
	}
	if ax.MinorTickMark == "" {
		ax.MinorTickMark = models.TickNone
	}
	if ax.TickLabelPosition == "" {
		ax.TickLabelPosition = models.TickLabelNextTo
	}
	return ax, nil
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
