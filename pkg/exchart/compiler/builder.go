package compiler

import (
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// FamilyBuilder assembles the plot-area group of one chart family.
type FamilyBuilder interface {
	// Family returns the family tag the builder was chosen for.
	Family() models.ChartFamily
	// Orientation returns the axis orientation rule of the family.
	Orientation() Orientation
	// Shape returns the column footprint of one series.
	Shape(labels bool) SliceShape
	// BuildGroup builds the chart group for the given bindings, requesting axes
	// from the session's allocator.
	BuildGroup(s *session, f *fragment, bindings []models.SeriesBinding) (models.ChartGroup, error)
}

// builderFor validates the variant and returns its family builder.
func builderFor(field string, v models.Variant) (FamilyBuilder, error) {
	if err := checkPayload(field, v); err != nil {
		return nil, err
	}
	switch v.Family {
	case models.FamilyBar, models.FamilyColumn:
		return newBarBuilder(field, v)
	case models.FamilyLine:
		return newLineBuilder(field, v)
	case models.FamilyArea:
		return newAreaBuilder(field, v)
	case models.FamilyScatter:
		return newScatterBuilder(field, v)
	case models.FamilyPie:
		return newPieBuilder(field, v)
	case models.FamilyCombo:
		return nil, NewConfigurationError(join(field, "family"), "combo charts cannot be nested")
	case "":
		return nil, NewConfigurationError(join(field, "family"), "family is required")
	default:
		return nil, NewConfigurationError(join(field, "family"), "unknown chart family %q", v.Family)
	}
}

// checkPayload rejects settings payloads that belong to another family.
func checkPayload(field string, v models.Variant) error {
	payloads := []struct {
		name     string
		set      bool
		families []models.ChartFamily
	}{
		{"bar", v.Bar != nil, []models.ChartFamily{models.FamilyBar, models.FamilyColumn}},
		{"line", v.Line != nil, []models.ChartFamily{models.FamilyLine}},
		{"area", v.Area != nil, []models.ChartFamily{models.FamilyArea}},
		{"scatter", v.Scatter != nil, []models.ChartFamily{models.FamilyScatter}},
		{"pie", v.Pie != nil, []models.ChartFamily{models.FamilyPie}},
	}
	for _, p := range payloads {
		if p.set && !slices.Contains(p.families, v.Family) {
			return NewConfigurationError(join(field, p.name), "%s settings do not apply to %s charts", p.name, v.Family)
		}
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func colorPtr(c models.ColorSpec) *models.ColorSpec {
	return &c
}
