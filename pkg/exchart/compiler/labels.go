package compiler

import (
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// LabelState is the resolved visibility of a data label spec.
type LabelState int

const (
	// LabelHidden means no show flag is set and no label range is bound.
	LabelHidden LabelState = iota
	// LabelVisible means at least one label part is shown.
	LabelVisible
)

func (s LabelState) String() string {
	if s == LabelVisible {
		return "visible"
	}
	return "hidden"
}

// PositionRule is the set of label positions a chart family accepts.
type PositionRule struct {
	// Name identifies the family in error messages.
	Name string
	// Legal lists the accepted positions. Empty means the family only shows labels.
	Legal []models.LabelPosition
	// Default is used when a spec sets no position.
	Default models.LabelPosition
	// BubbleSize allows the bubble size part.
	BubbleSize bool
	// Percent allows the percentage part.
	Percent bool
}

var (
	linePositions = []models.LabelPosition{
		models.LabelCenter, models.LabelLeft, models.LabelRight, models.LabelAbove, models.LabelBelow,
	}
	piePositions = []models.LabelPosition{
		models.LabelCenter, models.LabelInsideEnd, models.LabelBestFit,
	}
)

// PositionRuleFor returns the label position rule of a family variant.
// Outside end is only legal for clustered bar groupings, 2-D or 3-D.
func PositionRuleFor(v models.Variant) PositionRule {
	switch v.Family {
	case models.FamilyBar, models.FamilyColumn:
		grouping := models.BarClustered
		if v.Bar != nil && v.Bar.Grouping != "" {
			grouping = v.Bar.Grouping
		}
		legal := []models.LabelPosition{models.LabelCenter, models.LabelInsideEnd, models.LabelInsideBase}
		if grouping.Base() == models.BarClustered {
			legal = append(legal, models.LabelOutsideEnd)
		}
		return PositionRule{Name: string(grouping) + " " + string(v.Family), Legal: legal, Default: models.LabelCenter}
	case models.FamilyLine:
		return PositionRule{Name: "line", Legal: linePositions, Default: models.LabelRight}
	case models.FamilyScatter:
		if v.IsBubble() {
			return PositionRule{Name: "bubble", Legal: linePositions, Default: models.LabelRight, BubbleSize: true}
		}
		return PositionRule{Name: "scatter", Legal: linePositions, Default: models.LabelRight}
	case models.FamilyPie:
		if v.Pie != nil && v.Pie.Variant == models.PieDoughnut {
			return PositionRule{Name: "doughnut", Percent: true}
		}
		return PositionRule{Name: "pie", Legal: piePositions, Default: models.LabelBestFit, Percent: true}
	case models.FamilyArea:
		return PositionRule{Name: "area"}
	}
	return PositionRule{Name: string(v.Family)}
}

// position validates p against the rule and applies the default.
func (r PositionRule) position(field string, p models.LabelPosition) (models.LabelPosition, error) {
	if len(r.Legal) == 0 {
		if p != "" && p != models.LabelShow {
			return "", NewConfigurationError(field, "%s charts do not place data labels, got position %q", r.Name, p)
		}
		return "", nil
	}
	if p == "" {
		return r.Default, nil
	}
	if !slices.Contains(r.Legal, p) {
		return "", NewConfigurationError(field, "position %q is not allowed for %s charts", p, r.Name)
	}
	return p, nil
}

// State returns the visibility of a spec, with labelRange set when label text
// comes from cells.
func State(spec *models.DataLabelSpec, labelRange *models.Ref) LabelState {
	if labelRange != nil {
		return LabelVisible
	}
	if spec == nil {
		return LabelHidden
	}
	if spec.ShowValue || spec.ShowCategoryName || spec.ShowSeriesName || spec.ShowLegendKey || spec.ShowBubbleSize || spec.ShowPercent {
		return LabelVisible
	}
	return LabelHidden
}

// LabelPolicy resolves the data labels of one chart group. A series spec
// replaces the group default as a whole; fields are never merged.
type LabelPolicy struct {
	rule     PositionRule
	field    string
	group    *models.DataLabelSpec
	defaults Defaults
}

// NewLabelPolicy validates the group default spec and returns a policy.
func NewLabelPolicy(rule PositionRule, field string, group *models.DataLabelSpec, d Defaults) (*LabelPolicy, error) {
	p := &LabelPolicy{rule: rule, field: field, group: group, defaults: d}
	if group != nil {
		if _, err := p.resolve(field, group, nil); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Rule returns the position rule the policy checks against.
func (p *LabelPolicy) Rule() PositionRule {
	return p.rule
}

// GroupLabels returns the group-level label node, nil when the default is hidden.
func (p *LabelPolicy) GroupLabels() (*models.DataLabels, error) {
	if State(p.group, nil) == LabelHidden {
		return nil, nil
	}
	return p.resolve(p.field, p.group, nil)
}

// SeriesLabels returns the label node of one series. A series without its own
// spec or label range inherits the group node and gets nil. A hidden series
// spec under a visible group default yields a deleted node.
func (p *LabelPolicy) SeriesLabels(field string, spec *models.DataLabelSpec, labelRange *models.Ref) (*models.DataLabels, error) {
	if spec == nil && labelRange == nil {
		return nil, nil
	}
	effective := spec
	if effective == nil {
		effective = p.group
		field = p.field
	}
	if State(effective, labelRange) == LabelHidden {
		if State(p.group, nil) == LabelVisible {
			return &models.DataLabels{Deleted: true}, nil
		}
		// Validate even when nothing is shown.
		if _, err := p.resolve(field, effective, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return p.resolve(field, effective, labelRange)
}

func (p *LabelPolicy) resolve(field string, spec *models.DataLabelSpec, labelRange *models.Ref) (*models.DataLabels, error) {
	if spec == nil {
		spec = &models.DataLabelSpec{}
	}
	pos, err := p.rule.position(field+".position", spec.Position)
	if err != nil {
		return nil, err
	}
	if spec.ShowBubbleSize && !p.rule.BubbleSize {
		return nil, NewConfigurationError(field+".show_bubble_size", "bubble size labels need a bubble chart, got %s", p.rule.Name)
	}
	if spec.ShowPercent && !p.rule.Percent {
		return nil, NewConfigurationError(field+".show_percent", "percentage labels need a pie or doughnut chart, got %s", p.rule.Name)
	}
	text, err := resolveText(field+".text", spec.Text, p.defaults)
	if err != nil {
		return nil, err
	}

	d := &models.DataLabels{
		Position:         pos,
		Text:             text,
		ShowLegendKey:    spec.ShowLegendKey,
		ShowValue:        spec.ShowValue,
		ShowCategoryName: spec.ShowCategoryName,
		ShowSeriesName:   spec.ShowSeriesName,
		ShowPercent:      spec.ShowPercent,
		ShowBubbleSize:   spec.ShowBubbleSize,
		Range:            labelRange,
	}

	// Label text from cells counts as one more part.
	parts := 0
	for _, shown := range []bool{
		spec.ShowValue, spec.ShowCategoryName, spec.ShowSeriesName, spec.ShowLegendKey, spec.ShowBubbleSize, spec.ShowPercent,
		labelRange != nil,
	} {
		if shown {
			parts++
		}
	}
	if parts >= 2 {
		d.Separator = spec.Separator
		if d.Separator == "" {
			d.Separator = p.defaults.Separator
		}
	}
	return d, nil
}
