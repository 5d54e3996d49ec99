package compiler

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

type comboEntry struct {
	field    string
	fragment models.ComboFragment
	builder  FamilyBuilder
}

// ComboComposer merges several family groups into one plot area. Each added
// fragment has its family fixed at Add time; Compose feeds fragment i the i-th
// contiguous column slice of the data block.
type ComboComposer struct {
	s       *session
	entries []comboEntry
}

// NewComboComposer returns a composer using the shared options of spec: axes,
// grid lines, title, legend, data bounds and placement. The chart spec's own combo
// list is ignored; fragments are added with Add.
func (c *Compiler) NewComboComposer(spec *models.ChartSpec) *ComboComposer {
	return newComboComposer(newSession(spec, c.defaults, c.logger))
}

func newComboComposer(s *session) *ComboComposer {
	s.combo = true
	return &ComboComposer{s: s}
}

// Add validates a fragment and appends it.
func (cc *ComboComposer) Add(fr models.ComboFragment) error {
	field := fmt.Sprintf("combo[%d]", len(cc.entries))
	builder, err := builderFor(field, fr.Variant)
	if err != nil {
		return err
	}
	switch {
	case fr.Bar != nil && fr.Bar.Grouping.Is3D():
		return NewConfigurationError(field+".bar.grouping", "3-D groupings cannot be combined")
	case fr.IsBubble():
		return NewConfigurationError(field+".scatter.style", "bubble charts cannot be combined")
	case fr.Family == models.FamilyPie && fr.SecondaryAxis:
		return NewConfigurationError(field+".secondary_axis", "pie charts have no axes")
	}
	cc.entries = append(cc.entries, comboEntry{field: field, fragment: fr, builder: builder})
	return nil
}

// Len returns the number of fragments added.
func (cc *ComboComposer) Len() int {
	return len(cc.entries)
}

// Compose builds the combo document from block.
func (cc *ComboComposer) Compose(block models.DataBlock) (*models.ChartDocument, error) {
	if len(cc.entries) == 0 {
		return nil, NewConfigurationError("combo", "empty series settings")
	}
	s := cc.s

	shapes := make([]SliceShape, len(cc.entries))
	for i, e := range cc.entries {
		shapes[i] = e.builder.Shape(s.spec.Data.LabelsFromColumn)
	}
	bindings, leftover, err := Partition(block, s.spec.Data, shapes)
	if err != nil {
		return nil, err
	}
	if leftover > 0 {
		s.logger.Debug("columns past the last combo fragment ignored", "columns", leftover)
	}

	groups := make([]models.ChartGroup, 0, len(cc.entries))
	for i, e := range cc.entries {
		labels := e.fragment.DataLabel
		if labels == nil {
			labels = s.spec.DataLabel
		}
		f, err := newFragment(s, e.field, e.fragment.Variant, e.fragment.Series, labels, e.fragment.SecondaryAxis, i)
		if err != nil {
			return nil, err
		}
		fb := bindings[i : i+1]
		if err := f.bindLabelRanges(fb); err != nil {
			return nil, err
		}
		group, err := e.builder.BuildGroup(s, f, fb)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if s.axes.Active() == 0 {
		return nil, NewConfigurationError("combo", "at least one fragment must use an axis pair")
	}
	s.logger.Debug("combo composed", "fragments", len(groups), "axis_pairs", s.axes.Active())
	return s.document(groups)
}
