// Package compiler turns chart specs and data blocks into chart document models.
package compiler

import (
	"log/slog"
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var legendPositions = []models.LegendPosition{
	models.LegendBottom, models.LegendTop, models.LegendLeft, models.LegendRight, models.LegendTopRight,
}

// Compiler compiles chart specs. It holds no per-compile state and is safe for
// concurrent use.
type Compiler struct {
	defaults Defaults
	logger   *slog.Logger
}

// New returns a compiler. A nil logger discards log output.
func New(d Defaults, logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Compiler{defaults: d, logger: logger}
}

// Compile builds the chart document for spec over block. The chart spec is read, never
// modified. Errors are *ConfigurationError or *DataShapeError; no partial
// document is returned.
func (c *Compiler) Compile(spec *models.ChartSpec, block models.DataBlock) (*models.ChartDocument, error) {
	s := newSession(spec, c.defaults, c.logger)

	if spec.Family == models.FamilyCombo {
		cc := newComboComposer(s)
		if len(spec.Combo) == 0 {
			return cc.Compose(block)
		}
		if err := checkPayload("", spec.Variant); err != nil {
			return nil, err
		}
		for _, fr := range spec.Combo {
			if err := cc.Add(fr); err != nil {
				return nil, err
			}
		}
		return cc.Compose(block)
	}

	if len(spec.Combo) > 0 {
		return nil, NewConfigurationError("combo", "combo fragments require the combo family, got %q", spec.Family)
	}
	builder, err := builderFor("", spec.Variant)
	if err != nil {
		return nil, err
	}
	f, err := newFragment(s, "", spec.Variant, spec.Series, spec.DataLabel, false, 0)
	if err != nil {
		return nil, err
	}

	bindings, err := GroupSeries(block, spec.Data, builder.Shape(spec.Data.LabelsFromColumn))
	if err != nil {
		return nil, err
	}
	if len(spec.Series) > len(bindings) {
		s.logger.Debug("series overrides without a series ignored", "overrides", len(spec.Series), "series", len(bindings))
	}
	if err := f.bindLabelRanges(bindings); err != nil {
		return nil, err
	}
	s.logger.Debug("series grouped", "family", spec.Family, "series", len(bindings))

	group, err := builder.BuildGroup(s, f, bindings)
	if err != nil {
		return nil, err
	}
	return s.document([]models.ChartGroup{group})
}

// document assembles the chart document around the built groups.
func (s *session) document(groups []models.ChartGroup) (*models.ChartDocument, error) {
	axes, err := s.axes.Axes()
	if err != nil {
		return nil, err
	}
	doc := &models.ChartDocument{
		Family:          s.spec.Family,
		View3D:          s.view3D,
		PlotArea:        models.PlotArea{Groups: groups, Axes: axes},
		PlotVisibleOnly: true,
		DisplayBlanksAs: "gap",
	}

	if l := s.spec.PlotArea.ManualLayout; l != nil {
		if err := checkLayout("plot_area.manual_layout", *l); err != nil {
			return nil, err
		}
		layout := *l
		doc.PlotArea.Layout = &layout
	}

	if t := s.spec.Title; t != nil && t.Text != "" {
		d := s.defaults
		d.FontSize = d.TitleFontSize
		font, err := resolveText("title.font", t.Font, d)
		if err != nil {
			return nil, err
		}
		doc.Title = &models.Title{Text: t.Text, Font: font}
	}
	doc.AutoTitleDeleted = doc.Title == nil

	if doc.Legend, err = s.legend(); err != nil {
		return nil, err
	}
	if doc.Placement, err = placement(s.spec.Placement); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *session) legend() (*models.Legend, error) {
	opts := s.spec.Legend
	if opts.Hidden {
		return nil, nil
	}
	pos := opts.Position
	if pos == "" {
		pos = models.LegendBottom
	}
	if !slices.Contains(legendPositions, pos) {
		return nil, NewConfigurationError("legend.position", "unknown legend position %q", pos)
	}
	font, err := resolveText("legend.font", opts.Font, s.defaults)
	if err != nil {
		return nil, err
	}
	legend := &models.Legend{Position: pos, Overlay: opts.Overlay, Font: font}
	if l := opts.ManualLayout; l != nil {
		if err := checkLayout("legend.manual_layout", *l); err != nil {
			return nil, err
		}
		layout := *l
		legend.Layout = &layout
	}
	return legend, nil
}

func checkLayout(field string, l models.Layout) error {
	for _, v := range []float64{l.X, l.Y, l.Width, l.Height} {
		if v < 0 || v > 1 {
			return NewConfigurationError(field, "layout fractions must be within 0..1")
		}
	}
	if l.X+l.Width > 1 || l.Y+l.Height > 1 {
		return NewConfigurationError(field, "layout extends past the chart area")
	}
	return nil
}

func placement(p *models.Placement) (models.Placement, error) {
	if p == nil {
		return models.DefaultPlacement(), nil
	}
	out := *p
	if out.Width <= 0 || out.Height <= 0 {
		return out, NewConfigurationError("placement", "width and height must be positive, got %dx%d", out.Width, out.Height)
	}
	if (out.From == nil) != (out.To == nil) {
		return out, NewConfigurationError("placement", "cell anchors need both from and to")
	}
	if out.From != nil {
		from, to := *out.From, *out.To
		if to.Column < from.Column || to.Row < from.Row {
			return out, NewConfigurationError("placement.to", "anchor ends before it starts")
		}
		out.From, out.To = &from, &to
	}
	return out, nil
}
