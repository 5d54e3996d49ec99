package compiler

import (
	"slices"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var markerSymbols = []models.MarkerSymbol{
	models.MarkerNone, models.MarkerAuto, models.MarkerCircle, models.MarkerDash, models.MarkerDiamond,
	models.MarkerDot, models.MarkerPlus, models.MarkerSquare, models.MarkerStar, models.MarkerTriangle,
	models.MarkerX,
}

// seriesBase starts a series node with the parts every family shares: binding,
// number format and data labels.
func (f *fragment) seriesBase(b models.SeriesBinding) (models.Series, models.SeriesStyle, string, error) {
	st, field := f.style(b.ID)
	ser := models.Series{Binding: b}
	if st.NumberFormat != "" {
		if err := ValidateNumberFormat(st.NumberFormat); err != nil {
			return ser, st, field, NewConfigurationError(field+".number_format", "%v", err)
		}
		ser.NumberFormat = st.NumberFormat
	}
	labels, err := f.labels.SeriesLabels(field+".data_label", st.DataLabel, b.Labels)
	if err != nil {
		return ser, st, field, err
	}
	ser.DataLabels = labels
	return ser, st, field, nil
}

// points returns the data point overrides of a series. Overrides past the last
// data point are dropped.
func (f *fragment) points(s *session, b models.SeriesBinding, fill, border bool) []models.DataPoint {
	var out []models.DataPoint
	for _, idx := range f.colors.OverriddenPoints(b.ID) {
		if idx >= len(b.Values.Cache) {
			s.logger.Debug("point override past the last data point dropped", "series", b.ID, "point", idx)
			continue
		}
		p := models.DataPoint{Index: idx}
		if fill {
			p.Fill = colorPtr(f.colors.ResolveFill(b.ID, idx))
		}
		if border {
			p.Outline = f.colors.ExplicitBorder(b.ID, idx)
		}
		if p.Fill != nil || p.Outline != nil {
			out = append(out, p)
		}
	}
	return out
}

// marker resolves a series marker. def is the symbol used when the chart spec sets none.
func marker(field string, spec *models.MarkerSpec, def models.MarkerSymbol, fill, outline models.ColorSpec, d Defaults) (*models.Marker, error) {
	symbol, size := def, d.MarkerSize
	if spec != nil {
		if spec.Symbol != "" {
			symbol = spec.Symbol
		}
		if spec.Size != 0 {
			if spec.Size < 2 || spec.Size > 72 {
				return nil, NewConfigurationError(field+".marker.size", "marker size %d out of range 2..72", spec.Size)
			}
			size = spec.Size
		}
	}
	if !slices.Contains(markerSymbols, symbol) {
		return nil, NewConfigurationError(field+".marker.symbol", "unknown marker symbol %q", symbol)
	}
	if symbol == models.MarkerNone {
		return &models.Marker{Symbol: symbol}, nil
	}
	return &models.Marker{Symbol: symbol, Size: size, Fill: colorPtr(fill), Outline: colorPtr(outline)}, nil
}
