package compiler

import (
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// NoPoint asks the resolver for a series-level color.
const NoPoint = -1

type colorPair struct {
	fill   *models.ColorSpec
	border *models.ColorSpec
}

func (p colorPair) set() bool {
	return p.fill != nil || p.border != nil
}

// ColorResolver picks the color of a series or data point. An explicit point
// color wins over an explicit series color, which wins over the theme accent
// selected by the series id.
//
// Styles are matched to series by position: the first style applies to the
// series with id firstSeriesID.
type ColorResolver struct {
	first  int
	series []colorPair
	points [][]colorPair
}

// NewColorResolver validates the literal colors of styles and returns a resolver.
// field prefixes the paths reported in a ConfigurationError.
func NewColorResolver(field string, styles []models.SeriesStyle, firstSeriesID int) (*ColorResolver, error) {
	r := &ColorResolver{
		first:  firstSeriesID,
		series: make([]colorPair, len(styles)),
		points: make([][]colorPair, len(styles)),
	}
	for i, st := range styles {
		path := fmt.Sprintf("%s[%d]", field, i)
		pair, err := parsePair(path, st.FillColor, st.BorderColor)
		if err != nil {
			return nil, err
		}
		r.series[i] = pair

		r.points[i] = make([]colorPair, len(st.Points))
		for j, pt := range st.Points {
			pair, err := parsePair(fmt.Sprintf("%s.points[%d]", path, j), pt.FillColor, pt.BorderColor)
			if err != nil {
				return nil, err
			}
			r.points[i][j] = pair
		}
	}
	return r, nil
}

func parsePair(field, fill, border string) (colorPair, error) {
	var p colorPair
	if fill != "" {
		hex, err := NormalizeColor(fill)
		if err != nil {
			return p, NewConfigurationError(field+".fill_color", "%v", err)
		}
		c := models.LiteralColor(hex)
		p.fill = &c
	}
	if border != "" {
		hex, err := NormalizeColor(border)
		if err != nil {
			return p, NewConfigurationError(field+".border_color", "%v", err)
		}
		c := models.LiteralColor(hex)
		p.border = &c
	}
	return p, nil
}

func (r *ColorResolver) seriesPair(seriesID int) colorPair {
	i := seriesID - r.first
	if i < 0 || i >= len(r.series) {
		return colorPair{}
	}
	return r.series[i]
}

func (r *ColorResolver) pointPair(seriesID, pointID int) colorPair {
	i := seriesID - r.first
	if pointID < 0 || i < 0 || i >= len(r.points) || pointID >= len(r.points[i]) {
		return colorPair{}
	}
	return r.points[i][pointID]
}

// ResolveFill returns the fill color of a series (pointID NoPoint) or of one of its points.
func (r *ColorResolver) ResolveFill(seriesID, pointID int) models.ColorSpec {
	if c := r.pointPair(seriesID, pointID).fill; c != nil {
		return *c
	}
	if c := r.seriesPair(seriesID).fill; c != nil {
		return *c
	}
	return models.AccentColor(seriesID)
}

// ResolveBorder returns the border or line color of a series or of one of its points.
func (r *ColorResolver) ResolveBorder(seriesID, pointID int) models.ColorSpec {
	if c := r.pointPair(seriesID, pointID).border; c != nil {
		return *c
	}
	if c := r.seriesPair(seriesID).border; c != nil {
		return *c
	}
	return models.AccentColor(seriesID)
}

// ExplicitBorder returns the border set on the point or series, or nil.
func (r *ColorResolver) ExplicitBorder(seriesID, pointID int) *models.ColorSpec {
	if c := r.pointPair(seriesID, pointID).border; c != nil {
		return c
	}
	return r.seriesPair(seriesID).border
}

// OverriddenPoints returns the indexes of points with an explicit color.
func (r *ColorResolver) OverriddenPoints(seriesID int) []int {
	i := seriesID - r.first
	if i < 0 || i >= len(r.points) {
		return nil
	}
	var out []int
	for j, p := range r.points[i] {
		if p.set() {
			out = append(out, j)
		}
	}
	return out
}
