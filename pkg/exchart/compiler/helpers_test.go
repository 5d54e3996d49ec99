package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// quarterly is a category column followed by three value columns.
var quarterly = [][]string{
	{"", "North", "South", "East"},
	{"Q1", "10", "20", "30"},
	{"Q2", "11", "21", "31"},
	{"Q3", "12", "22", "32"},
	{"Q4", "13", "23", "33"},
}

func newBlock(t *testing.T, sheet string, values [][]string) models.DataBlock {
	t.Helper()
	block, err := models.NewDataBlock(sheet, "A1", values)
	require.NoError(t, err)
	return block
}

// columns returns the first n columns of values.
func columns(values [][]string, n int) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = row[:n]
	}
	return out
}

func compileSpec(t *testing.T, spec models.ChartSpec, block models.DataBlock) (*models.ChartDocument, error) {
	t.Helper()
	return New(DefaultDefaults(), nil).Compile(&spec, block)
}

func mustCompile(t *testing.T, spec models.ChartSpec, block models.DataBlock) *models.ChartDocument {
	t.Helper()
	doc, err := compileSpec(t, spec, block)
	require.NoError(t, err)
	return doc
}

func requireConfigError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	if field != "" {
		require.Equal(t, field, ce.Field)
	}
}

func requireShapeError(t *testing.T, err error) *DataShapeError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidDataShape)
	var de *DataShapeError
	require.ErrorAs(t, err, &de)
	return de
}

func columnSpec(grouping models.BarGrouping) models.ChartSpec {
	return models.ChartSpec{Variant: models.Variant{
		Family: models.FamilyColumn,
		Bar:    &models.BarSettings{Grouping: grouping},
	}}
}

// requireSymmetricAxes checks that every non-sentinel axis references a partner
// that references it back, and that the sentinel references nothing.
func requireSymmetricAxes(t *testing.T, doc *models.ChartDocument) {
	t.Helper()
	for _, ax := range doc.PlotArea.Axes {
		if ax.Sentinel {
			requireUnpartneredSentinel(t, doc, ax)
			continue
		}
		require.NotEqual(t, ax.ID, ax.CrossAxisID, "axis %d references itself", ax.ID)
		partner, ok := doc.Axis(ax.CrossAxisID)
		require.True(t, ok, "axis %d references missing axis %d", ax.ID, ax.CrossAxisID)
		require.Equal(t, ax.ID, partner.CrossAxisID)
	}
}

// requireUnpartneredSentinel checks that a sentinel depth axis has no partner
// and that its zero cross id resolves to no axis.
func requireUnpartneredSentinel(t *testing.T, doc *models.ChartDocument, ax models.Axis) {
	t.Helper()
	require.Equal(t, DepthAxisID, ax.ID)
	require.Zero(t, ax.CrossAxisID)
	_, ok := doc.Axis(ax.CrossAxisID)
	require.False(t, ok, "sentinel cross id resolves to an axis")
	for _, other := range doc.PlotArea.Axes {
		if !other.Sentinel {
			require.NotEqual(t, ax.ID, other.CrossAxisID, "axis %d references the sentinel", other.ID)
		}
	}
}
