package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func TestQuoteSheetName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Sheet1", "Sheet1"},
		{"Data_v2", "Data_v2"},
		{"Sales Data", "'Sales Data'"},
		{"O'Brien", "'O''Brien'"},
		{"2024", "'2024'"},
		{"AB12", "'AB12'"},
		{"Q1-Q4", "'Q1-Q4'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteSheetName(tt.name))
		})
	}
}

func TestRangeFormula(t *testing.T) {
	got, err := RangeFormula("Sheet1", "B2", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!$B$2:$B$5", got)

	got, err = RangeFormula("My Sheet", "C1", "C1")
	require.NoError(t, err)
	assert.Equal(t, "'My Sheet'!$C$1", got)

	_, err = RangeFormula("Sheet1", "??", "B5")
	assert.Error(t, err)
}

func TestValidateRangeFormula(t *testing.T) {
	valid := map[string]string{
		"Sheet1!$F$2:$F$5":  "Sheet1!$F$2:$F$5",
		"=Sheet1!$F$2:$F$5": "Sheet1!$F$2:$F$5",
		" $A$1:$A$4 ":       "$A$1:$A$4",
	}
	for in, expected := range valid {
		got, err := ValidateRangeFormula(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, got)
	}

	for _, in := range []string{"", "=", "SUM(A1:A3)", "1+2", `"text"`} {
		_, err := ValidateRangeFormula(in)
		assert.Error(t, err, in)
	}
}

func TestNormalizeColor(t *testing.T) {
	got, err := NormalizeColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "FF0000", got)

	got, err = NormalizeColor("00ff7f")
	require.NoError(t, err)
	assert.Equal(t, "00FF7F", got)

	for _, in := range []string{"red", "#12345", "GGGGGG", "#1234567"} {
		_, err := NormalizeColor(in)
		assert.Error(t, err, in)
	}
}

func TestValidateNumberFormat(t *testing.T) {
	for _, code := range []string{"General", "0.00", "#,##0", "0.0%"} {
		assert.NoError(t, ValidateNumberFormat(code), code)
	}
	assert.Error(t, ValidateNumberFormat(""))
	assert.Error(t, ValidateNumberFormat("  "))
}

func TestCanonicalLanguage(t *testing.T) {
	got, err := CanonicalLanguage("en-us")
	require.NoError(t, err)
	assert.Equal(t, "en-US", got)

	got, err = CanonicalLanguage("ja-JP")
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", got)

	_, err = CanonicalLanguage("not a tag")
	assert.Error(t, err)
}

func TestResolveText(t *testing.T) {
	d := DefaultDefaults()

	got, err := resolveText("title.font", models.TextStyle{Color: "#abcdef"}, d)
	require.NoError(t, err)
	assert.Equal(t, 11.97, got.Size)
	assert.Equal(t, "ABCDEF", got.Color)
	assert.Equal(t, "en-US", got.Language)

	_, err = resolveText("title.font", models.TextStyle{Size: 500}, d)
	requireConfigError(t, err, "title.font.size")

	_, err = resolveText("title.font", models.TextStyle{Color: "blue"}, d)
	requireConfigError(t, err, "title.font.color")

	_, err = resolveText("title.font", models.TextStyle{Language: "??"}, d)
	requireConfigError(t, err, "title.font.language")
}
