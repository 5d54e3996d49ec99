package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
	"golang.org/x/text/language"
)

var (
	plainSheetName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	hexColor       = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)
)

// QuoteSheetName returns the sheet name as it must appear in a range formula.
// Names other than plain identifiers are single-quoted with embedded quotes doubled.
func QuoteSheetName(name string) string {
	if plainSheetName.MatchString(name) && !looksLikeCellName(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// looksLikeCellName reports names such as "A1" or "XFD10" that would be read as cell references.
func looksLikeCellName(name string) bool {
	_, _, err := excelize.CellNameToCoordinates(name)
	return err == nil
}

func absoluteCell(addr string) (string, error) {
	col, row, err := excelize.SplitCellName(addr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("$%s$%d", col, row), nil
}

// RangeFormula returns the absolute range formula spanning the cells first..last
// on sheet. A single cell yields a single-cell reference.
func RangeFormula(sheet, first, last string) (string, error) {
	from, err := absoluteCell(first)
	if err != nil {
		return "", fmt.Errorf("invalid cell address %q: %w", first, err)
	}
	prefix := QuoteSheetName(sheet) + "!"
	if first == last {
		return prefix + from, nil
	}
	to, err := absoluteCell(last)
	if err != nil {
		return "", fmt.Errorf("invalid cell address %q: %w", last, err)
	}
	return prefix + from + ":" + to, nil
}

// ValidateRangeFormula checks that formula is a single range operand, optionally
// sheet-qualified, and returns it without a leading "=".
func ValidateRangeFormula(formula string) (string, error) {
	formula = strings.TrimPrefix(strings.TrimSpace(formula), "=")
	if formula == "" {
		return "", fmt.Errorf("empty range formula")
	}
	ps := efp.ExcelParser()
	tokens := ps.Parse(formula)
	if len(tokens) != 1 {
		return "", fmt.Errorf("range formula %q must be a single reference, got %d tokens", formula, len(tokens))
	}
	if tokens[0].TType != efp.TokenTypeOperand || tokens[0].TSubType != efp.TokenSubTypeRange {
		return "", fmt.Errorf("range formula %q is not a cell reference", formula)
	}
	return formula, nil
}

// NormalizeColor validates a hex color (RRGGBB or #RRGGBB) and returns it upper-cased.
func NormalizeColor(s string) (string, error) {
	m := hexColor.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("invalid color %q: expected RRGGBB", s)
	}
	return strings.ToUpper(m[1]), nil
}

// ValidateNumberFormat checks that code parses as a spreadsheet number format.
func ValidateNumberFormat(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("empty number format")
	}
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 || len(sections) > 4 {
		return fmt.Errorf("number format %q has %d sections", code, len(sections))
	}
	for _, section := range sections {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeUnknown {
				return fmt.Errorf("number format %q has unknown token %q", code, token.TValue)
			}
		}
	}
	return nil
}

// CanonicalLanguage validates a BCP 47 tag and returns its canonical form.
func CanonicalLanguage(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return t.String(), nil
}

// resolveText fills the defaults of a text style and validates its color and language.
func resolveText(field string, t models.TextStyle, d Defaults) (models.TextStyle, error) {
	if t.Size == 0 {
		t.Size = d.FontSize
	}
	if t.Size < 1 || t.Size > 400 {
		return t, NewConfigurationError(field+".size", "font size %g out of range 1..400", t.Size)
	}
	if t.Color != "" {
		c, err := NormalizeColor(t.Color)
		if err != nil {
			return t, NewConfigurationError(field+".color", "%v", err)
		}
		t.Color = c
	}
	if t.Language == "" {
		t.Language = d.Language
	}
	lang, err := CanonicalLanguage(t.Language)
	if err != nil {
		return t, NewConfigurationError(field+".language", "%v", err)
	}
	t.Language = lang
	return t, nil
}
