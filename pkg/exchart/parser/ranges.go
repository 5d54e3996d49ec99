// Package parser reads chart data out of Excel workbooks.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a 1-based, inclusive cell rectangle.
type Range struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// Origin returns the top-left cell name of the range.
func (r Range) Origin() string {
	name, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	return name
}

func (r Range) String() string {
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return r.Origin() + ":" + end
}

// ParseReference parses a range reference with an optional sheet name.
// Format: 'Sheet Name'!$A$1:$D$10, SheetName!A1:D10 or A1:D10.
// A single cell yields a one-cell range.
func ParseReference(ref string) (string, Range, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	var sheet string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = ref[:idx]
		rangeStr = ref[idx+1:]
		if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
	}

	r, err := ParseRange(rangeStr)
	if err != nil {
		return "", Range{}, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return sheet, r, nil
}

// ParseRange parses a range string like $A$1:$D$10 and normalizes its corners.
func ParseRange(rangeStr string) (Range, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("range %q must have the form A1:D10", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, err
	}

	return Range{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// ResolveDefinedName looks up a workbook or sheet scoped defined name and
// returns the sheet and range it refers to.
func ResolveDefinedName(f *excelize.File, name string) (string, Range, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		// Multi-area names cannot feed a single data block.
		if strings.Contains(dn.RefersTo, ",") {
			return "", Range{}, false
		}
		sheet, r, err := ParseReference(dn.RefersTo)
		if err != nil || sheet == "" {
			return "", Range{}, false
		}
		return sheet, r, true
	}
	return "", Range{}, false
}
