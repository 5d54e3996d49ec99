package exchart

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
	"github.com/xuri/excelize/v2"
)

// LoadDataBlock opens an Excel file and reads a data block from it.
// See DataBlockFromWorkbook for how sheet and ref are interpreted.
func LoadDataBlock(path, sheet, ref string) (models.DataBlock, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return models.DataBlock{}, NewSpecError(path, "data", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.DataBlock{}, NewSpecError(path, "data", err)
	}
	defer f.Close()

	block, err := DataBlockFromWorkbook(f, sheet, ref)
	if err != nil {
		return models.DataBlock{}, NewSpecError(path, "data", err)
	}
	return block, nil
}

// DataBlockFromWorkbook reads a data block from an open workbook. ref is a range
// (A1:D6), a sheet-qualified range (Sheet1!$A$1:$D$6) or a defined name. An
// empty ref selects the used region of the sheet. An empty sheet selects the
// first sheet unless ref names one.
func DataBlockFromWorkbook(f *excelize.File, sheet, ref string) (models.DataBlock, error) {
	var (
		r        parser.Range
		refSheet string
		err      error
	)
	if ref != "" {
		refSheet, r, err = parser.ParseReference(ref)
		if err != nil {
			var ok bool
			if refSheet, r, ok = parser.ResolveDefinedName(f, ref); !ok {
				return models.DataBlock{}, err
			}
		}
	}

	switch {
	case refSheet != "" && sheet != "" && refSheet != sheet:
		return models.DataBlock{}, fmt.Errorf("range %q is on sheet %q, not %q", ref, refSheet, sheet)
	case refSheet != "":
		sheet = refSheet
	case sheet == "":
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.DataBlock{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return models.DataBlock{}, fmt.Errorf("sheet %q does not exist", sheet)
	}

	if ref == "" {
		if r, err = parser.DetectDataRange(f, sheet, parser.DefaultDataRangeParams()); err != nil {
			return models.DataBlock{}, err
		}
	}
	return parser.ExtractDataBlock(f, sheet, r)
}
