package anonymizer

import (
	"fmt"
	"strings"

	"github.com/dataveil/dataveil/src/table"
)

// Reverse restores the original values of an anonymized table using the
// mapping produced by Anonymize, returning a new table.
//
// Free-text columns are restored by substring replacement of each token with
// its original, in map iteration order; if one entity's original text
// contains another entity's token, the outcome depends on that order. Known
// limitation, kept as documented. Categorical columns are restored by exact
// whole-value lookup. Columns present in the mapping but absent from the
// table (and vice versa) are left untouched, and a token without a mapping
// entry stays as-is.
func Reverse(t *table.Table, res *Result) (*table.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: table is nil", ErrInvalidInput)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: mapping is nil", ErrMapping)
	}

	out := t.Copy()

	for col, mapping := range res.FreeText {
		if !out.HasColumn(col) {
			continue
		}
		cells, err := out.Column(col)
		if err != nil {
			return nil, err
		}
		for token, original := range mapping {
			for i, cell := range cells {
				cells[i] = strings.ReplaceAll(cell, token, original)
			}
		}
		if err := out.SetColumn(col, cells); err != nil {
			return nil, err
		}
	}

	for col, mapping := range res.Categorical {
		if !out.HasColumn(col) {
			continue
		}
		cells, err := out.Column(col)
		if err != nil {
			return nil, err
		}
		for i, cell := range cells {
			if original, ok := mapping[cell]; ok {
				cells[i] = original
			}
		}
		if err := out.SetColumn(col, cells); err != nil {
			return nil, err
		}
	}

	return out, nil
}
