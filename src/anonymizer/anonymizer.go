// Package anonymizer reversibly de-identifies tabular data. Sensitive spans
// in free-text columns (found by an external entity tagger plus optional
// caller-supplied regex overrides) and whole values in categorical columns
// are replaced with content-derived tokens, and a token -> original mapping
// is returned so the transformation can be undone with Reverse.
//
// Entity detection is best effort: the tagger may miss entities. This is a
// de-identification utility, not a compliance guarantee.
package anonymizer

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/dataveil/dataveil/src/table"
	"github.com/dataveil/dataveil/src/tagger"
)

// Request names the columns to anonymize and their treatment. Regex
// overrides are keyed by free-text column name and run ahead of entity
// tagging for that column.
type Request struct {
	FreeTextColumns    []string
	CategoricalColumns []string
	RegexOverrides     map[string][]*regexp.Regexp
}

// Anonymizer drives one table's anonymization. Columns are processed one at
// a time, cells within a column one at a time; the only blocking operation
// is the tagger call.
type Anonymizer struct {
	tagger   tagger.Tagger
	cfg      tagger.Config
	progress func(done, total int)
}

// New validates the tagger configuration and returns an Anonymizer.
func New(tg tagger.Tagger, cfg tagger.Config) (*Anonymizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &Anonymizer{tagger: tg, cfg: cfg}, nil
}

// SetProgress installs a per-cell progress callback for free-text columns.
func (a *Anonymizer) SetProgress(fn func(done, total int)) {
	a.progress = fn
}

// Anonymize returns an anonymized deep copy of the table and the mapping
// needed to reverse it. The input table is never mutated. Input validation
// happens up front; a tagger failure mid-table aborts the whole call and the
// partial results are discarded.
func (a *Anonymizer) Anonymize(t *table.Table, req Request) (*table.Table, *Result, error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%w: table is nil", ErrInvalidInput)
	}
	for _, col := range append(append([]string{}, req.FreeTextColumns...), req.CategoricalColumns...) {
		if !t.HasColumn(col) {
			return nil, nil, fmt.Errorf("%w: table has no column %q", ErrInvalidInput, col)
		}
	}

	out := t.Copy()
	result := NewResult()

	for _, col := range req.FreeTextColumns {
		cells, err := out.Column(col)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		log.Infof("anonymizing free-text column %q (%d cells)", col, len(cells))
		fta := &FreeTextAnonymizer{Tagger: a.tagger, Config: a.cfg, Progress: a.progress}
		anonymized, mapping, err := fta.Anonymize(cells, req.RegexOverrides[col])
		if err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", col, err)
		}
		if err := out.SetColumn(col, anonymized); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		result.FreeText[col] = mapping
	}

	for _, col := range req.CategoricalColumns {
		cells, err := out.Column(col)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		log.Infof("anonymizing categorical column %q (%d cells)", col, len(cells))
		anonymized, mapping := AnonymizeCategorical(cells)
		if err := out.SetColumn(col, anonymized); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		result.Categorical[col] = mapping
	}

	log.Infof("minted %d distinct tokens across %d columns",
		result.TokenCount(), len(req.FreeTextColumns)+len(req.CategoricalColumns))
	return out, result, nil
}
