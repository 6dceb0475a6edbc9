package anonymizer

import (
	"fmt"
	"strings"

	"github.com/dataveil/dataveil/src/tagger"
)

// mergeState carries the span-merge bookkeeping between positions: the
// position and label of the last subword folded into the current run.
type mergeState struct {
	lastPos   int
	lastLabel string
}

// MergeEntitySpans reconstructs maximal entity spans from per-subword tag
// predictions. A subword at position i extends the current run iff i is
// exactly one greater than the last merged position and its label equals the
// last merged label; anything else starts a new run. Member surface forms
// (continuation marker stripped) are joined with a single space. Positional
// adjacency plus label equality is the sole merge criterion; the tagger's
// begin/inside distinction is deliberately not consulted, so B-PER followed
// by B-PER merges the same way B-PER/I-PER does.
//
// Returns the distinct span surface strings in order of first appearance.
// Length mismatch between subwords and predictions, or a prediction index
// outside the label list, is a malformed tagger response.
func MergeEntitySpans(subwords []string, predictions []int, cfg tagger.Config) ([]string, error) {
	if len(subwords) != len(predictions) {
		return nil, fmt.Errorf("%w: %d subwords but %d predictions", ErrTagger, len(subwords), len(predictions))
	}

	anonymize := cfg.AnonymizeSet()
	state := mergeState{lastPos: -2}
	var runs []string

	for pos, pred := range predictions {
		if pred < 0 || pred >= len(cfg.LabelList) {
			return nil, fmt.Errorf("%w: prediction index %d outside label list of size %d", ErrTagger, pred, len(cfg.LabelList))
		}
		label := cfg.LabelList[pred]
		if !anonymize[label] {
			continue
		}

		surface := strings.ReplaceAll(subwords[pos], cfg.SubwordPrefix, "")
		if len(runs) > 0 && pos-1 == state.lastPos && label == state.lastLabel {
			runs[len(runs)-1] = runs[len(runs)-1] + " " + surface
		} else {
			runs = append(runs, surface)
		}
		state = mergeState{lastPos: pos, lastLabel: label}
	}

	// Distinct spans, first appearance first. Duplicates occur when the same
	// entity shows up twice in one sentence.
	seen := make(map[string]bool, len(runs))
	spans := runs[:0]
	for _, run := range runs {
		if seen[run] {
			continue
		}
		seen[run] = true
		spans = append(spans, run)
	}
	return spans, nil
}
