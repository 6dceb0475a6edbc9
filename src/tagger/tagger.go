// Package tagger defines the contract the anonymizer requires from an
// external entity-tagging model and a client for a tagger served as an HTTP
// sidecar. The model's loading lifecycle, weights and tokenization algorithm
// all live behind this interface; the core only consumes its predictions.
package tagger

import "fmt"

// Tagger produces subword-level entity predictions for one sentence.
// Tokenize and PredictTags must be position-aligned: PredictTags returns one
// label index per subword that Tokenize returns for the same sentence.
type Tagger interface {
	Tokenize(sentence string) ([]string, error)
	PredictTags(sentence string) ([]int, error)
}

// Config identifies the tagger model and the label scheme it was trained
// with. LabelList maps prediction indices to label names; LabelsToAnonymize
// selects which of those labels mark text for replacement.
type Config struct {
	ModelName         string
	LabelList         []string
	LabelsToAnonymize []string

	// SubwordPrefix is the continuation marker the tagger's tokenizer puts
	// on non-initial subword fragments. Stripped when reconstructing the
	// surface form.
	SubwordPrefix string
}

// DefaultConfig returns the label scheme of dslim/bert-base-NER, anonymizing
// person and location entities.
func DefaultConfig() Config {
	return Config{
		ModelName: "dslim/bert-base-NER",
		LabelList: []string{
			"O", "B-MISC", "I-MISC", "B-PER", "I-PER",
			"B-ORG", "I-ORG", "B-LOC", "I-LOC",
		},
		LabelsToAnonymize: []string{"B-PER", "I-PER", "B-LOC", "I-LOC"},
		SubwordPrefix:     "##",
	}
}

// Validate checks that every label selected for anonymization exists in the
// label list.
func (c Config) Validate() error {
	known := make(map[string]bool, len(c.LabelList))
	for _, label := range c.LabelList {
		known[label] = true
	}
	for _, label := range c.LabelsToAnonymize {
		if !known[label] {
			return fmt.Errorf("label %q is not in the label list", label)
		}
	}
	return nil
}

// AnonymizeSet returns the labels-to-anonymize as a lookup set.
func (c Config) AnonymizeSet() map[string]bool {
	set := make(map[string]bool, len(c.LabelsToAnonymize))
	for _, label := range c.LabelsToAnonymize {
		set[label] = true
	}
	return set
}
