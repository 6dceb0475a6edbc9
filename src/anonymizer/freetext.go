package anonymizer

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/dataveil/dataveil/src/tagger"
)

// Sentences are split on a literal period and rejoined with ". ". Each
// sentence must fit the tagger's maximum input length; chunking longer
// sentences is the caller's problem.
const sentenceDelimiter = "."

// FreeTextAnonymizer anonymizes the cells of one free-text column: regex
// overrides first, then entity tagging, span merging and token substitution,
// sentence by sentence.
type FreeTextAnonymizer struct {
	Tagger tagger.Tagger
	Config tagger.Config

	// Progress, if set, is called after each processed cell with the number
	// of cells done and the total. Used by the CLI for its progress bar;
	// the core stays sequential either way.
	Progress func(done, total int)
}

// Anonymize processes every text cell and returns the anonymized cells plus
// the column's token mapping. A tagger failure aborts the whole call; there
// are no retries and no partial output.
func (f *FreeTextAnonymizer) Anonymize(texts []string, patterns []*regexp.Regexp) ([]string, ColumnMapping, error) {
	anonymized := make([]string, len(texts))
	mapping := make(ColumnMapping)

	for i, text := range texts {
		sentences := strings.Split(text, sentenceDelimiter)
		anonSentences := make([]string, len(sentences))

		for j, sentence := range sentences {
			anonSentence, err := f.anonymizeSentence(sentence, patterns, mapping)
			if err != nil {
				return nil, nil, err
			}
			anonSentences[j] = anonSentence
		}

		anonymized[i] = joinSentences(anonSentences)
		if f.Progress != nil {
			f.Progress(i+1, len(texts))
		}
	}
	return anonymized, mapping, nil
}

// joinSentences rejoins anonymized sentences with ". ". A text that ended on
// the delimiter splits into a trailing empty sentence; dropping the space
// after the final period keeps such texts byte-identical through an
// anonymize/reverse round trip. Interior periods still gain a space, which is
// the documented imprecision of period splitting.
func joinSentences(sentences []string) string {
	joined := strings.Join(sentences, sentenceDelimiter+" ")
	if len(sentences) > 1 && sentences[len(sentences)-1] == "" {
		joined = strings.TrimSuffix(joined, " ")
	}
	return joined
}

func (f *FreeTextAnonymizer) anonymizeSentence(sentence string, patterns []*regexp.Regexp, mapping ColumnMapping) (string, error) {
	// Regex overrides run before the tagger so overridden text is never
	// tagged and never re-split by the tagger's tokenizer.
	sentence, partial := ApplyRegexOverrides(sentence, patterns)
	mapping.merge(partial)

	if strings.TrimSpace(sentence) == "" {
		return sentence, nil
	}

	subwords, err := f.Tagger.Tokenize(sentence)
	if err != nil {
		return "", fmt.Errorf("%w: tokenize: %v", ErrTagger, err)
	}
	predictions, err := f.Tagger.PredictTags(sentence)
	if err != nil {
		return "", fmt.Errorf("%w: predict: %v", ErrTagger, err)
	}

	spans, err := MergeEntitySpans(subwords, predictions, f.Config)
	if err != nil {
		return "", err
	}

	for _, span := range spans {
		token := MintToken(span)
		mapping.Put(token, span)
		// Whole-substring replacement, not word-boundary aware: the span is
		// replaced wherever it occurs verbatim, including inside other
		// words. Accepted imprecision.
		sentence = strings.ReplaceAll(sentence, span, token)
		log.Debugf("anonymized entity span as token %s", token)
	}
	return sentence, nil
}
