package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert := assert.New(t)
	testcases := []struct {
		name    string
		labels  []string
		anon    []string
		wantErr bool
	}{
		{"default scheme", DefaultConfig().LabelList, DefaultConfig().LabelsToAnonymize, false},
		{"empty anonymize set", []string{"O", "B-PER"}, nil, false},
		{"unknown label", []string{"O", "B-PER"}, []string{"B-LOC"}, true},
		{"case sensitive", []string{"O", "B-PER"}, []string{"b-per"}, true},
	}
	for _, tc := range testcases {
		cfg := Config{LabelList: tc.labels, LabelsToAnonymize: tc.anon}
		err := cfg.Validate()
		if tc.wantErr {
			assert.Error(err, tc.name)
		} else {
			assert.NoError(err, tc.name)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	assert.Equal("dslim/bert-base-NER", cfg.ModelName)
	assert.Equal("##", cfg.SubwordPrefix)
	assert.NoError(cfg.Validate())

	set := cfg.AnonymizeSet()
	assert.True(set["B-PER"])
	assert.True(set["I-LOC"])
	assert.False(set["B-ORG"])
	assert.False(set["O"])
}
