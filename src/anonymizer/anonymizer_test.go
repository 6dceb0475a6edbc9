package anonymizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataveil/dataveil/src/table"
	"github.com/dataveil/dataveil/src/tagger"
)

func newTestTable(t *testing.T) *table.Table {
	tbl := table.NewTable([]string{"id", "notes", "city"})
	rows := [][]string{
		{"1", "John lives in Paris.", "Paris"},
		{"2", "nothing sensitive here.", "London"},
		{"3", "John lives in Paris.", "Paris"},
	}
	for _, row := range rows {
		if err := tbl.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

func TestNewRejectsBadConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := tagger.DefaultConfig()
	cfg.LabelsToAnonymize = append(cfg.LabelsToAnonymize, "B-UNKNOWN")

	_, err := New(newPersonLocationTagger(), cfg)
	assert.ErrorIs(err, ErrConfig)
}

func TestAnonymizeValidatesInput(t *testing.T) {
	assert := assert.New(t)
	anon, err := New(newPersonLocationTagger(), tagger.DefaultConfig())
	assert.NoError(err)

	_, _, err = anon.Anonymize(nil, Request{})
	assert.ErrorIs(err, ErrInvalidInput)

	_, _, err = anon.Anonymize(newTestTable(t), Request{FreeTextColumns: []string{"missing"}})
	assert.ErrorIs(err, ErrInvalidInput)

	_, _, err = anon.Anonymize(newTestTable(t), Request{CategoricalColumns: []string{"missing"}})
	assert.ErrorIs(err, ErrInvalidInput)
}

func TestAnonymizeDoesNotMutateInput(t *testing.T) {
	assert := assert.New(t)
	anon, _ := New(newPersonLocationTagger(), tagger.DefaultConfig())
	tbl := newTestTable(t)

	_, _, err := anon.Anonymize(tbl, Request{
		FreeTextColumns:    []string{"notes"},
		CategoricalColumns: []string{"city"},
	})
	assert.NoError(err)

	notes, _ := tbl.Column("notes")
	assert.Equal("John lives in Paris.", notes[0])
	city, _ := tbl.Column("city")
	assert.Equal("Paris", city[0])
}

func TestAnonymizeReverseRoundTrip(t *testing.T) {
	assert := assert.New(t)
	anon, _ := New(newPersonLocationTagger(), tagger.DefaultConfig())
	tbl := newTestTable(t)

	anonymized, result, err := anon.Anonymize(tbl, Request{
		FreeTextColumns:    []string{"notes"},
		CategoricalColumns: []string{"city"},
	})
	assert.NoError(err)

	notes, _ := anonymized.Column("notes")
	assert.NotContains(notes[0], "John")
	assert.NotContains(notes[0], "Paris")
	assert.Equal(notes[0], notes[2], "identical cells anonymize identically")

	city, _ := anonymized.Column("city")
	assert.Equal(MintToken("Paris"), city[0])

	assert.Len(result.FreeText["notes"], 2)
	assert.Len(result.Categorical["city"], 2)

	restored, err := Reverse(anonymized, result)
	assert.NoError(err)
	for i := 0; i < tbl.RowCount(); i++ {
		assert.Equal(tbl.Row(i), restored.Row(i), "row %d", i)
	}
}

func TestAnonymizeTaggerFailureIsFatal(t *testing.T) {
	assert := assert.New(t)
	anon, _ := New(&fakeTagger{err: errors.New("boom")}, tagger.DefaultConfig())

	anonymized, result, err := anon.Anonymize(newTestTable(t), Request{
		FreeTextColumns: []string{"notes"},
	})
	assert.ErrorIs(err, ErrTagger)
	assert.Nil(anonymized)
	assert.Nil(result)
}

func TestAnonymizeUntouchedColumnsSurvive(t *testing.T) {
	assert := assert.New(t)
	anon, _ := New(newPersonLocationTagger(), tagger.DefaultConfig())
	tbl := newTestTable(t)

	anonymized, _, err := anon.Anonymize(tbl, Request{CategoricalColumns: []string{"city"}})
	assert.NoError(err)

	ids, _ := anonymized.Column("id")
	assert.Equal([]string{"1", "2", "3"}, ids)
	notes, _ := anonymized.Column("notes")
	assert.Equal("John lives in Paris.", notes[0])
}
