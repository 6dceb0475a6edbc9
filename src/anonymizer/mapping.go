package anonymizer

// ColumnMapping maps token -> original content key for one anonymized
// column. Entries are write-once: the first occurrence wins and re-insertion
// of an existing token is a no-op.
type ColumnMapping map[string]string

// Put records token -> original unless the token is already present.
func (m ColumnMapping) Put(token, original string) {
	if _, ok := m[token]; ok {
		return
	}
	m[token] = original
}

// merge copies every entry of other into m, preserving m's existing entries.
func (m ColumnMapping) merge(other ColumnMapping) {
	for token, original := range other {
		m.Put(token, original)
	}
}

// Result is the durable side-channel produced by one anonymize call. It must
// be persisted alongside the anonymized table; without it the transformation
// cannot be undone. It is read-only once returned.
type Result struct {
	FreeText    map[string]ColumnMapping `json:"free_text"`
	Categorical map[string]ColumnMapping `json:"categorical"`
}

// NewResult returns an empty Result with both sections allocated.
func NewResult() *Result {
	return &Result{
		FreeText:    make(map[string]ColumnMapping),
		Categorical: make(map[string]ColumnMapping),
	}
}

// TokenCount returns the total number of distinct minted tokens.
func (r *Result) TokenCount() int {
	n := 0
	for _, m := range r.FreeText {
		n += len(m)
	}
	for _, m := range r.Categorical {
		n += len(m)
	}
	return n
}
