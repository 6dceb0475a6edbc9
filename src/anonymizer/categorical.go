package anonymizer

// AnonymizeCategorical replaces every value with its minted token and returns
// the token -> original mapping. Output order mirrors input order; duplicate
// values collapse to the same token since the token is content-derived.
func AnonymizeCategorical(values []string) ([]string, ColumnMapping) {
	anonymized := make([]string, len(values))
	mapping := make(ColumnMapping)

	for i, value := range values {
		token := MintToken(value)
		mapping.Put(token, value)
		anonymized[i] = token
	}
	return anonymized, mapping
}
