package utils

// report.json format
type Report struct {
	Summary Summary `json:"summary"`
}

type Summary struct {
	MappingFile string          `json:"mappingFile"`
	TotalTokens int             `json:"totalTokens"`
	Columns     []ColumnSummary `json:"columns"`
}

type ColumnSummary struct {
	ColumnName string `json:"columnName"`
	ColumnType string `json:"columnType"` // free_text or categorical
	TokenCount int    `json:"tokenCount"`
}
