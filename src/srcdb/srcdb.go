// Package srcdb reads tables out of live databases so they can be fed to the
// anonymizer without an intermediate CSV export.
package srcdb

import (
	"fmt"

	"github.com/dataveil/dataveil/src/table"
)

type SourceDB interface {
	Connect() error
	Disconnect()
	// ReadTable pulls every row of the named table, coercing each value to
	// its string form.
	ReadTable(tableName string) (*table.Table, error)
}

func NewSourceDB(source *Source) (SourceDB, error) {
	switch source.DBType {
	case "postgres":
		return newPostgreSQL(source), nil
	case "mysql":
		return newMySQL(source), nil
	default:
		return nil, fmt.Errorf("unknown source database type %q", source.DBType)
	}
}
