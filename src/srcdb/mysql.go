package srcdb

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"

	"github.com/dataveil/dataveil/src/table"
)

type MySQL struct {
	source *Source

	db *sql.DB
}

func newMySQL(s *Source) *MySQL {
	return &MySQL{source: s}
}

func (ms *MySQL) Connect() error {
	db, err := sql.Open("mysql", ms.source.mysqlConnectionString())
	ms.db = db
	return err
}

func (ms *MySQL) Disconnect() {
	if ms.db != nil {
		ms.db.Close()
	}
}

func (ms *MySQL) ReadTable(tableName string) (*table.Table, error) {
	query := fmt.Sprintf("SELECT * FROM `%s`", tableName)
	log.Infof("reading table %q from mysql source", tableName)

	rows, err := ms.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", tableName, err)
	}
	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := table.NewTable(columnNames)
	raw := make([]sql.RawBytes, len(columnNames))
	dest := make([]interface{}, len(columnNames))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row of table %q: %w", tableName, err)
		}
		cells := make([]string, len(raw))
		for i, b := range raw {
			cells[i] = string(b)
		}
		if err := t.AddRow(cells); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read table %q: %w", tableName, err)
	}
	log.Infof("table %q has %d rows", tableName, t.RowCount())
	return t, nil
}
