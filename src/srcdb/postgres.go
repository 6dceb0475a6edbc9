package srcdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	log "github.com/sirupsen/logrus"

	"github.com/dataveil/dataveil/src/table"
)

type PostgreSQL struct {
	source *Source

	db *pgx.Conn
}

func newPostgreSQL(s *Source) *PostgreSQL {
	return &PostgreSQL{source: s}
}

func (pg *PostgreSQL) Connect() error {
	db, err := pgx.Connect(context.Background(), pg.source.postgresConnectionString())
	pg.db = db
	return err
}

func (pg *PostgreSQL) Disconnect() {
	if pg.db != nil {
		pg.db.Close(context.Background())
	}
}

func (pg *PostgreSQL) ReadTable(tableName string) (*table.Table, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, pgx.Identifier{tableName}.Sanitize())
	log.Infof("reading table %q from postgres source", tableName)

	rows, err := pg.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", tableName, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columnNames := make([]string, len(fields))
	for i, fd := range fields {
		columnNames[i] = string(fd.Name)
	}

	t := table.NewTable(columnNames)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan row of table %q: %w", tableName, err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				cells[i] = ""
				continue
			}
			cells[i] = fmt.Sprintf("%v", v)
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
