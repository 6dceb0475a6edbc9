package srcdb

import "fmt"

// Source identifies the database to read from. Uri, when set, takes
// precedence over the individual connection fields.
type Source struct {
	DBType   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Uri      string
}

func (s *Source) postgresConnectionString() string {
	if s.Uri != "" {
		return s.Uri
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		s.User, s.Password, s.Host, s.Port, s.DBName, sslMode)
}

func (s *Source) mysqlConnectionString() string {
	if s.Uri != "" {
		return s.Uri
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", s.User, s.Password, s.Host, s.Port, s.DBName)
}
