package common

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GenreList is a set of free-text genre tags. It is stored as a single
// comma-delimited string column and exposed as a slice everywhere else.
type GenreList []string

// Scan implements the sql.Scanner interface for database deserialization
func (g *GenreList) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into GenreList", value)
	}

	if str == "" {
		*g = nil
		return nil
	}

	parts := strings.Split(str, ",")
	genres := make(GenreList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	*g = genres
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (g GenreList) Value() (driver.Value, error) {
	return strings.Join(g, ","), nil
}

func (g GenreList) String() string {
	return strings.Join(g, ",")
}

// GormDataType tells GORM to back the slice with a plain text column
func (GenreList) GormDataType() string {
	return "text"
}
