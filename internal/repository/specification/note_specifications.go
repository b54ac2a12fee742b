package specification

import (
	"encoding/json"
	"fmt"
	"strings"

	"notes-app-be/pkg/database"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NoteSearchQuery matches notes whose title OR content contains Query,
// case-insensitively. LIKE wildcards in Query are matched literally.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	lower := "LOWER"
	if db.Dialector.Name() == database.DriverSQLite {
		lower = database.SQLiteLowerFunc
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(s.Query)) + "%"
	clause := fmt.Sprintf(`(%[1]s(title) LIKE ? ESCAPE '\' OR %[1]s(content) LIKE ? ESCAPE '\')`, lower)
	return db.Where(clause, pattern, pattern)
}

// HasTag matches notes whose tag list contains Tag exactly.
type HasTag struct {
	Tag string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	switch db.Dialector.Name() {
	case "postgres":
		needle, _ := json.Marshal([]string{s.Tag})
		return db.Where("tags @> ?::jsonb", string(needle))
	default:
		return db.Where("EXISTS (SELECT 1 FROM json_each(notes.tags) WHERE json_each.value = ?)", s.Tag)
	}
}
