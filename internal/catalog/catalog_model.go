package catalog

import (
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scorebook/internal/match"
)

// CatalogPlayer is one candidate name in the postgres-backed catalog.
type CatalogPlayer struct {
	gorm.Model
	Side     string `json:"side" gorm:"size:8;not null;uniqueIndex:idx_catalog_side_name"` // "teamA" or "teamB"
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_catalog_side_name"`
	Position int    `json:"position" gorm:"not null;default:0"` // Order within the side
}

// normalizeRoster trims names, drops empties and removes duplicates within a side.
func normalizeRoster(r match.Roster) match.Roster {
	return match.Roster{
		TeamA: normalizeNames(r.TeamA),
		TeamB: normalizeNames(r.TeamB),
	}
}

func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// rosterFromDocument accepts either a flat list of names, shared by both
// sides, or a {teamA: [...], teamB: [...]} mapping.
func rosterFromDocument(doc interface{}) (match.Roster, bool) {
	switch v := doc.(type) {
	case nil:
		return match.Roster{}, true
	case []interface{}:
		names, ok := stringList(v)
		if !ok {
			return match.Roster{}, false
		}
		return normalizeRoster(match.Roster{TeamA: names, TeamB: names}), true
	case map[string]interface{}:
		var r match.Roster
		for key, val := range v {
			if val == nil {
				continue
			}
			list, isList := val.([]interface{})
			if !isList {
				return match.Roster{}, false
			}
			names, ok := stringList(list)
			if !ok {
				return match.Roster{}, false
			}
			switch match.Side(key) {
			case match.TeamA:
				r.TeamA = names
			case match.TeamB:
				r.TeamB = names
			}
		}
		return normalizeRoster(r), true
	}
	return match.Roster{}, false
}

func stringList(items []interface{}) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
