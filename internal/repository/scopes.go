package repository

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching it as a
// literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// matchNameCityState filters table rows whose name, city or state contains
// term, ignoring case.
func matchNameCityState(table, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		p := containsPattern(term)
		return db.Where(
			table+".name ILIKE ? OR "+table+".city ILIKE ? OR "+table+".state ILIKE ?",
			p, p, p,
		)
	}
}
