package pgsql

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern builds the ILIKE pattern for a contains-style search. LIKE
// metacharacters in the term are escaped so they match literally; a search
// for "100%" must not match every row.
func searchPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
