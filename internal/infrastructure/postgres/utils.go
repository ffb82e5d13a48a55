package postgres

import "strings"

// escapeLike escapa los comodines de LIKE ('%', '_') y la barra de escape en un literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
