package query

// Exists builds a single-row EXISTS probe on table.column = value.
func Exists(table, column Ident, value any) (string, []any) {
	var b Builder
	b.SQL("SELECT EXISTS(SELECT 1 FROM ").Ident(table).
		SQL(" WHERE ").Ident(column).SQL(" = ").Arg(value).
		SQL(")")
	return b.Build()
}
