package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var errEmptyUpdate = errors.New("update has no columns to set")

// updateBuilder assembles a single parameterized UPDATE from the columns a
// caller actually supplied, so absent fields keep their stored value.
type updateBuilder struct {
	table string
	sets  []string
	args  []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set appends `"column" = $n`.
func (b *updateBuilder) Set(column string, value any) *updateBuilder {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(column), len(b.args)))
	return b
}

// Build renders the statement filtered by idColumn = id, returning the given columns.
func (b *updateBuilder) Build(idColumn string, id any, returning ...string) (string, []any, error) {
	if len(b.sets) == 0 {
		return "", nil, errEmptyUpdate
	}

	args := make([]any, 0, len(b.args)+1)
	args = append(args, b.args...)
	args = append(args, id)

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(pq.QuoteIdentifier(b.table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	fmt.Fprintf(&sb, " WHERE %s = $%d", pq.QuoteIdentifier(idColumn), len(args))

	if len(returning) > 0 {
		quoted := make([]string, len(returning))
		for i, col := range returning {
			quoted[i] = pq.QuoteIdentifier(col)
		}
		sb.WriteString(" RETURNING ")
		sb.WriteString(strings.Join(quoted, ", "))
	}

	return sb.String(), args, nil
}
