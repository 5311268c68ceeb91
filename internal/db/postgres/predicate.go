package postgres

import (
	"fmt"
	"strings"

	"Fritter/internal/core/visibility"

	"github.com/lib/pq"
)

// compilePredicate translates a visibility predicate into a parameterized
// SQL condition over the freets table. Every value travels as a query
// parameter; the SQL text itself is assembled only from fixed fragments,
// so nothing caller-controlled is ever interpolated.
func compilePredicate(pred visibility.Predicate, args *[]interface{}) (string, error) {
	switch p := pred.(type) {
	case visibility.LevelIs:
		*args = append(*args, int(p.Level))
		return fmt.Sprintf("f.visibility = $%d", len(*args)), nil

	case visibility.AuthorIs:
		*args = append(*args, p.AuthorID)
		return fmt.Sprintf("f.author_id = $%d", len(*args)), nil

	case visibility.AuthorIn:
		if len(p.AuthorIDs) == 0 {
			// Membership in the empty set admits nothing.
			return "FALSE", nil
		}
		*args = append(*args, pq.Array(p.AuthorIDs))
		return fmt.Sprintf("f.author_id = ANY($%d)", len(*args)), nil

	case visibility.And:
		return compileJunction(p.Preds, " AND ", "TRUE", args)

	case visibility.Or:
		return compileJunction(p.Preds, " OR ", "FALSE", args)
	}

	return "", fmt.Errorf("unsupported predicate type %T", pred)
}

// compileJunction compiles an AND/OR node. empty is the junction's
// identity: an empty conjunction admits everything, an empty disjunction
// admits nothing.
func compileJunction(preds []visibility.Predicate, op, empty string, args *[]interface{}) (string, error) {
	if len(preds) == 0 {
		return empty, nil
	}

	parts := make([]string, 0, len(preds))
	for _, sub := range preds {
		cond, err := compilePredicate(sub, args)
		if err != nil {
			return "", err
		}
		parts = append(parts, cond)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, op) + ")", nil
}
