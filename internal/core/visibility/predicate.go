package visibility

// Predicate is a store-agnostic admission condition over a single freet's
// author and visibility fields. Store adapters translate the expression
// tree into their own query language (see the postgres repo's compiler);
// Matches evaluates it in-process so tests and in-memory stores share the
// exact same decision logic.
type Predicate interface {
	// Matches reports whether a freet with the given author and level
	// satisfies the condition.
	Matches(authorID int64, level Level) bool
}

// LevelIs admits freets whose visibility equals Level.
type LevelIs struct {
	Level Level
}

func (p LevelIs) Matches(_ int64, level Level) bool {
	return level == p.Level
}

// AuthorIs admits freets written by exactly one author.
type AuthorIs struct {
	AuthorID int64
}

func (p AuthorIs) Matches(authorID int64, _ Level) bool {
	return authorID == p.AuthorID
}

// AuthorIn admits freets whose author is in a set of ids.
type AuthorIn struct {
	AuthorIDs []int64
}

func (p AuthorIn) Matches(authorID int64, _ Level) bool {
	for _, id := range p.AuthorIDs {
		if id == authorID {
			return true
		}
	}
	return false
}

// And admits freets satisfying every sub-predicate.
type And struct {
	Preds []Predicate
}

func (p And) Matches(authorID int64, level Level) bool {
	for _, sub := range p.Preds {
		if !sub.Matches(authorID, level) {
			return false
		}
	}
	return true
}

// Or admits freets satisfying at least one sub-predicate.
type Or struct {
	Preds []Predicate
}

func (p Or) Matches(authorID int64, level Level) bool {
	for _, sub := range p.Preds {
		if sub.Matches(authorID, level) {
			return true
		}
	}
	return false
}
