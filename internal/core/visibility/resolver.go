package visibility

// Viewer is the identity a listing query is evaluated for. A zero Viewer
// (Anonymous=true) represents a request with no identity at all.
type Viewer struct {
	Anonymous bool
	// SelfID is the viewer's own user id; meaningless when Anonymous.
	SelfID int64
	// FriendIDs are the viewer's resolved friend user ids. Callers may or
	// may not have already included SelfID; the resolver unions it in
	// either way, so a viewer always sees their own private freets.
	FriendIDs []int64
}

// admittedAuthors is FriendIDs ∪ {SelfID}. Self-inclusion is a deliberate
// rule, not a side effect of how the friend set was built.
func (v Viewer) admittedAuthors() []int64 {
	for _, id := range v.FriendIDs {
		if id == v.SelfID {
			return v.FriendIDs
		}
	}
	authors := make([]int64, 0, len(v.FriendIDs)+1)
	authors = append(authors, v.FriendIDs...)
	return append(authors, v.SelfID)
}

// FeedPredicate builds the admission condition for the all-freets feed.
//
// Anonymous viewers see public and anonymous-level freets. Identified
// viewers additionally see private freets whose author is in their friend
// set (or themselves). Drafts are admitted by neither path; they are only
// reachable through a direct lookup by id.
func FeedPredicate(v Viewer) Predicate {
	if v.Anonymous {
		return Or{Preds: []Predicate{
			LevelIs{Level: Public},
			LevelIs{Level: Anonymous},
		}}
	}
	return Or{Preds: []Predicate{
		LevelIs{Level: Public},
		And{Preds: []Predicate{
			LevelIs{Level: Private},
			AuthorIn{AuthorIDs: v.admittedAuthors()},
		}},
		LevelIs{Level: Anonymous},
	}}
}

// AuthorPredicate builds the admission condition for the freets-by-author
// listing. The feed condition is conjoined with an author equality, and
// the anonymous path narrows to public freets only: an author's
// anonymous-level freets appear in the global feed but not on their page.
// That asymmetry is part of the contract.
func AuthorPredicate(v Viewer, authorID int64) Predicate {
	if v.Anonymous {
		return And{Preds: []Predicate{
			AuthorIs{AuthorID: authorID},
			LevelIs{Level: Public},
		}}
	}
	return And{Preds: []Predicate{
		AuthorIs{AuthorID: authorID},
		Or{Preds: []Predicate{
			LevelIs{Level: Public},
			And{Preds: []Predicate{
				LevelIs{Level: Private},
				AuthorIn{AuthorIDs: v.admittedAuthors()},
			}},
			LevelIs{Level: Anonymous},
		}},
	}}
}
