package domain

// Like records one viewer's endorsement of one tattoo.
// A like is binary present/absent and is never edited in place.
type Like struct {
	TattooID  string `json:"tattooId"`
	Timestamp int64  `json:"timestamp"` // epoch millis at the moment of liking
}

// LikeSet is the ordered collection of one viewer's current likes.
// Storage is list-shaped but membership has set semantics: at most one
// Like per tattoo ID.
type LikeSet []Like

// Has reports whether the set contains a like for the given tattoo.
func (ls LikeSet) Has(tattooID string) bool {
	for _, l := range ls {
		if l.TattooID == tattooID {
			return true
		}
	}
	return false
}

// Without returns a copy of the set with any like for tattooID removed.
func (ls LikeSet) Without(tattooID string) LikeSet {
	out := make(LikeSet, 0, len(ls))
	for _, l := range ls {
		if l.TattooID != tattooID {
			out = append(out, l)
		}
	}
	return out
}

// With returns a copy of the set with a like for tattooID appended.
// Callers must check Has first; With does not deduplicate.
func (ls LikeSet) With(tattooID string) LikeSet {
	out := make(LikeSet, 0, len(ls)+1)
	out = append(out, ls...)
	out = append(out, Like{TattooID: tattooID, Timestamp: NowMillis()})
	return out
}

// TattooIDs returns the liked tattoo IDs in set order.
func (ls LikeSet) TattooIDs() []string {
	ids := make([]string, len(ls))
	for i, l := range ls {
		ids[i] = l.TattooID
	}
	return ids
}
