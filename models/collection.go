package models

// CollectionKind names one of the per-user item collections.
type CollectionKind string

const (
	// Favourites holds items the user explicitly bookmarked.
	Favourites CollectionKind = "favourites"
	// History holds items the user has looked at.
	History CollectionKind = "history"
)

// String implements fmt.Stringer.
func (k CollectionKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known collection kinds.
func (k CollectionKind) Valid() bool {
	return k == Favourites || k == History
}

// Collection is an ordered list of item identifiers, oldest first.
type Collection []string

// Contains reports whether itemID is present in the collection.
func (c Collection) Contains(itemID string) bool {
	for _, id := range c {
		if id == itemID {
			return true
		}
	}
	return false
}
