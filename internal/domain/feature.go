package domain

// Represents a single hiking destination loaded from the static feature collection.
// Features are immutable once loaded.
type Feature struct {
	Title       string
	Miles       string
	Description string
	Coordinates Coordinates
}
