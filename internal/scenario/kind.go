package scenario

import "fmt"

// Kind selects the matcher call a scenario times.
type Kind int

const (
	// IsMatch checks whether the corpus contains a match.
	IsMatch Kind = iota
	// Search locates the leftmost match.
	Search
	// FindAll enumerates every non-overlapping match.
	FindAll
)

func (k Kind) String() string {
	switch k {
	case IsMatch:
		return "is_match"
	case Search:
		return "search"
	case FindAll:
		return "find_all"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
