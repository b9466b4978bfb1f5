package index

import "fmt"

// Tag marks the generation in which a point has been stained.
type Tag int

const (
	TagPrimary            Tag = iota + 1 // A marked input point.
	TagConnector                         // A point on a straight run between two primary points.
	TagSecondaryConnector                // A point on a straight run between two connector points.
)

func (t Tag) String() string {
	switch t {
	case TagPrimary:
		return "primary"
	case TagConnector:
		return "connector"
	case TagSecondaryConnector:
		return "secondary-connector"
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Symbol returns the single character used when rendering a point with this tag.
func (t Tag) Symbol() rune {
	switch t {
	case TagPrimary:
		return '#'
	case TagConnector:
		return 'X'
	case TagSecondaryConnector:
		return 'o'
	}
	return '?'
}
