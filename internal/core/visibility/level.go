package visibility

import "fmt"

// Level is a freet's visibility setting. Levels are stored as small
// integers but the admission rules only ever compare them for equality;
// the numeric values carry no "more visible than" ordering.
type Level int

const (
	Draft     Level = 0
	Anonymous Level = 1
	Private   Level = 2
	Public    Level = 3
)

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	switch l {
	case Draft, Anonymous, Private, Public:
		return true
	}
	return false
}

func (l Level) String() string {
	switch l {
	case Draft:
		return "draft"
	case Anonymous:
		return "anonymous"
	case Private:
		return "private"
	case Public:
		return "public"
	}
	return fmt.Sprintf("visibility(%d)", int(l))
}

// ParseLevel maps a level name (as accepted by the HTTP layer) to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "draft":
		return Draft, nil
	case "anonymous":
		return Anonymous, nil
	case "private":
		return Private, nil
	case "public":
		return Public, nil
	}
	return 0, fmt.Errorf("unknown visibility level %q", s)
}
