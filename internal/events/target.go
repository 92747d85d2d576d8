package events

import (
	"fmt"
	"strconv"
)

// Part identifies which piece of the list a click landed on.
type Part int

const (
	// PartOther is any element inside the list that is not an item or its delete control.
	PartOther Part = iota
	// PartItem is the body of a list item.
	PartItem
	// PartDelete is the delete control trailing a list item.
	PartDelete
)

func (p Part) String() string {
	switch p {
	case PartItem:
		return "item"
	case PartDelete:
		return "delete"
	default:
		return "other"
	}
}

// ParsePart maps the part name sent by the page. Unknown names are PartOther.
func ParsePart(s string) Part {
	switch s {
	case "item":
		return PartItem
	case "delete":
		return PartDelete
	default:
		return PartOther
	}
}

// Target is the resolved origin of a click inside the list: which item, and
// whether the item body or its delete control was hit.
type Target struct {
	Part  Part
	Index int
}

// ParseTarget builds a Target from the part name and item index sent by the
// page. A click that does not name an item with a valid index resolves to
// PartOther.
func ParseTarget(part, index string) Target {
	p := ParsePart(part)
	if p == PartOther {
		return Target{Part: PartOther}
	}

	i, err := strconv.Atoi(index)
	if err != nil {
		return Target{Part: PartOther}
	}
	return Target{Part: p, Index: i}
}

func (t Target) String() string {
	if t.Part == PartOther {
		return t.Part.String()
	}
	return fmt.Sprintf("%s[%d]", t.Part, t.Index)
}
