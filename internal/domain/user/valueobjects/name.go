package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxNameLength = 100

// Name is a user's display name. Any printable characters are accepted.
type Name struct {
	value string
}

func NewName(value string) (*Name, error) {
	normalized := strings.Join(strings.Fields(value), " ")

	if normalized == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	if utf8.RuneCountInString(normalized) > maxNameLength {
		return nil, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}

	for _, r := range normalized {
		if !unicode.IsPrint(r) {
			return nil, fmt.Errorf("name contains invalid characters")
		}
	}

	return &Name{value: normalized}, nil
}

func (n *Name) String() string {
	return n.value
}

func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.value == other.value
}
