package saves

import (
	"fmt"
	"slices"
	"strings"
)

// allowedPunct are the non-alphanumeric characters a save name may contain.
const allowedPunct = "( )=+-"

// ValidateName checks that name is a usable save directory name: non-blank
// and made of ASCII letters, digits and the characters "( )=+-".
// The error lists every forbidden character once, in sorted order.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	var forbidden []rune
	for _, r := range name {
		if isAllowed(r) || slices.Contains(forbidden, r) {
			continue
		}
		forbidden = append(forbidden, r)
	}
	if len(forbidden) == 0 {
		return nil
	}
	slices.Sort(forbidden)
	return fmt.Errorf("%w: forbidden characters [%s]", ErrInvalidName, string(forbidden))
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(allowedPunct, r)
}
