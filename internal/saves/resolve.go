package saves

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrOutOfRange is returned when a position is outside 1..len(list).
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned for malformed range tokens.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidIndex is returned when an index token is not a number.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrNotFound is returned when no save matches a name.
	ErrNotFound = errors.New("save not found")
	// ErrAmbiguous is returned when a name matches several saves.
	ErrAmbiguous = errors.New("ambiguous save name")
	// ErrInvalidName is returned by ValidateName.
	ErrInvalidName = errors.New("invalid save name")
	// ErrExists is returned when creating a save whose name is taken.
	ErrExists = errors.New("save already exists")
)

// RangeSep separates the two ends of a range token.
const RangeSep = ".."

// ResolveIndex returns the save at the 1-based position in token. An empty
// token selects the last (most recent) save.
func ResolveIndex(list []Save, token string) (Save, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		if len(list) == 0 {
			return Save{}, fmt.Errorf("%w: there are no saves", ErrOutOfRange)
		}
		return list[len(list)-1], nil
	}

	n, err := parsePosition(token)
	if err != nil {
		return Save{}, err
	}
	if err := checkBound(list, n); err != nil {
		return Save{}, err
	}
	return list[n-1], nil
}

// ResolveRange returns the saves addressed by token: a single index, a
// "start..end" range where a missing start means 1 and a missing end means
// len(list), or a save name (see Resolve).
func ResolveRange(list []Save, token string) ([]Save, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidRange)
	}

	left, right, isRange := strings.Cut(token, RangeSep)
	if !isRange {
		if isNumber(token) {
			s, err := ResolveIndex(list, token)
			if err != nil {
				return nil, err
			}
			return []Save{s}, nil
		}
		s, err := Resolve(list, token)
		if err != nil {
			return nil, err
		}
		return []Save{s}, nil
	}

	start, err := rangeEnd(left, 1)
	if err != nil {
		return nil, rangeError(token, err)
	}
	end, err := rangeEnd(right, len(list))
	if err != nil {
		return nil, rangeError(token, err)
	}

	if err := checkBound(list, start); err != nil {
		return nil, err
	}
	if err := checkBound(list, end); err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: %q starts after it ends", ErrInvalidRange, token)
	}
	return slices.Clone(list[start-1 : end]), nil
}

// Resolve returns the save addressed by token: an index (see ResolveIndex),
// an exact name, a case-insensitive name, or the single save whose name
// fuzzy-matches token. Numeric tokens are always indices.
func Resolve(list []Save, token string) (Save, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ResolveIndex(list, token)
	}
	if isNumber(token) {
		return ResolveIndex(list, token)
	}

	for _, s := range list {
		if s.Name == token {
			return s, nil
		}
	}
	var folded []Save
	for _, s := range list {
		if strings.EqualFold(s.Name, token) {
			folded = append(folded, s)
		}
	}
	if len(folded) == 1 {
		return folded[0], nil
	}

	matches := fuzzy.FindFrom(token, names(list))
	switch len(matches) {
	case 0:
		return Save{}, fmt.Errorf("%w: %q", ErrNotFound, token)
	case 1:
		return list[matches[0].Index], nil
	}

	candidates := make([]string, len(matches))
	for i, m := range matches {
		candidates[i] = m.Str
	}
	return Save{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguous, token, strings.Join(candidates, ", "))
}

// Position returns the 1-based position of the save at path, or 0.
func Position(list []Save, path string) int {
	for i, s := range list {
		if s.Path == path {
			return i + 1
		}
	}
	return 0
}

// IsCurrent reports whether save has the same size and file count as the
// live save. current may be nil when there is no live save.
func IsCurrent(save Save, current *Save) bool {
	return current != nil && current.Stat == save.Stat
}

// FindCurrent returns the position of the first save that IsCurrent, or 0.
func FindCurrent(list []Save, current *Save) int {
	for i, s := range list {
		if IsCurrent(s, current) {
			return i + 1
		}
	}
	return 0
}

func checkBound(list []Save, n int) error {
	if n < 1 || n > len(list) {
		if len(list) == 0 {
			return fmt.Errorf("%w: %d (there are no saves)", ErrOutOfRange, n)
		}
		return fmt.Errorf("%w: %d (valid: 1..%d)", ErrOutOfRange, n, len(list))
	}
	return nil
}

func rangeEnd(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return parsePosition(s)
}

func rangeError(token string, err error) error {
	if errors.Is(err, ErrOutOfRange) {
		return err
	}
	return fmt.Errorf("%w: %q", ErrInvalidRange, token)
}

// isNumber reports whether s is an optionally signed run of ASCII digits.
// Such tokens always address by position, never by name.
func isNumber(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parsePosition parses a 1-based position. Numbers too large for an int
// cannot address any save and are out of range.
func parsePosition(s string) (int, error) {
	if !isNumber(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return n, nil
}

// names implements fuzzy.Source over save names.
type names []Save

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }
