package format

import "fmt"

const unitBase = 1024

var units = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// Size formats a byte count with binary units.
func Size(n uint64) string {
	if n < unitBase {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	i := -1
	for value >= unitBase && i < len(units)-1 {
		value /= unitBase
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}

// Count formats a file count with the matching noun.
func Count(n uint64) string {
	return Plural(n, "file")
}

// Plural formats n with noun, adding an "s" unless n is one.
func Plural(n uint64, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
