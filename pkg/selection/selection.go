// Package selection parses human-entered index selections like
// "1, 3, 5-10" into index slices and formats them back.
package selection

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MaxRangeSize is the largest number of entries a single range may expand to
const MaxRangeSize = 10000

var (
	rangePattern  = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)
	singlePattern = regexp.MustCompile(`^\s*(\d+)\s*$`)
)

// Parse converts a comma-separated selection of numbers and ranges into a
// sorted slice of unique indices. Reversed ranges are normalized, empty
// chunks are skipped, and a blank input yields an empty selection. A chunk
// that is neither a number nor a range is an error.
func Parse(input string) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := rangePattern.FindStringSubmatch(part); m != nil {
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				return nil, invalidChunk(part)
			}
			if err := addRange(seen, start, end); err != nil {
				return nil, err
			}
			continue
		}

		if m := singlePattern.FindStringSubmatch(part); m != nil {
			value, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, invalidChunk(part)
			}
			seen[value] = struct{}{}
			continue
		}

		return nil, invalidChunk(part)
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	slices.Sort(indices)
	return indices, nil
}

// ParseSafe parses like Parse but swallows errors, returning an empty
// selection instead
func ParseSafe(input string) []int {
	indices, err := Parse(input)
	if err != nil {
		return nil
	}
	return indices
}

// ParseWithBounds parses the input and keeps only indices inside
// [minIndex, maxIndex). Malformed input yields an empty selection.
func ParseWithBounds(input string, minIndex, maxIndex int) []int {
	var filtered []int
	for _, idx := range ParseSafe(input) {
		if idx >= minIndex && idx < maxIndex {
			filtered = append(filtered, idx)
		}
	}
	return filtered
}

// IsValid reports whether the input parses to a non-empty selection
func IsValid(input string) bool {
	indices, err := Parse(input)
	return err == nil && len(indices) > 0
}

// Format renders indices as a selection string, grouping runs of three or
// more consecutive values into ranges. Duplicates are dropped and the
// output is sorted.
func Format(indices []int) string {
	if len(indices) == 0 {
		return ""
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var sb strings.Builder
	rangeStart := sorted[0]
	rangeEnd := rangeStart

	for _, current := range sorted[1:] {
		if current == rangeEnd+1 {
			rangeEnd = current
			continue
		}
		appendRange(&sb, rangeStart, rangeEnd)
		rangeStart = current
		rangeEnd = current
	}
	appendRange(&sb, rangeStart, rangeEnd)

	return sb.String()
}

// Range returns the indices in [start, end)
func Range(start, end int) []int {
	if start >= end {
		return nil
	}
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	return indices
}

// FormatDescription returns a usage hint for selection strings
func FormatDescription() string {
	return "indices are comma-separated numbers or ranges, for example: 5 or 1, 2, 3 or 5-10 or 1, 3, 5-10"
}

func invalidChunk(part string) error {
	return fmt.Errorf("invalid index format %q: expected a number or a range like 5 or 5-10", part)
}

func addRange(seen map[int]struct{}, start, end int) error {
	if start > end {
		start, end = end, start
	}
	if end-start+1 > MaxRangeSize {
		return fmt.Errorf("range %d-%d too large: at most %d entries allowed", start, end, MaxRangeSize)
	}
	for i := start; i <= end; i++ {
		seen[i] = struct{}{}
	}
	return nil
}

func appendRange(sb *strings.Builder, start, end int) {
	if sb.Len() > 0 {
		sb.WriteString(", ")
	}
	switch {
	case start == end:
		fmt.Fprintf(sb, "%d", start)
	case end == start+1:
		fmt.Fprintf(sb, "%d, %d", start, end)
	default:
		fmt.Fprintf(sb, "%d-%d", start, end)
	}
}
