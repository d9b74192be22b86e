package extract

import "sort"

// Pair couples a match with its located comment, ready for assembly.
type Pair struct {
	Match   Match
	Comment string
}

// Assemble turns (match, comment) pairs into the final ordered records.
//
// Ordering is by the match's start offset ascending, i.e. document order,
// regardless of pattern-list order: a later-listed pattern that matched
// earlier text sorts first. The sort is stable so equal offsets keep their
// arrival order.
//
// Two matches with identical (label, value) collapse into one record keeping
// the first occurrence's comment; every other match surfaces as a record.
// Indices are assigned 1..n after ordering and deduplication.
func Assemble(pairs []Pair) []Record {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Match.Start < sorted[j].Match.Start
	})

	type factKey struct {
		label string
		value string
	}

	records := make([]Record, 0, len(sorted))
	seen := make(map[factKey]bool, len(sorted))
	for _, p := range sorted {
		k := factKey{label: p.Match.Label, value: p.Match.Value}
		if seen[k] {
			continue
		}
		seen[k] = true
		records = append(records, Record{
			Index:   len(records) + 1,
			Key:     p.Match.Label,
			Value:   p.Match.Value,
			Comment: p.Comment,
		})
	}
	return records
}
