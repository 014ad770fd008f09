// Package citation resolves inline citation markers in generated answers
// against a deduplicated list of sources.
package citation

import "github.com/futig/querysphere-backend/internal/entity"

// IndexMap maps a position in the original source list to a position in the
// deduplicated list. It is total over the original list.
type IndexMap []int

// Resolve returns the deduplicated position for original position i.
func (m IndexMap) Resolve(i int) (int, bool) {
	if i < 0 || i >= len(m) {
		return 0, false
	}
	return m[i], true
}

// Deduplicated is the result of collapsing sources that share a URL.
type Deduplicated struct {
	Filtered []entity.Source
	IndexMap IndexMap
}

// Deduplicate keeps the first source seen for every URL and maps each
// original position to the position of that first occurrence.
func Deduplicate(sources []entity.Source) Deduplicated {
	filtered := make([]entity.Source, 0, len(sources))
	indexMap := make(IndexMap, len(sources))
	firstSeen := make(map[string]int, len(sources))

	for i, src := range sources {
		if pos, ok := firstSeen[src.URL]; ok {
			indexMap[i] = pos
			continue
		}

		firstSeen[src.URL] = len(filtered)
		indexMap[i] = len(filtered)
		filtered = append(filtered, src)
	}

	return Deduplicated{
		Filtered: filtered,
		IndexMap: indexMap,
	}
}
