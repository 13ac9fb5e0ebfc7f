package hog

// Merge combines the entries of several decoded inputs in the order given.
// When two entries share a lowercase name the later one replaces the earlier
// one in place, so the result keeps first-seen positions with last-seen data.
func Merge(results ...*Result) []Entry {
	var merged []Entry
	positions := make(map[string]int)

	for _, r := range results {
		if r == nil {
			continue
		}
		for _, e := range r.Entries {
			key := e.Key()
			if i, exists := positions[key]; exists {
				merged[i] = e
				continue
			}
			positions[key] = len(merged)
			merged = append(merged, e)
		}
	}

	return merged
}
