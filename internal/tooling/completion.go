package tooling

// completionTable is built once at process start: the raw vocabulary
// deduplicated by label, source order preserved. Requests share the slice.
var completionTable = dedupeEntries(vocabulary())

// Completions returns the full completion vocabulary. Cursor context is
// deliberately ignored; every request gets the same slice in the same
// order. Callers must not mutate it.
func (a *API) Completions() []CompletionEntry {
	return completionTable
}

// CompletionCount reports the size of the deduplicated vocabulary.
func CompletionCount() int {
	return len(completionTable)
}

func dedupeEntries(entries []CompletionEntry) []CompletionEntry {
	seen := make(map[string]struct{}, len(entries))
	deduped := make([]CompletionEntry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Label]; dup {
			continue
		}
		seen[e.Label] = struct{}{}
		deduped = append(deduped, e)
	}
	return deduped
}
