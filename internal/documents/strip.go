package documents

// StripNils walks a metadata tree and removes Go nils so they never reach the
// persisted JSON. Map entries whose value is nil are omitted from their
// parent entirely. Explicit JSON nulls carried inside json.RawMessage values
// pass through untouched since raw bytes are not walked.
func StripNils(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			stripped := StripNils(item)
			if stripped == nil {
				continue
			}
			out[k] = stripped
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, StripNils(item))
		}
		return out
	default:
		return v
	}
}
