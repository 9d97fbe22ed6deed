package generate

// Accessors for the loosely structured resume data map. Resume sections are
// stored as raw JSON, so every read tolerates missing keys and wrong shapes.

func mapField(data map[string]any, key string) map[string]any {
	if m, ok := data[key].(map[string]any); ok {
		return m
	}
	return nil
}

func sliceField(data map[string]any, key string) []any {
	switch v := data[key].(type) {
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func stringFieldOr(m map[string]any, key, fallback string) string {
	if s := stringField(m, key); s != "" {
		return s
	}
	return fallback
}

func stringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// flatSkills collects the items of every skill group in order.
func flatSkills(data map[string]any) []string {
	var skills []string
	for _, group := range sliceField(data, "skills") {
		if m, ok := group.(map[string]any); ok {
			skills = append(skills, stringSlice(m["items"])...)
		}
	}
	return skills
}
