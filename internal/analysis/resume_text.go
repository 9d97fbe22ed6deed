package analysis

import (
	"sort"
	"strings"
)

// resumeSections are the section keys considered during flattening and
// format scoring, in stable iteration order.
var resumeSections = []string{
	"education", "skills", "projects", "experience",
	"internships", "certifications", "achievements",
}

// FlattenResume collects every leaf string in a resume's structured data
// into a single text blob. Sections are expected to be lists of records;
// string and list-of-string field values contribute, nested structures are
// stripped to their leaf strings, and mistyped values are treated as absent.
func FlattenResume(data map[string]any) string {
	var parts []string

	if personal, ok := data["personal_info"].(map[string]any); ok {
		if name, ok := personal["name"].(string); ok {
			parts = append(parts, name)
		}
	}

	for _, section := range resumeSections {
		items, ok := data[section].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			parts = append(parts, leafStrings(record)...)
		}
	}

	if role, ok := data["target_job_role"].(string); ok && role != "" {
		parts = append(parts, role)
	}
	if generated, ok := data["generated_content"].(string); ok && generated != "" {
		parts = append(parts, generated)
	}

	return strings.Join(parts, " ")
}

// leafStrings extracts string and []string-ish values from a record in
// sorted key order so flattening is deterministic.
func leafStrings(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		switch v := record[k].(type) {
		case string:
			out = append(out, v)
		case []any:
			for _, elem := range v {
				if s, ok := elem.(string); ok {
					out = append(out, s)
				}
			}
		case []string:
			out = append(out, v...)
		}
	}
	return out
}

// sectionPresent reports whether a resume section holds at least one entry.
func sectionPresent(data map[string]any, section string) bool {
	switch v := data[section].(type) {
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case string:
		return v != ""
	case nil:
		return false
	default:
		return false
	}
}
