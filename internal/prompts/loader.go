// Package prompts holds the LLM generation templates, embedded at compile
// time so they can be tuned without touching generation code.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed generation.json
var generationFile []byte

var (
	loadOnce  sync.Once
	templates map[string]string
	loadErr   error
)

func load() {
	loadOnce.Do(func() {
		if err := json.Unmarshal(generationFile, &templates); err != nil {
			loadErr = fmt.Errorf("failed to parse generation templates: %w", err)
		}
	})
}

// Template returns the generation template stored under key.
func Template(key string) (string, error) {
	load()
	if loadErr != nil {
		return "", loadErr
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("generation template %q not found", key)
	}
	return template, nil
}

// MustTemplate is Template for keys that must exist; it panics on failure.
func MustTemplate(key string) string {
	template, err := Template(key)
	if err != nil {
		panic(err)
	}
	return template
}

// Format substitutes {{.Key}} placeholders in a template with values from
// data. Placeholders without a matching key are left in place.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Keys returns the available template keys, sorted.
func Keys() ([]string, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
