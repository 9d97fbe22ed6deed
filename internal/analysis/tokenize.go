// Package analysis scores resumes against job descriptions using TF-IDF
// cosine similarity over a two-document corpus.
package analysis

import "strings"

// stopWords are common English function words excluded from keyword analysis.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true, "by": true, "from": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "shall": true,
	"can": true, "this": true, "that": true, "these": true, "those": true,
	"i": true, "me": true, "my": true, "we": true, "our": true, "you": true,
	"your": true, "he": true, "she": true, "it": true, "they": true,
	"them": true, "their": true, "what": true, "which": true, "who": true,
	"whom": true, "not": true, "no": true, "nor": true, "as": true,
	"if": true, "then": true, "else": true, "when": true, "up": true,
	"out": true, "about": true, "into": true, "over": true, "after": true,
	"before": true, "between": true, "under": true, "again": true,
	"further": true, "than": true, "once": true, "here": true, "there": true,
	"all": true, "each": true, "every": true, "both": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "own": true, "same": true, "so": true, "very": true,
	"just": true, "because": true, "also": true,
}

// Tokenize splits text into lowercase word tokens, dropping punctuation
// (except + and #, which carry meaning in skill names like "c++" and "c#"),
// stop words, and single-character tokens. Token order follows input order.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) > 1 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
