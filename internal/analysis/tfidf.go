package analysis

import "math"

// termFrequency returns per-token frequency normalized by document length.
// Duplicate tokens matter here, unlike the document-frequency step.
func termFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	tf := make(map[string]float64, len(counts))
	for t, c := range counts {
		tf[t] = float64(c) / total
	}
	return tf
}

// inverseDocumentFrequency computes smoothed IDF over the fixed two-document
// corpus {resume, job description}: idf(t) = ln((N+1)/(df+1)) + 1 with N=2.
// Tokens shared by both documents get a lower weight than one-sided tokens.
func inverseDocumentFrequency(doc1, doc2 []string) map[string]float64 {
	set1 := toSet(doc1)
	set2 := toSet(doc2)

	idf := make(map[string]float64, len(set1)+len(set2))
	for _, set := range []map[string]bool{set1, set2} {
		for t := range set {
			if _, done := idf[t]; done {
				continue
			}
			df := 0
			if set1[t] {
				df++
			}
			if set2[t] {
				df++
			}
			idf[t] = math.Log(3.0/float64(df+1)) + 1
		}
	}
	return idf
}

// cosineSimilarity measures directional similarity between two weight
// vectors. A zero magnitude is treated as 1 so the result degenerates to 0
// instead of dividing by zero.
func cosineSimilarity(vec1, vec2 map[string]float64) float64 {
	var dot float64
	for t, w1 := range vec1 {
		if w2, ok := vec2[t]; ok {
			dot += w1 * w2
		}
	}

	mag1 := magnitude(vec1)
	mag2 := magnitude(vec2)
	if mag1 == 0 {
		mag1 = 1
	}
	if mag2 == 0 {
		mag2 = 1
	}
	return dot / (mag1 * mag2)
}

func magnitude(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
