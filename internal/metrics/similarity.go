// Package metrics scores how well a tailored resume matches a job
// posting. The lexical scorers are pure functions over normalized token
// sets; the embedding scorer asks the generation backend for vectors.
package metrics

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"

	"github.com/resumeflow/resumeflow/internal/llm"
)

// OverlapCoefficient is the size of the token-set intersection divided
// by the size of the smaller set. Either document empty scores 0.
func OverlapCoefficient(document1, document2 string) float64 {
	set1 := tokenSet(document1)
	set2 := tokenSet(document2)

	smaller := len(set1)
	if len(set2) < smaller {
		smaller = len(set2)
	}
	if smaller == 0 {
		return 0.0
	}
	return float64(intersectionSize(set1, set2)) / float64(smaller)
}

// JaccardSimilarity is the size of the token-set intersection divided by
// the size of the union. It never exceeds the overlap coefficient.
func JaccardSimilarity(document1, document2 string) float64 {
	set1 := tokenSet(document1)
	set2 := tokenSet(document2)

	intersection := intersectionSize(set1, set2)
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// CosineSimilarity is the cosine of the TF-IDF vectors of the two
// documents over their joint vocabulary. Inverse document frequency
// uses the standard smoothed form over the two-document corpus,
// idf = ln((1+n)/(1+df)) + 1, so terms appearing in only one document
// weigh more than terms both share.
func CosineSimilarity(document1, document2 string) float64 {
	freq1 := termFrequencies(NormalizeText(document1))
	freq2 := termFrequencies(NormalizeText(document2))
	if len(freq1) == 0 || len(freq2) == 0 {
		return 0.0
	}

	idf := func(term string) float64 {
		df := 1.0
		if _, ok := freq1[term]; ok {
			df++
		}
		if _, ok := freq2[term]; ok {
			df++
		}
		return math.Log(3.0/df) + 1.0
	}

	var dot, norm1, norm2 float64
	for term, count := range freq1 {
		weight := count * idf(term)
		norm1 += weight * weight
		if other, ok := freq2[term]; ok {
			dot += weight * other * idf(term)
		}
	}
	for term, count := range freq2 {
		weight := count * idf(term)
		norm2 += weight * weight
	}
	if dot == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}

// EmbeddingCosine scores two documents by the cosine of their embedding
// vectors.
func EmbeddingCosine(ctx context.Context, client llm.Client, document1, document2 string) (float64, error) {
	vectors, err := client.Embed(ctx, []string{document1, document2})
	if err != nil {
		return 0, fmt.Errorf("embedding documents: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("expected 2 embedding vectors, got %d", len(vectors))
	}
	return vectorCosine(vectors[0], vectors[1])
}

func vectorCosine(a, b []float32) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, fmt.Errorf("embedding vectors have mismatched dimensions: %d vs %d", len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// NormalizeText tokenizes text and returns the normalized word list:
// non-letters stripped from each token, lowercased, empties and
// stopwords dropped, and the rest stemmed.
func NormalizeText(text string) []string {
	tokens := strings.Fields(text)

	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		word := stripNonLetters(token)
		if word == "" {
			continue
		}
		word = strings.ToLower(word)
		if isStopword(word) {
			continue
		}
		words = append(words, english.Stem(word, false))
	}
	return words
}

func stripNonLetters(token string) string {
	var sb strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) && r < 128 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range NormalizeText(text) {
		set[word] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for word := range a {
		if _, ok := b[word]; ok {
			count++
		}
	}
	return count
}

func termFrequencies(words []string) map[string]float64 {
	freq := make(map[string]float64, len(words))
	for _, word := range words {
		freq[word]++
	}
	return freq
}
