package vectorizer

import (
	"errors"
	"math"
	"sort"
	"strings"

	"myShopRecs/domain"
)

// ErrNotFitted is returned when Transform is called before Fit. Callers must
// treat it as fatal; scoring on an unfitted vectorizer would silently produce
// degenerate vectors.
var ErrNotFitted = errors.New("vectorizer is not fitted")

const defaultMaxFeatures = 100

// ProductVectorizer turns catalog items into dense unit-norm feature vectors:
// TF-IDF over name+description (uni+bigrams, capped vocabulary) concatenated
// with one-hot encoded brand and category. The whole fit is deterministic:
// vocabulary selection breaks frequency ties on the term itself and encoder
// vocabularies are sorted.
type ProductVectorizer struct {
	maxFeatures int

	terms      []string
	termIdx    map[string]int
	idf        []float64
	brands     []string
	brandIdx   map[string]int
	categories []string
	catIdx     map[string]int

	fitted bool
}

func New() *ProductVectorizer {
	return &ProductVectorizer{maxFeatures: defaultMaxFeatures}
}

func NewWithMaxFeatures(maxFeatures int) *ProductVectorizer {
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}
	return &ProductVectorizer{maxFeatures: maxFeatures}
}

// Dim is the vector dimensionality after fitting.
func (v *ProductVectorizer) Dim() int {
	return len(v.terms) + len(v.brands) + len(v.categories)
}

// FitTransform fits the vocabulary and encoders on the catalog and returns
// one unit-norm vector per item, positionally aligned with items.
func (v *ProductVectorizer) FitTransform(items []domain.Item) ([][]float64, error) {
	docs := make([][]string, len(items))
	docFreq := make(map[string]int)
	termCount := make(map[string]int)

	for i, it := range items {
		terms := extractTerms(it.ProductName + " " + it.Description)
		docs[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			termCount[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	// vocabulary: most frequent terms first, ties broken on the term so two
	// fits over the same catalog always agree
	all := make([]string, 0, len(termCount))
	for t := range termCount {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if termCount[all[i]] != termCount[all[j]] {
			return termCount[all[i]] > termCount[all[j]]
		}
		return all[i] < all[j]
	})
	if len(all) > v.maxFeatures {
		all = all[:v.maxFeatures]
	}
	sort.Strings(all)

	v.terms = all
	v.termIdx = make(map[string]int, len(all))
	for i, t := range all {
		v.termIdx[t] = i
	}

	// smoothed idf, same shape sklearn uses
	n := float64(len(items))
	v.idf = make([]float64, len(all))
	for i, t := range all {
		df := float64(docFreq[t])
		v.idf[i] = math.Log((1+n)/(1+df)) + 1
	}

	v.brands, v.brandIdx = fitEncoder(items, func(it domain.Item) string { return it.Brand })
	v.categories, v.catIdx = fitEncoder(items, func(it domain.Item) string { return it.Category })

	v.fitted = true

	out := make([][]float64, len(items))
	for i, it := range items {
		out[i] = v.vectorize(docs[i], it)
	}
	return out, nil
}

// Transform vectorizes items against the fitted vocabulary. Unknown brands
// and categories encode to all zeros.
func (v *ProductVectorizer) Transform(items []domain.Item) ([][]float64, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	out := make([][]float64, len(items))
	for i, it := range items {
		terms := extractTerms(it.ProductName + " " + it.Description)
		out[i] = v.vectorize(terms, it)
	}
	return out, nil
}

func (v *ProductVectorizer) vectorize(terms []string, it domain.Item) []float64 {
	vec := make([]float64, v.Dim())

	// tf-idf block, l2-normalized on its own before concatenation
	for _, t := range terms {
		if idx, ok := v.termIdx[t]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	normalizeRange(vec, 0, len(v.terms))

	if idx, ok := v.brandIdx[it.Brand]; ok {
		vec[len(v.terms)+idx] = 1
	}
	if idx, ok := v.catIdx[it.Category]; ok {
		vec[len(v.terms)+len(v.brands)+idx] = 1
	}

	normalizeRange(vec, 0, len(vec))
	return vec
}

func fitEncoder(items []domain.Item, get func(domain.Item) string) ([]string, map[string]int) {
	uniq := make(map[string]struct{})
	for _, it := range items {
		uniq[get(it)] = struct{}{}
	}

	values := make([]string, 0, len(uniq))
	for val := range uniq {
		values = append(values, val)
	}
	sort.Strings(values)

	idx := make(map[string]int, len(values))
	for i, val := range values {
		idx[val] = i
	}
	return values, idx
}

// normalizeRange scales vec[from:to] to unit length; a zero segment is left
// untouched instead of dividing by zero.
func normalizeRange(vec []float64, from, to int) {
	var sum float64
	for i := from; i < to; i++ {
		sum += vec[i] * vec[i]
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := from; i < to; i++ {
		vec[i] /= norm
	}
}

// extractTerms lowercases, tokenizes, drops stop words and single-character
// tokens, and emits unigrams plus adjacent bigrams.
func extractTerms(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 2 {
			tok := b.String()
			if !isStopWord(tok) {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
	}
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
