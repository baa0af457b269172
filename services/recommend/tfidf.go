package recommend

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// errEmptyVocabulary is returned by Fit when no usable terms survive
// tokenization; callers degrade to an empty candidate list.
var errEmptyVocabulary = errors.New("recommend: empty vocabulary")

// stopWords is the english stop-word list applied during tokenization.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "all": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {}, "can": {}, "did": {},
	"do": {}, "does": {}, "doing": {}, "down": {}, "during": {}, "each": {},
	"few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "he": {}, "her": {}, "here": {}, "hers": {},
	"him": {}, "his": {}, "how": {}, "i": {}, "if": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "over": {}, "own": {}, "same": {},
	"she": {}, "so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"to": {}, "too": {}, "under": {}, "until": {}, "up": {}, "very": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "you": {}, "your": {}, "yours": {},
}

// Vector is an L2-normalized sparse term-weight vector keyed by
// vocabulary index.
type Vector map[int]float64

// Vectorizer builds a TF-IDF vector space over a corpus. A Vectorizer
// is a value fitted fresh from a supplied corpus per request; it is
// never shared or cached across requests.
type Vectorizer struct {
	vocab       map[string]int
	idf         []float64
	maxFeatures int
	ngramMax    int
	docCount    int
}

// NewVectorizer returns an unfitted vectorizer. ngramMax of 2 includes
// bigrams alongside unigrams.
func NewVectorizer(maxFeatures, ngramMax int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 5000
	}
	if ngramMax < 1 {
		ngramMax = 1
	}
	return &Vectorizer{maxFeatures: maxFeatures, ngramMax: ngramMax}
}

// Fit learns the vocabulary and inverse document frequencies from the
// corpus. It returns errEmptyVocabulary when the corpus produces no
// terms at all.
func (v *Vectorizer) Fit(corpus []string) error {
	type termStat struct {
		df    int
		count int
	}
	stats := make(map[string]*termStat)
	docs := 0
	for _, doc := range corpus {
		terms := v.terms(doc)
		if len(terms) == 0 {
			docs++
			continue
		}
		docs++
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			st, ok := stats[t]
			if !ok {
				st = &termStat{}
				stats[t] = st
			}
			st.count++
			if _, dup := seen[t]; !dup {
				st.df++
				seen[t] = struct{}{}
			}
		}
	}
	if len(stats) == 0 {
		return errEmptyVocabulary
	}

	// Keep the most frequent terms when the vocabulary overflows,
	// breaking ties alphabetically for determinism.
	terms := make([]string, 0, len(stats))
	for t := range stats {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if stats[terms[i]].count != stats[terms[j]].count {
			return stats[terms[i]].count > stats[terms[j]].count
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	v.docCount = docs
	for i, t := range terms {
		v.vocab[t] = i
		// Smoothed IDF so terms present in every document keep a
		// small positive weight.
		v.idf[i] = math.Log(float64(1+docs)/float64(1+stats[t].df)) + 1
	}
	return nil
}

// Transform maps a document into the fitted vector space. Terms outside
// the vocabulary are ignored; an all-unknown document yields an empty
// vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	if v.vocab == nil {
		return vec
	}
	for _, t := range v.terms(doc) {
		if idx, ok := v.vocab[t]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		inv := 1 / math.Sqrt(norm)
		for i, w := range vec {
			vec[i] = w * inv
		}
	}
	return vec
}

// terms tokenizes a document and expands n-grams up to ngramMax.
func (v *Vectorizer) terms(doc string) []string {
	tokens := tokenize(doc)
	if v.ngramMax < 2 || len(tokens) < 2 {
		return tokens
	}
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for n := 2; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// tokenize lowercases, splits on non-alphanumeric runes and drops
// single-character tokens and stop words.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Cosine returns the cosine similarity of two L2-normalized sparse
// vectors, which reduces to their dot product.
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for i, w := range a {
		if bw, ok := b[i]; ok {
			dot += w * bw
		}
	}
	return dot
}
