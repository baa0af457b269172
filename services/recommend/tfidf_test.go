package recommend

import (
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases", "Goa BEACH", []string{"goa", "beach"}},
		{"drops stop words", "a trip to the beach", []string{"trip", "beach"}},
		{"drops short tokens", "x y beach", []string{"beach"}},
		{"splits punctuation", "sun,sand;surf", []string{"sun", "sand", "surf"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	v := NewVectorizer(0, 2)
	if err := v.Fit([]string{"", "a the of"}); err != errEmptyVocabulary {
		t.Errorf("Fit() error = %v, want errEmptyVocabulary", err)
	}
}

func TestFitBigrams(t *testing.T) {
	v := NewVectorizer(0, 2)
	if err := v.Fit([]string{"goa beach holiday"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, ok := v.vocab["goa beach"]; !ok {
		t.Errorf("vocab missing bigram %q, got %v", "goa beach", v.vocab)
	}
	if _, ok := v.vocab["beach holiday"]; !ok {
		t.Errorf("vocab missing bigram %q, got %v", "beach holiday", v.vocab)
	}
}

func TestFitMaxFeatures(t *testing.T) {
	v := NewVectorizer(2, 1)
	corpus := []string{"beach beach beach mountain mountain desert"}
	if err := v.Fit(corpus); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(v.vocab) != 2 {
		t.Fatalf("vocab size = %d, want 2", len(v.vocab))
	}
	if _, ok := v.vocab["desert"]; ok {
		t.Errorf("least frequent term survived the feature cap: %v", v.vocab)
	}
}

func TestTransformNormalized(t *testing.T) {
	v := NewVectorizer(0, 2)
	if err := v.Fit([]string{"goa beach holiday", "kerala backwater cruise"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	vec := v.Transform("goa beach holiday")
	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("squared norm = %v, want 1", norm)
	}
}

func TestTransformUnknownTerms(t *testing.T) {
	v := NewVectorizer(0, 1)
	if err := v.Fit([]string{"goa beach"}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if vec := v.Transform("ladakh trek"); len(vec) != 0 {
		t.Errorf("Transform of all-unknown doc = %v, want empty", vec)
	}
}

func TestCosine(t *testing.T) {
	v := NewVectorizer(0, 2)
	corpus := []string{
		"goa beach holiday sun",
		"goa beach holiday sun",
		"ladakh mountain trek",
	}
	if err := v.Fit(corpus); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	a := v.Transform(corpus[0])
	b := v.Transform(corpus[1])
	c := v.Transform(corpus[2])

	if got := Cosine(a, b); math.Abs(got-1) > 1e-9 {
		t.Errorf("Cosine of identical docs = %v, want 1", got)
	}
	if got := Cosine(a, c); got != 0 {
		t.Errorf("Cosine of disjoint docs = %v, want 0", got)
	}
	if Cosine(a, c) != Cosine(c, a) {
		t.Error("Cosine is not symmetric")
	}
}
