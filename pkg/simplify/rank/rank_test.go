package rank

import (
	"math"
	"testing"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/analyze"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.Keyword + w.Entity + w.Position + w.Length
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Weights should sum to 1, got %f", sum)
	}
}

func TestPositionWeight(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 5, 1.0},
		{4, 5, 0.8},
		{1, 5, 0.7},
		{2, 5, 0.5},
		{3, 5, 0.5},
		{0, 1, 1.0},
		{1, 2, 0.8}, // last wins over second
	}
	for _, tt := range tests {
		if got := positionWeight(tt.i, tt.n); got != tt.want {
			t.Errorf("positionWeight(%d, %d) = %f, want %f", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestLengthScore(t *testing.T) {
	if lengthScore(4) != 0.3 {
		t.Error("Fragments under 5 words should score 0.3")
	}
	if lengthScore(5) != 1.0 || lengthScore(30) != 1.0 {
		t.Error("5..30 words should score 1.0")
	}
	if lengthScore(31) != 0.5 {
		t.Error("Over 30 words should score 0.5")
	}
}

func TestKeywordRelevanceNormalization(t *testing.T) {
	keywords := []string{"solar", "farm", "valley", "power", "homes", "land", "project", "meeting", "month", "farmers"}

	// 10 keywords normalize by 3, so three matches saturate
	full := keywordRelevance([]string{"solar", "farm", "valley"}, keywords)
	if full != 1.0 {
		t.Errorf("Expected saturated relevance 1.0, got %f", full)
	}
	one := keywordRelevance([]string{"solar", "panel"}, keywords)
	if math.Abs(one-1.0/3.0) > 1e-9 {
		t.Errorf("Expected 1/3, got %f", one)
	}
	if keywordRelevance([]string{"solar"}, nil) != 0 {
		t.Error("No keywords should give zero relevance")
	}
}

func TestEntityPresenceNormalization(t *testing.T) {
	entities := []string{"Acme", "Berlin", "Monday", "Sara Lee"}

	// 4 entities normalize by 2
	got := entityPresence("Acme opened an office in Berlin.", entities)
	if got != 1.0 {
		t.Errorf("Expected 1.0, got %f", got)
	}
	got = entityPresence("The office opened on monday.", entities)
	if got != 0.5 {
		t.Errorf("Entity matching should be case-insensitive, got %f", got)
	}
}

func TestRankRemovesNearDuplicates(t *testing.T) {
	text := "The new solar farm will power ten thousand homes in the valley. " +
		"The new solar farm will power ten thousand homes in the valley soon. " +
		"Local farmers worried about losing land to the project. " +
		"Officials promised a public meeting for the residents next month."

	analyzed := analyze.New(nil).Analyze(text)
	ranked := New(DefaultWeights()).Rank(analyzed, 5)

	if len(ranked) != 3 {
		t.Fatalf("Expected near-duplicate to be removed, got %d sentences", len(ranked))
	}
	for i := range ranked {
		for j := i + 1; j < len(ranked); j++ {
			sim := Jaccard(analyze.Tokenize(ranked[i].Text), analyze.Tokenize(ranked[j].Text))
			if sim > SimilarityThreshold {
				t.Errorf("Sentences %d and %d too similar (%f)", ranked[i].Index, ranked[j].Index, sim)
			}
		}
	}
	for _, s := range ranked {
		if s.Index == 1 {
			t.Error("The lower-scored duplicate (index 1) should have been dropped")
		}
	}
}

func TestRankOrderAndTieBreak(t *testing.T) {
	analyzed := analyze.Result{
		Sentences: []string{
			"Alpha beta gamma delta epsilon zeta.",
			"Red orange yellow green blue indigo.",
			"One two three four five six.",
			"Cat dog horse sheep goat cow.",
			"Oak pine maple birch cedar elm.",
			"Mercury venus earth mars jupiter saturn.",
		},
	}

	ranked := New(DefaultWeights()).Rank(analyzed, 10)

	wantOrder := []int{0, 5, 1, 2, 3, 4}
	if len(ranked) != len(wantOrder) {
		t.Fatalf("Expected %d sentences, got %d", len(wantOrder), len(ranked))
	}
	for i, want := range wantOrder {
		if ranked[i].Index != want {
			t.Errorf("Position %d: expected index %d, got %d", i, want, ranked[i].Index)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Error("Scores must be non-increasing")
		}
	}
}

func TestRankTopN(t *testing.T) {
	analyzed := analyze.New(nil).Analyze(
		"Rain is expected across the north on Friday. " +
		"Schools in the coastal towns will open late. " +
		"Farmers have welcomed the change in the weather. " +
		"The storm should pass by the weekend.")

	ranked := New(DefaultWeights()).Rank(analyzed, 2)
	if len(ranked) != 2 {
		t.Errorf("Expected 2 sentences, got %d", len(ranked))
	}
}

func TestRankEmpty(t *testing.T) {
	r := New(DefaultWeights())
	if got := r.Rank(analyze.Result{}, 5); got != nil {
		t.Errorf("Empty input should rank to nil, got %v", got)
	}
	analyzed := analyze.Result{Sentences: []string{"Something happened in the town today."}}
	if got := r.Rank(analyzed, 0); got != nil {
		t.Errorf("topN=0 should rank to nil, got %v", got)
	}
}

func TestJaccard(t *testing.T) {
	if Jaccard(nil, nil) != 1.0 {
		t.Error("Two empty sets should be identical")
	}
	if got := Jaccard([]string{"a", "b"}, []string{"B", "c"}); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("Expected 1/3, got %f", got)
	}
	if Jaccard([]string{"a"}, []string{"b"}) != 0 {
		t.Error("Disjoint sets should have zero similarity")
	}
}
