package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/analyze"
)

// SimilarityThreshold is the Jaccard similarity above which a candidate is
// treated as a near-duplicate of an accepted sentence.
const SimilarityThreshold = 0.7

// Weights defines the scoring weights
type Weights struct {
	Keyword  float64 // keyword relevance
	Entity   float64 // entity presence
	Position float64 // lead/closing bias
	Length   float64 // fragment/complexity penalty
}

// DefaultWeights returns the 0.4/0.2/0.2/0.2 split.
func DefaultWeights() Weights {
	return Weights{
		Keyword:  0.4,
		Entity:   0.2,
		Position: 0.2,
		Length:   0.2,
	}
}

// Ranker scores sentences by importance and removes near-duplicates.
type Ranker struct {
	weights Weights
}

// New creates a ranker with the given weights.
func New(w Weights) *Ranker {
	return &Ranker{weights: w}
}

// Sentence is a scored sentence. Index is its position in the analyzed text.
type Sentence struct {
	Text  string
	Score float64
	Index int
}

// ScoreBreakdown provides detailed scoring information
type ScoreBreakdown struct {
	Keyword  float64
	Entity   float64
	Position float64
	Length   float64
	Total    float64
}

// Rank returns at most topN sentences in descending score order with
// near-duplicates removed. Equal scores keep document order.
func (r *Ranker) Rank(analyzed analyze.Result, topN int) []Sentence {
	if topN <= 0 || len(analyzed.Sentences) == 0 {
		return nil
	}

	candidates := make([]Sentence, len(analyzed.Sentences))
	for i, text := range analyzed.Sentences {
		candidates[i] = Sentence{
			Text:  text,
			Score: r.ScoreWithBreakdown(analyzed, i).Total,
			Index: i,
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Index < candidates[j].Index
	})

	var accepted []Sentence
	var acceptedTokens [][]string
	for _, c := range candidates {
		if len(accepted) >= topN {
			break
		}
		tokens := tokensFor(analyzed, c.Index)
		duplicate := false
		for _, prev := range acceptedTokens {
			if Jaccard(tokens, prev) > SimilarityThreshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		accepted = append(accepted, c)
		acceptedTokens = append(acceptedTokens, tokens)
	}
	return accepted
}

// ScoreWithBreakdown scores the sentence at index i.
//
// score = w_k·keyword + w_e·entity + w_p·position + w_l·length
func (r *Ranker) ScoreWithBreakdown(analyzed analyze.Result, i int) ScoreBreakdown {
	text := analyzed.Sentences[i]
	tokens := tokensFor(analyzed, i)

	b := ScoreBreakdown{
		Keyword:  r.weights.Keyword * keywordRelevance(tokens, analyzed.Keywords),
		Entity:   r.weights.Entity * entityPresence(text, analyzed.Entities),
		Position: r.weights.Position * positionWeight(i, len(analyzed.Sentences)),
		Length:   r.weights.Length * lengthScore(len(strings.Fields(text))),
	}
	b.Total = b.Keyword + b.Entity + b.Position + b.Length
	return b
}

func keywordRelevance(tokens, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	set := toSet(tokens)
	matches := 0
	for _, kw := range keywords {
		if _, ok := set[kw]; ok {
			matches++
		}
	}
	return math.Min(float64(matches)/math.Max(float64(len(keywords))*0.3, 1), 1)
}

func entityPresence(text string, entities []string) float64 {
	if len(entities) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, e := range entities {
		if strings.Contains(lower, strings.ToLower(e)) {
			matches++
		}
	}
	return math.Min(float64(matches)/math.Max(float64(len(entities))*0.5, 1), 1)
}

// positionWeight favors the lead and closing sentences.
func positionWeight(i, n int) float64 {
	switch {
	case i == 0:
		return 1.0
	case i == n-1:
		return 0.8
	case i == 1:
		return 0.7
	default:
		return 0.5
	}
}

func lengthScore(words int) float64 {
	switch {
	case words < 5:
		return 0.3
	case words > 30:
		return 0.5
	default:
		return 1.0
	}
}

func tokensFor(analyzed analyze.Result, i int) []string {
	if i < len(analyzed.Tokens) {
		return analyzed.Tokens[i]
	}
	return analyze.Tokenize(analyzed.Sentences[i])
}

// Jaccard calculates Jaccard similarity between two token slices,
// case-insensitively.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	aSet := toSet(a)
	bSet := toSet(b)

	intersection := 0
	for s := range aSet {
		if _, ok := bSet[s]; ok {
			intersection++
		}
	}

	union := len(aSet) + len(bSet) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}
