package intent

// #region imports
import (
	"regexp"
	"sort"
	"strings"
)

// #endregion

// #region boost-patterns

const (
	patternWeight = 0.7
	keywordWeight = 0.3

	mathExprBoost = 3.0
	geometryBoost = 2.0
	stemCueBoost  = 2.0
)

var (
	geometryWord = regexp.MustCompile(`\bgeometry\b`)
	stemCueWords = regexp.MustCompile(`derivative|integral|calculus|kinematics|projectile|force|momentum`)
)

// #endregion

// #region scorer

// Scorer computes per-identity affinity scores from the trigger tables.
// The tables are read-only after construction; Scorer is safe for
// concurrent readers.
type Scorer struct {
	tables Tables
}

// NewScorer creates a Scorer over the given trigger tables.
func NewScorer(tables Tables) *Scorer {
	return &Scorer{tables: tables}
}

// #endregion

// #region score

// Score computes the full score vector for a query. No filtering: every
// identity in the tables gets an entry, zero or not.
func (s *Scorer) Score(query string) ScoreVector {
	lower := strings.ToLower(query)
	vec := make(ScoreVector, len(s.tables))

	for id, table := range s.tables {
		patternMatches := len(table.Pattern.FindAllString(lower, -1))

		keywordMatches := 0
		for _, kw := range table.Keywords {
			if strings.Contains(lower, kw) {
				keywordMatches++
			}
		}

		score := patternWeight*float64(patternMatches) + keywordWeight*float64(keywordMatches)

		if id == IdentityMath && LooksLikeMath(query) {
			score += mathExprBoost
		}
		if id == IdentityMath && geometryWord.MatchString(lower) {
			score += geometryBoost
		}
		if id == IdentitySTEM && stemCueWords.MatchString(lower) {
			score += stemCueBoost
		}

		vec[id] = score
	}
	return vec
}

// #endregion

// #region detect

// Detect returns the recommended responder display name and the categorical
// confidence for a query. All-zero score vectors report the generic fallback
// at low confidence rather than an arbitrary zero-score winner, and low
// confidence always resolves to the fallback.
func (s *Scorer) Detect(query string) (string, Confidence) {
	id, conf := s.DetectIdentity(query)
	if conf == ConfidenceLow {
		// A bare expression like "2+3" carries no trigger keywords and
		// scores low, but the math-expression signal is unambiguous.
		if id == IdentityMath && LooksLikeMath(query) {
			return DisplayName(id), conf
		}
		return FallbackName, conf
	}
	return DisplayName(id), conf
}

// DetectIdentity is Detect without the display-name mapping or the
// low-confidence fallback substitution. Returns IdentityUnknown when every
// score is exactly zero.
func (s *Scorer) DetectIdentity(query string) (Identity, Confidence) {
	vec := s.Score(query)

	best, bestScore := IdentityUnknown, 0.0
	for _, id := range s.tables.Identities() {
		if vec[id] > bestScore {
			best, bestScore = id, vec[id]
		}
	}
	if bestScore == 0 {
		return IdentityUnknown, ConfidenceLow
	}
	return best, Bucket(Normalize(bestScore))
}

// #endregion

// #region suggest

// Suggest returns the top-N responder suggestions for a query, highest
// confidence first. Ties break on identity name for stable output.
func (s *Scorer) Suggest(query string, topN int) []Suggestion {
	vec := s.Score(query)

	ids := s.tables.Identities()
	sort.SliceStable(ids, func(i, j int) bool { return vec[ids[i]] > vec[ids[j]] })

	if topN < 0 {
		topN = 0
	}
	if topN > len(ids) {
		topN = len(ids)
	}
	out := make([]Suggestion, 0, topN)
	for _, id := range ids[:topN] {
		out = append(out, Suggestion{
			Responder:  DisplayName(id),
			Confidence: Bucket(Normalize(vec[id])),
		})
	}
	return out
}

// #endregion
