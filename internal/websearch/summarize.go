package websearch

// #region imports
import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// #endregion

// #region summarize

var (
	sentenceSplit = regexp.MustCompile(`[.!?\n]\s+`)
	wordPattern   = regexp.MustCompile(`\w+`)
	spaceCollapse = regexp.MustCompile(`\s+`)
)

// Summarize picks up to maxBullets sentences from the provider texts,
// scored by TF-IDF weight plus a bonus for query-term overlap, with a small
// bias toward earlier sentences and moderate length.
func Summarize(texts []string, query string, maxBullets int) string {
	if len(texts) == 0 || maxBullets <= 0 {
		return ""
	}

	var candidates []string
	seen := map[string]bool{}
	for _, t := range texts {
		for _, part := range sentenceSplit.Split(t, -1) {
			s := spaceCollapse.ReplaceAllString(strings.TrimSpace(part), " ")
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	// term and document frequencies across provider texts
	tf := map[string]int{}
	df := map[string]int{}
	for _, t := range texts {
		inDoc := map[string]bool{}
		for _, w := range wordPattern.FindAllString(strings.ToLower(t), -1) {
			if len(w) < 3 {
				continue
			}
			tf[w]++
			if !inDoc[w] {
				df[w]++
				inDoc[w] = true
			}
		}
	}
	docs := float64(len(texts))

	queryWords := map[string]bool{}
	for _, w := range wordPattern.FindAllString(strings.ToLower(query), -1) {
		if len(w) > 2 {
			queryWords[w] = true
		}
	}

	type scored struct {
		score float64
		text  string
	}
	var ranked []scored
	for idx, s := range candidates {
		var words []string
		for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
			if len(w) > 2 {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}
		score := 0.0
		for _, w := range words {
			idf := math.Log(docs/float64(1+df[w]) + 1)
			score += float64(tf[w]) * idf
			if queryWords[w] {
				score += 3.0
			}
		}
		posBias := 1.0 + (1.0-float64(idx)/float64(len(candidates)))*0.2
		lenFactor := math.Min(1.0+float64(len(words))/20.0, 2.0)
		ranked = append(ranked, scored{score: score * posBias * lenFactor, text: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxBullets {
		ranked = ranked[:maxBullets]
	}

	var bullets []string
	for _, r := range ranked {
		clean := strings.TrimSpace(r.text)
		if !strings.HasSuffix(clean, ".") && !strings.HasSuffix(clean, "!") && !strings.HasSuffix(clean, "?") {
			clean += "."
		}
		bullets = append(bullets, "- "+clean)
	}
	return strings.Join(bullets, "\n")
}

// #endregion
