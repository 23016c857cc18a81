package intent

// #region identity

// Identity names a responder category in the trigger tables.
type Identity string

const (
	IdentityMath       Identity = "Math"
	IdentitySTEM       Identity = "AP STEM"
	IdentityMusic      Identity = "Music"
	IdentityTravel     Identity = "Travel"
	IdentityGames      Identity = "Games"
	IdentityHighSchool Identity = "HighSchool"

	// IdentityUnknown is the sentinel reported when no identity scores above zero.
	IdentityUnknown Identity = "unknown"
)

// #endregion

// #region confidence

// Confidence is the categorical bucket derived from a normalized intent score.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// rank orders confidence levels Low < Medium < High.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceMedium:
		return 1
	case ConfidenceHigh:
		return 2
	}
	return 0
}

// AtLeast reports whether c is at or above other in the Low < Medium < High ordering.
func (c Confidence) AtLeast(other Confidence) bool {
	return c.rank() >= other.rank()
}

// #endregion

// #region score-vector

// ScoreVector maps each identity to its non-negative affinity score for one query.
// Recomputed per query, never persisted.
type ScoreVector map[Identity]float64

// #endregion

// #region display-names

// FallbackName is the registry display name of the generic fallback responder.
const FallbackName = "LLM Agent"

// displayNames maps trigger-table identities to registry display names.
var displayNames = map[Identity]string{
	IdentityMath:       "Math Agent",
	IdentitySTEM:       "AP STEM Agent",
	IdentityMusic:      "Music Agent",
	IdentityTravel:     "Travel Agent",
	IdentityGames:      "Games Agent",
	IdentityHighSchool: "High School Agent",
}

// DisplayName resolves an identity to the registry display name.
// Unknown identities resolve to the generic fallback.
func DisplayName(id Identity) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return FallbackName
}

// #endregion

// #region suggestion

// Suggestion pairs a responder display name with its confidence for a query.
type Suggestion struct {
	Responder  string
	Confidence Confidence
}

// #endregion
