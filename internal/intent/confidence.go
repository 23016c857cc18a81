package intent

// #region normalization

// normalizeDivisor maps raw scores into [0, 1]. The source behavior used 14
// on the decision path and 12 on the suggestion path; a single canonical
// divisor keeps suggestion badges consistent with routing decisions.
const normalizeDivisor = 14.0

// Normalize maps a raw score to [0, 1].
func Normalize(score float64) float64 {
	n := score / normalizeDivisor
	if n > 1.0 {
		return 1.0
	}
	return n
}

// #endregion

// #region bucketing

// Bucket maps a normalized score to a categorical confidence level.
// Monotonic: a <= b implies Bucket(a) <= Bucket(b).
func Bucket(normalized float64) Confidence {
	switch {
	case normalized < 0.3:
		return ConfidenceLow
	case normalized < 0.7:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}

// #endregion
