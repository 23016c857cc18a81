package mathsolve

// #region imports
import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// #endregion

// #region extract

var (
	mcqLine   = regexp.MustCompile(`(?m)^\s*([A-Z]|[0-9]+)\s*[\)\.\:]\s*(.+?)\s*$`)
	mcqInline = regexp.MustCompile(`\b([A-Z])\s*[\)\.\:]\s*([^,;]+)`)
	numExpr   = regexp.MustCompile(`[0-9][0-9\.\+\-\*/\^\(\) ]*`)
	percentRe = regexp.MustCompile(`([0-9\.]+)\s*%`)
	rhsRe     = regexp.MustCompile(`=\s*(.+)$`)
)

// ExtractMCQ splits a multiple-choice question into the question stem and a
// label -> option map. Numeric labels are relettered A, B, C in order. The
// second return is false when fewer than two options are found.
func ExtractMCQ(text string) (string, map[string]string, bool) {
	matches := mcqLine.FindAllStringSubmatch(text, -1)
	if len(matches) < 2 {
		matches = mcqInline.FindAllStringSubmatch(text, -1)
	}
	if len(matches) < 2 {
		return "", nil, false
	}

	options := map[string]string{}
	letter := 'A'
	for _, m := range matches {
		label := m[1]
		if label[0] >= '0' && label[0] <= '9' {
			label = string(letter)
		}
		options[label] = strings.TrimSpace(m[2])
		letter++
	}

	stem := text
	if loc := mcqLine.FindStringIndex(text); loc != nil {
		stem = text[:loc[0]]
	} else if loc := mcqInline.FindStringIndex(text); loc != nil {
		stem = text[:loc[0]]
	}
	return strings.TrimSpace(stem), options, true
}

// #endregion

// #region option values

// OptionValue is an option's numeric reading, when it has one.
type OptionValue struct {
	Value   float64
	Numeric bool
}

// ParseOptionValue extracts a numeric value from option text. It handles
// "x = 3" forms, percentages, embedded expressions like "3/4", and plain
// numbers with thousands separators.
func ParseOptionValue(opt string) OptionValue {
	s := strings.TrimSpace(strings.ReplaceAll(opt, ",", ""))

	if m := rhsRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if m := percentRe.FindStringSubmatch(s); m != nil {
		if v, err := EvalNumeric(m[1]); err == nil {
			return OptionValue{Value: v / 100, Numeric: true}
		}
	}
	if m := numExpr.FindString(s); m != "" {
		if v, err := EvalNumeric(strings.TrimSpace(m)); err == nil {
			return OptionValue{Value: v, Numeric: true}
		}
	}
	return OptionValue{}
}

// #endregion

// #region match

// MCQMatch is a matched multiple-choice answer with its working.
type MCQMatch struct {
	Label      string
	Option     string
	Answer     string
	Confidence string // "high", "medium", or "low"
	Steps      []string
}

// SolveMCQ derives the answer to the question stem and matches it against
// the options: solve any equation or evaluate the longest numeric
// expression, then compare numerically, then by text, then fall back to a
// sole numeric option.
func SolveMCQ(stem string, options map[string]string) (MCQMatch, bool) {
	var steps []string
	var answer float64
	var answerText string
	haveNumeric := false

	if strings.Contains(stem, "=") {
		if sol, err := SolveLinear(stripProse(stem)); err == nil {
			answer = sol.Value
			answerText = FormatNumber(sol.Value)
			haveNumeric = true
			steps = append(steps, fmt.Sprintf("Solved the equation: %s", sol))
		}
	}
	if !haveNumeric {
		if expr := longestNumericExpr(stem); expr != "" {
			if v, err := EvalNumeric(expr); err == nil {
				answer = v
				answerText = FormatNumber(v)
				haveNumeric = true
				steps = append(steps, fmt.Sprintf("Evaluated %s = %s", expr, answerText))
			}
		}
	}

	labels := make([]string, 0, len(options))
	for l := range options {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	if haveNumeric {
		for _, l := range labels {
			ov := ParseOptionValue(options[l])
			if ov.Numeric && math.Abs(ov.Value-answer) < 1e-6*(1+math.Abs(answer)) {
				steps = append(steps, fmt.Sprintf("Option %s matches the computed value", l))
				return MCQMatch{Label: l, Option: options[l], Answer: answerText, Confidence: "high", Steps: steps}, true
			}
		}
	}
	if answerText != "" {
		for _, l := range labels {
			if strings.Contains(strings.ToLower(options[l]), strings.ToLower(answerText)) {
				return MCQMatch{Label: l, Option: options[l], Answer: answerText, Confidence: "medium", Steps: steps}, true
			}
		}
	}

	// last resort: a single numeric option among non-numeric ones
	var numericLabels []string
	for _, l := range labels {
		if ParseOptionValue(options[l]).Numeric {
			numericLabels = append(numericLabels, l)
		}
	}
	if len(numericLabels) == 1 {
		l := numericLabels[0]
		steps = append(steps, "Only one option is numeric")
		return MCQMatch{Label: l, Option: options[l], Answer: options[l], Confidence: "low", Steps: steps}, true
	}
	return MCQMatch{}, false
}

// MatchNumeric matches a candidate value, obtained outside SolveMCQ, against
// the options numerically.
func MatchNumeric(value float64, options map[string]string) (MCQMatch, bool) {
	labels := make([]string, 0, len(options))
	for l := range options {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	for _, l := range labels {
		ov := ParseOptionValue(options[l])
		if ov.Numeric && math.Abs(ov.Value-value) < 1e-6*(1+math.Abs(value)) {
			return MCQMatch{
				Label:      l,
				Option:     options[l],
				Answer:     FormatNumber(value),
				Confidence: "medium",
				Steps:      []string{fmt.Sprintf("Option %s matches the candidate value %s", l, FormatNumber(value))},
			}, true
		}
	}
	return MCQMatch{}, false
}

// stripProse keeps only the mathematical core of a sentence containing an
// equation, e.g. "If 2x + 3 = 7, what is x?" -> "2x + 3 = 7".
func stripProse(s string) string {
	allowed := regexp.MustCompile(`[0-9a-zA-Z\.\+\-\*/\^\(\)= ]+`)
	best := ""
	for _, frag := range allowed.FindAllString(s, -1) {
		if strings.Contains(frag, "=") && len(frag) > len(best) {
			best = frag
		}
	}
	if best == "" {
		return s
	}
	// drop leading/trailing words without digits or the variable
	best = strings.TrimSpace(best)
	words := strings.Fields(best)
	start, end := 0, len(words)
	for start < end && !strings.ContainsAny(words[start], "0123456789=") && len(words[start]) > 1 {
		start++
	}
	for end > start && !strings.ContainsAny(words[end-1], "0123456789=") && len(words[end-1]) > 1 {
		end--
	}
	return strings.Join(words[start:end], " ")
}

func longestNumericExpr(s string) string {
	best := ""
	for _, frag := range numExpr.FindAllString(s, -1) {
		frag = strings.TrimSpace(frag)
		frag = strings.Trim(frag, "+-*/^. ")
		if strings.ContainsAny(frag, "+-*/^") && len(frag) > len(best) {
			best = frag
		}
	}
	return best
}

// #endregion
