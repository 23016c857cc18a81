// Package satact serves SAT/ACT practice questions from a curated bank and
// checks pasted multiple-choice questions against a computed answer.
package satact

// #region imports
import (
	"context"
	"math/rand/v2"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/mathsolve"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region bank

type practiceItem struct {
	question    string
	explanation []string
}

var bank = map[string]map[string][]practiceItem{
	"math": {
		"easy": {{
			question:    "If 3x + 5 = 20, what is x?\nA) 3\nB) 5\nC) 10\nD) 15",
			explanation: []string{"Solve 3x + 5 = 20.", "3x = 15", "x = 5. Answer: B"},
		}},
		"medium": {{
			question:    "What is the value of x if 2(x - 3) = 3x + 1?\nA) -7\nB) 5\nC) -1\nD) 7",
			explanation: []string{"Expand: 2x - 6 = 3x + 1.", "Rearrange: -x = 7.", "x = -7. Answer: A"},
		}},
		"hard": {{
			question:    "If f(x)=x^2-4x+3, what is the vertex of f?\nA) (2,-1)\nB) (2,1)\nC) (-2,-1)\nD) (1,-2)",
			explanation: []string{"Vertex x-coordinate = -b/(2a) = 4/2 = 2.", "f(2) = 4 - 8 + 3 = -1.", "Vertex is (2, -1). Answer: A"},
		}},
		"geometry": {{
			question:    "In triangle ABC, angle A = 90 degrees, AB = 3, AC = 4. What is BC?\nA) 5\nB) 6\nC) 7\nD) 4",
			explanation: []string{"Right triangle with legs 3 and 4: hypotenuse = sqrt(3^2+4^2)=5. Answer: A"},
		}},
		"probability": {{
			question:    "A bag contains 3 red and 2 blue marbles. One marble is drawn at random. What is the probability it is red?\nA) 2/5\nB) 3/5\nC) 1/2\nD) 3/2",
			explanation: []string{"3 red out of 5 total => probability 3/5. Answer: B"},
		}},
	},
	"reading": {
		"easy": {{
			question: "Passage: 'The community garden transformed a neglected lot into a vibrant hub of neighbors, plants, and small markets.' " +
				"Read the passage and answer: Which choice best describes the author's tone?\n" +
				"A) Objective and neutral\nB) Sarcastic and bitter\nC) Optimistic and celebratory\nD) Confused and uncertain",
			explanation: []string{"The passage uses positive, celebratory language about transformation and community."},
		}},
	},
}

func explanationHTML(lines []string) string {
	var b strings.Builder
	b.WriteString("<div class='explanation'>")
	for _, l := range lines {
		b.WriteString("<p>")
		b.WriteString(l)
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return b.String()
}

// Practice returns one practice question for a section spec like "math",
// "math medium", or "reading". Unknown sections fall back to math; an
// unspecified or unknown difficulty is chosen at random.
func Practice(section string) responder.Reply {
	sect := strings.ToLower(strings.TrimSpace(section))
	if sect == "" {
		sect = "math"
	}
	difficulty := ""
	if i := strings.IndexByte(sect, ' '); i >= 0 {
		difficulty = strings.TrimSpace(sect[i+1:])
		sect = sect[:i]
	}
	byDiff, ok := bank[sect]
	if !ok {
		byDiff = bank["math"]
	}

	if _, ok := byDiff[difficulty]; !ok {
		diffs := make([]string, 0, len(byDiff))
		for d := range byDiff {
			diffs = append(diffs, d)
		}
		sort.Strings(diffs)
		difficulty = diffs[rand.IntN(len(diffs))]
	}
	items := byDiff[difficulty]
	chosen := items[rand.IntN(len(items))]

	return responder.Reply{
		Question:        chosen.question,
		Difficulty:      difficulty,
		ExplanationText: strings.Join(chosen.explanation, "\n"),
		ExplanationHTML: explanationHTML(chosen.explanation),
	}
}

// #endregion

// #region responder

// Agent is the SAT/ACT responder. Delegate, when set, supplies a candidate
// answer for MCQs the local solver cannot crack, provided a credential
// arrived with the request.
type Agent struct {
	Delegate responder.Responder
}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "SAT/ACT Agent" }

func (a *Agent) Capabilities() responder.Capabilities {
	return responder.Capabilities{Credentials: true}
}

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return responder.Textual("Ask for a practice question with 'practice math' or paste an MCQ to check."), nil
	}

	ql := strings.ToLower(q)
	if strings.HasPrefix(ql, "practice") {
		return Practice(strings.TrimSpace(strings.TrimPrefix(ql, "practice"))), nil
	}

	if stem, options, ok := mathsolve.ExtractMCQ(q); ok {
		if m, matched := mathsolve.SolveMCQ(stem, options); matched {
			return responder.Reply{
				Text: "I think the answer is " + m.Label,
				Match: &responder.AnswerMatch{
					Answer:      m.Label,
					Value:       m.Answer,
					Explanation: m.Steps,
					Confidence:  m.Confidence,
				},
			}, nil
		}
		if req.APIKey != "" && a.Delegate != nil {
			if m, matched := a.delegateMatch(ctx, q, options, req.APIKey); matched {
				return responder.Reply{
					Text: "I think the answer is " + m.Label,
					Match: &responder.AnswerMatch{
						Answer:      m.Label,
						Value:       m.Answer,
						Explanation: m.Steps,
						Confidence:  m.Confidence,
					},
				}, nil
			}
		}
		return responder.Textual("I couldn't confidently match an option. Try giving a clearer numeric expression or enable the generic fallback with an API key."), nil
	}

	if strings.Contains(ql, "score") || strings.Contains(ql, "scoring") {
		return responder.Textual("SAT: Raw scores are converted to scaled scores; focus on accuracy. ACT: similar, practice timing. Use official practice tests for calibration."), nil
	}

	return responder.Textual("Unrecognized SAT/ACT request. Try 'practice math' or paste an MCQ question."), nil
}

var candidateNumberRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// delegateMatch asks the delegate for the question, pulls the first number
// from its reply, and matches that against the options.
func (a *Agent) delegateMatch(ctx context.Context, question string, options map[string]string, apiKey string) (mathsolve.MCQMatch, bool) {
	reply, err := a.Delegate.Handle(ctx, responder.Request{Query: question, APIKey: apiKey})
	if err != nil || reply.IsError() {
		return mathsolve.MCQMatch{}, false
	}
	numText := candidateNumberRe.FindString(reply.Text)
	if numText == "" {
		return mathsolve.MCQMatch{}, false
	}
	v, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return mathsolve.MCQMatch{}, false
	}
	m, matched := mathsolve.MatchNumeric(v, options)
	if matched {
		m.Steps = append([]string{"Suggested numeric answer: " + numText}, m.Steps...)
	}
	return m, matched
}

// #endregion
