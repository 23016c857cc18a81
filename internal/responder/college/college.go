// Package college gives admission guidance: essay tips and outlines,
// extracurricular impact ranking, and message templates.
package college

// #region imports
import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region guidance

var essayTips = []string{
	"Start with a vivid scene or moment.",
	"Show, don't tell: use specific examples.",
	"Keep your voice authentic and reflective.",
	"Answer the prompt directly; avoid unrelated tangents.",
	"Have a teacher or mentor review for clarity and grammar.",
}

// EssayOutline returns a short outline skeleton for an essay prompt.
func EssayOutline() []string {
	return []string{
		"Hook: Open with a vivid, specific moment relevant to the prompt.",
		"Context: Briefly explain the situation, people involved, and your role.",
		"Challenge/Action: Describe what you did and why it mattered.",
		"Reflection: Explain what you learned and how you changed.",
		"Conclusion: Tie the learning back to your future goals or fit for college.",
	}
}

var sampleMessages = map[string]string{
	"teacher_recommendation_request": "Subject: Recommendation Request\n\n" +
		"Dear [Teacher Name],\n\nI hope you are well. I'm applying to colleges and would be honored if you could write a recommendation for me." +
		" The deadline is [date]. I can provide my resume and a summary of my activities. Thank you for considering this request.\n\nSincerely,\n[Your Name]",
	"college_visit_email": "Subject: Prospective Student Visit Request\n\n" +
		"Dear Admissions Office,\n\nI am a prospective applicant interested in visiting campus and meeting with a counselor." +
		" Are there available tour dates in [month]? Thank you.\n\nSincerely,\n[Your Name]",
}

// #endregion

// #region ranking

var initiativePattern = regexp.MustCompile(`(?i)project|initiative|founded|started`)

// RankExtracurriculars scores activities by an impact heuristic and returns
// them highest first: leadership +40, up to +30 for weekly hours, +10 for
// regional reach, +10 for named initiatives.
func RankExtracurriculars(items []responder.RankedActivity) []responder.RankedActivity {
	ranked := make([]responder.RankedActivity, len(items))
	copy(ranked, items)
	for i := range ranked {
		s := 0.0
		if ranked[i].Leadership {
			s += 40
		}
		hours := ranked[i].HoursPerWeek * 2
		if hours > 30 {
			hours = 30
		}
		s += hours
		if ranked[i].Regional {
			s += 10
		}
		if initiativePattern.MatchString(ranked[i].Name) {
			s += 10
		}
		ranked[i].Score = s
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// parseRankBody parses "name|hours|leadership|regional; ..." request bodies.
func parseRankBody(body string) []responder.RankedActivity {
	var items []responder.RankedActivity
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seg := strings.Split(part, "|")
		item := responder.RankedActivity{Name: strings.TrimSpace(seg[0])}
		if len(seg) > 1 {
			if h, err := strconv.ParseFloat(strings.TrimSpace(seg[1]), 64); err == nil {
				item.HoursPerWeek = h
			}
		}
		if len(seg) > 2 {
			item.Leadership = parseBool(seg[2])
		}
		if len(seg) > 3 {
			item.Regional = parseBool(seg[3])
		}
		items = append(items, item)
	}
	return items
}

// ResumeSuggestions turns "name|role|impact|quantity" activity entries into
// resume bullet lines.
func ResumeSuggestions(body string) []string {
	var bullets []string
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seg := strings.Split(part, "|")
		for i := range seg {
			seg[i] = strings.TrimSpace(seg[i])
		}
		name := seg[0]
		role, impact, qty := "", "", ""
		if len(seg) > 1 {
			role = seg[1]
		}
		if len(seg) > 2 {
			impact = seg[2]
		}
		if len(seg) > 3 {
			qty = seg[3]
		}
		bullet := role + " at " + name + ": " + impact
		if qty != "" {
			bullet += " (" + qty + ")"
		}
		bullets = append(bullets, bullet)
	}
	return bullets
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true":
		return true
	}
	return false
}

// #endregion

// #region responder

type Agent struct{}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "College Admission Agent" }

func (a *Agent) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return responder.Textual("Ask for 'essay tips', 'rank extracurriculars' with an inline list, or 'sample messages'."), nil
	}

	ql := strings.ToLower(q)
	switch {
	case strings.HasPrefix(ql, "essay"):
		if strings.Contains(ql, "outline") {
			return responder.Reply{Text: "Essay outline:", Tips: EssayOutline()}, nil
		}
		return responder.Reply{Text: "Essay tips:", Tips: essayTips}, nil
	case strings.HasPrefix(ql, "sample"):
		return responder.Reply{Text: "Sample messages and templates:", Messages: sampleMessages}, nil
	case strings.HasPrefix(ql, "rank"):
		body := q
		if i := strings.IndexByte(q, ':'); i >= 0 {
			body = q[i+1:]
		}
		ranked := RankExtracurriculars(parseRankBody(body))
		return responder.Reply{Text: "Ranked extracurriculars:", Ranked: ranked}, nil
	case strings.HasPrefix(ql, "resume"):
		body := q
		if i := strings.IndexByte(q, ':'); i >= 0 {
			body = q[i+1:]
		}
		bullets := ResumeSuggestions(body)
		if len(bullets) == 0 {
			return responder.Textual("Provide activities as 'resume: name|role|impact|quantity; ...'"), nil
		}
		return responder.Reply{Text: "Resume bullet suggestions:", Tips: bullets}, nil
	}

	return responder.Textual("Unrecognized college admission request. Try 'essay tips', 'sample messages', 'resume: ...', or 'rank: name|hours|lead|regional; ...'"), nil
}

// #endregion
