package highschool

import (
	"context"
	"strings"
	"testing"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

func TestHandle(t *testing.T) {
	a := New()
	cases := []struct {
		name  string
		query string
		frag  string
	}{
		{"faq", "explain the pythagoras theorem", "a^2 + b^2 = c^2"},
		{"faq newton", "what is newton's second law", "F = m * a"},
		{"sample", "show me the ap calc sample derivative", "f'(2)=3*(2)^2-5=12-5=7"},
		{"tip derivative", "how do i differentiate this function", "derivative of x^n is n*x^(n-1)"},
		{"tip moles", "how many moles in this sample", "mol = grams / molar_mass"},
		{"tip econ", "supply and demand question", "Equilibrium where supply = demand"},
		{"tip macro", "what drives inflation", "general rise in prices"},
		{"default", "tell me something interesting", "Please provide more details"},
		{"empty", "", "high-school topics"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := a.Handle(context.Background(), responder.Request{Query: tc.query})
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			if !strings.Contains(reply.Text, tc.frag) {
				t.Errorf("Handle(%q) = %q, want fragment %q", tc.query, reply.Text, tc.frag)
			}
		})
	}
}
