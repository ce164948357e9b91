package style

import (
	"strings"
	"testing"
)

func TestParseDomain(t *testing.T) {
	cases := []struct {
		in    string
		want  Domain
		known bool
	}{
		{"tech", Tech, true},
		{" Essay ", Essay, true},
		{"", General, true},
		{"poetry", Domain("poetry"), false},
	}
	for _, c := range cases {
		got, ok := ParseDomain(c.in)
		if got != c.want || ok != c.known {
			t.Errorf("ParseDomain(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.known)
		}
	}
}

func TestAdvisorProfiles(t *testing.T) {
	a := NewAdvisor()
	for _, d := range []Domain{Tech, Essay, Business, Casual} {
		p, ok := a.Profile(d)
		if !ok {
			t.Fatalf("expected profile for %s", d)
		}
		if !strings.Contains(p.Descriptor(), "风格：") {
			t.Fatalf("descriptor for %s missing summary: %q", d, p.Descriptor())
		}
	}
	if _, ok := a.Profile(General); ok {
		t.Fatal("general must not have a profile")
	}
}

func TestApplyDefaultsToIdentity(t *testing.T) {
	a := NewAdvisor()
	text := "说白了，这事不难。"
	for _, d := range Domains {
		if got := a.Apply(d, text); got != text {
			t.Fatalf("%s: expected identity, got %q", d, got)
		}
	}
	if got := a.Apply(Domain("poetry"), text); got != text {
		t.Fatalf("unknown domain: expected identity, got %q", got)
	}
}

func TestApplyUsesRegisteredStrategy(t *testing.T) {
	var seen Profile
	a := NewAdvisor(WithStrategy(Tech, StrategyFunc(func(text string, p Profile) string {
		seen = p
		return strings.ToUpper(text)
	})))
	if got := a.Apply(Tech, "abc"); got != "ABC" {
		t.Fatalf("expected strategy output, got %q", got)
	}
	if seen.Domain != Tech {
		t.Fatalf("strategy received wrong profile: %+v", seen)
	}
	if got := a.Apply(Essay, "abc"); got != "abc" {
		t.Fatalf("other domains must stay identity, got %q", got)
	}
}

func TestApplyWithoutProfileSkipsStrategy(t *testing.T) {
	called := false
	a := NewAdvisor(WithStrategy(General, StrategyFunc(func(text string, _ Profile) string {
		called = true
		return ""
	})))
	if got := a.Apply(General, "keep"); got != "keep" || called {
		t.Fatalf("strategy must not run without a profile (got %q, called=%v)", got, called)
	}
}

func TestRewritePrompt(t *testing.T) {
	a := NewAdvisor()
	prompt := a.RewritePrompt(Business, "  原文内容  ")
	if !strings.Contains(prompt, "商业分析风格") || !strings.HasSuffix(prompt, "原文内容") {
		t.Fatalf("unexpected prompt:\n%s", prompt)
	}
	if a.RewritePrompt(General, "x") != "" {
		t.Fatal("expected empty prompt for general")
	}
}
