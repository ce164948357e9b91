package rewrite

import (
	"strings"
	"testing"

	"flavor_remover/internal/lexicon"
	"flavor_remover/internal/style"
	"flavor_remover/internal/tier"
)

type fixedDecider struct {
	insert bool
	pick   int
	calls  int
}

func (d *fixedDecider) Insert() bool {
	d.calls++
	return d.insert
}

func (d *fixedDecider) Pick(int) int { return d.pick }

func never() *fixedDecider { return &fixedDecider{} }

func emptyLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.New(nil, nil)
	if err != nil {
		t.Fatalf("empty lexicon: %v", err)
	}
	return lex
}

// longBody has more than 20 runes and no markers.
const longBody = "这是一个足够长的句子用来测试口语化插入的效果是否正常"

func TestLightEndToEnd(t *testing.T) {
	r := New(nil, WithDecider(never()))
	in := "值得注意的是，这个方法很有效。首先，我们需要准备数据。"
	want := "有意思的是，这个方法很有效。先来说说，我们需要准备数据。"
	if got := r.Light(in); got != want {
		t.Fatalf("light mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestLightConnectiveRules(t *testing.T) {
	r := New(emptyLexicon(t), WithDecider(never()))
	in := "首先，我们开始。其次，继续。最后，结束。"
	want := "先来说说我们开始。再说继续。最后说说结束。"
	if got := r.Light(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := r.Light("首先我们开始"); got != "首先我们开始" {
		t.Fatalf("connective without comma must not change, got %q", got)
	}
}

func TestLightIsIdentityOnCleanText(t *testing.T) {
	r := New(nil, WithDecider(never()))
	for _, text := range []string{"", "今天天气很好。我们去公园。", "plain english, first, second."} {
		if got := r.Light(text); got != text {
			t.Fatalf("expected %q unchanged, got %q", text, got)
		}
	}
}

func TestLightIsDeterministic(t *testing.T) {
	r := New(nil)
	text := "综上所述，显而易见。不难发现，换句话说就是这样。"
	if a, b := r.Light(text), r.Light(text); a != b {
		t.Fatalf("light must be deterministic: %q vs %q", a, b)
	}
}

func TestLightUsesSecondCandidateWhenFirstEmpty(t *testing.T) {
	lex, err := lexicon.New([]lexicon.Entry{
		{Marker: "删掉我", Candidates: []string{""}},
		{Marker: "换掉我", Candidates: []string{"", "新词"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := New(lex, WithDecider(never()))
	if got := r.Light("删掉我，换掉我。"); got != "，新词。" {
		t.Fatalf("got %q", got)
	}
}

func TestMediumInsertsCasualLeadInAtEveryThirdPosition(t *testing.T) {
	text := "一。二。三。 " + longBody + "。"
	d := &fixedDecider{insert: true, pick: 1}
	r := New(emptyLexicon(t), WithDecider(d))

	got := r.Medium(text)
	want := "一。二。三。说实话，" + longBody + "。"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if d.calls != 1 {
		t.Fatalf("expected exactly one insertion decision, got %d", d.calls)
	}
}

func TestMediumSkipsShortAndFirstSegments(t *testing.T) {
	d := &fixedDecider{insert: true}
	r := New(emptyLexicon(t), WithDecider(d))

	text := longBody + "。二。三。短句。"
	if got := r.Medium(text); got != text {
		t.Fatalf("expected no change, got %q", got)
	}
	if d.calls != 0 {
		t.Fatalf("expected no decisions, got %d", d.calls)
	}
}

func TestMediumDeclinedInsertionLeavesSegment(t *testing.T) {
	text := "一。二。三。" + longBody + "。"
	r := New(emptyLexicon(t), WithDecider(&fixedDecider{insert: false}))
	if got := r.Medium(text); got != text {
		t.Fatalf("expected unchanged, got %q", got)
	}
}

func TestMediumConnectives(t *testing.T) {
	r := New(emptyLexicon(t), WithDecider(never()))
	got := r.Medium("此外，a。然而，b。因此，c。")
	if got != "还有，a。但是，b。所以，c。" {
		t.Fatalf("got %q", got)
	}
}

func TestMediumNeverSkipsLight(t *testing.T) {
	inputs := []string{
		"首先，准备。其次，执行。最后，复盘。",
		"值得注意的是，这个方法很有效。首先，我们需要准备数据。",
		"综上所述，此外，然而，因此，都要改。",
	}
	for _, lex := range []*lexicon.Lexicon{nil, emptyLexicon(t)} {
		r := New(lex, WithDecider(never()))
		for _, in := range inputs {
			want := replaceAll(r.Light(in), mediumConnectives)
			if got := r.Medium(in); got != want {
				t.Fatalf("medium must build on light for %q:\n got: %q\nwant: %q", in, got, want)
			}
		}
	}
}

func TestHeavyEqualsMediumForEveryDomain(t *testing.T) {
	text := strings.Repeat("值得注意的是，"+longBody+"。此外，还有很多事情要做。", 6)
	domains := append([]style.Domain{style.Domain("unknown")}, style.Domains...)
	for _, d := range domains {
		heavy := New(nil, WithDomain(d), WithDecider(NewRandomDecider(7))).Heavy(text)
		medium := New(nil, WithDomain(d), WithDecider(NewRandomDecider(7))).Medium(text)
		if heavy != medium {
			t.Fatalf("%s: heavy diverged from medium:\n heavy: %q\nmedium: %q", d, heavy, medium)
		}
	}
}

func TestHeavyRunsRegisteredStrategy(t *testing.T) {
	adv := style.NewAdvisor(style.WithStrategy(style.Tech, style.StrategyFunc(func(text string, _ style.Profile) string {
		return text + "[tech]"
	})))
	r := New(emptyLexicon(t), WithDomain(style.Tech), WithAdvisor(adv), WithDecider(never()))
	if got := r.Heavy("好。"); got != "好。[tech]" {
		t.Fatalf("got %q", got)
	}
}

func TestRewriteDispatch(t *testing.T) {
	r := New(emptyLexicon(t), WithDecider(never()))
	in := "首先，此外，好。"
	if got := r.Rewrite(in, tier.Light); got != "先来说说此外，好。" {
		t.Fatalf("light dispatch: %q", got)
	}
	if got := r.Rewrite(in, tier.Mode("bogus")); got != "先来说说还有，好。" {
		t.Fatalf("unknown mode should run medium, got %q", got)
	}
	if got := r.Rewrite("", tier.Heavy); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}

func TestPreservePatternsSurviveEveryTier(t *testing.T) {
	p, err := CompilePreserve([]string{"综上所述", `/v\d+\.\d+/`})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	r := New(nil, WithPreserver(p), WithDecider(never()))
	in := "综上所述，v1.2 版本很好。因此我们升级到 v2.0。"
	for _, m := range tier.All {
		got := r.Rewrite(in, m)
		if !strings.HasPrefix(got, "综上所述，v1.2") || !strings.Contains(got, "v2.0") {
			t.Fatalf("%s: preserved spans altered: %q", m, got)
		}
		if strings.Contains(got, "因此") {
			t.Fatalf("%s: unpreserved marker should still be rewritten: %q", m, got)
		}
	}
}

func TestForkUsesNewDecider(t *testing.T) {
	text := "一。二。三。" + longBody + "。"
	base := New(emptyLexicon(t), WithDecider(never()))
	forked := base.Fork(&fixedDecider{insert: true, pick: 0})

	if got := base.Medium(text); got != text {
		t.Fatalf("base rewriter changed: %q", got)
	}
	if got := forked.Medium(text); !strings.Contains(got, "其实，"+longBody) {
		t.Fatalf("forked rewriter should insert lead-in, got %q", got)
	}
}
