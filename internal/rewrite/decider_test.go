package rewrite

import "testing"

func TestRandomDeciderIsReproducibleWithSeed(t *testing.T) {
	a, b := NewRandomDecider(99), NewRandomDecider(99)
	for i := 0; i < 50; i++ {
		if a.Insert() != b.Insert() {
			t.Fatalf("decision %d diverged", i)
		}
		if a.Pick(len(LeadIns)) != b.Pick(len(LeadIns)) {
			t.Fatalf("pick %d diverged", i)
		}
	}
}

func TestRandomDeciderProbability(t *testing.T) {
	d := NewRandomDecider(1)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if d.Insert() {
			hits++
		}
	}
	rate := float64(hits) / n
	if rate < 0.27 || rate > 0.33 {
		t.Fatalf("expected insertion rate near %.2f, got %.3f", InsertProbability, rate)
	}
}

func TestRandomDeciderPickRange(t *testing.T) {
	d := NewUnseededDecider()
	for i := 0; i < 100; i++ {
		if p := d.Pick(4); p < 0 || p >= 4 {
			t.Fatalf("pick out of range: %d", p)
		}
	}
	if d.Pick(0) != 0 || d.Pick(1) != 0 {
		t.Fatal("degenerate picks must return 0")
	}
}

func TestCasualTouchTrimsLeadingSpace(t *testing.T) {
	got := casualTouch("  \t这句话", &fixedDecider{insert: true, pick: 3})
	if got != "你会发现，这句话" {
		t.Fatalf("got %q", got)
	}
	if got := casualTouch(" 原样", nil); got != " 原样" {
		t.Fatalf("nil decider must leave sentence, got %q", got)
	}
}
