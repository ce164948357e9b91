package rewrite

import (
	"strings"
	"unicode"
)

// LeadIns are the colloquial openers the casual-insertion step prepends.
var LeadIns = []string{"其实", "说实话", "说白了", "你会发现"}

func casualTouch(sentence string, d Decider) string {
	if d == nil || !d.Insert() {
		return sentence
	}
	lead := LeadIns[d.Pick(len(LeadIns))]
	return lead + "，" + strings.TrimLeftFunc(sentence, unicode.IsSpace)
}
