package chunk

import "strings"

// Terminators is the sentence-final punctuation set the splitter cuts on.
const Terminators = "。！？"

type Segment struct {
	Index      int
	Text       string
	Terminator bool
}

// Sentences splits text into alternating body and terminator segments,
// keeping each terminator as its own segment. Bodies sit at even indexes
// and terminators at odd ones; bodies may be empty. Joining every segment's
// Text reproduces the input exactly.
func Sentences(text string) []Segment {
	segments := make([]Segment, 0, strings.Count(text, "。")*2+1)
	start := 0
	for i, r := range text {
		if !strings.ContainsRune(Terminators, r) {
			continue
		}
		segments = append(segments, Segment{Index: len(segments), Text: text[start:i]})
		end := i + len(string(r))
		segments = append(segments, Segment{Index: len(segments), Text: text[i:end], Terminator: true})
		start = end
	}
	segments = append(segments, Segment{Index: len(segments), Text: text[start:]})
	return segments
}

func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
