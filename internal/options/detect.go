package options

import "github.com/cwbudde/go-uncgo/internal/chunk"

// Detector is the `detect_options` contract: given an already-tokenized chunk
// list, propose values for a subset of options by observing the
// file's existing style, and write only those proposals into a Set.
// The autodetection heuristics themselves (majority-vote brace style,
// predominant indent width, and so on) are an external collaborator;
// the dump-options command runs one for --detect and merges its
// proposals with ApplyDetected.
type Detector interface {
	Detect(list *chunk.List) map[string]Value
}

// ApplyDetected merges a detector's proposals into s, only for names
// s already has registered (an unrecognized proposed name is dropped
// rather than erroring, since detectors may propose options a given
// build doesn't carry).
func ApplyDetected(s *Set, proposed map[string]Value) {
	for name, v := range proposed {
		if sp, ok := s.specs[name]; ok && sp.Kind == v.Kind {
			s.values[name] = v
		}
	}
}

// SimpleDetector is a minimal Detector implementation backing `uncgo
// dump-options --detect`: it proposes
// indent_columns from the most common leading indent (1 to 8 columns)
// of first-on-line chunks. That is the only option it proposes; it
// does not propose nl_end_of_file or attempt the full battery of style
// heuristics (brace style voting, comment alignment, ...).
type SimpleDetector struct{}

// Detect implements Detector.
func (SimpleDetector) Detect(list *chunk.List) map[string]Value {
	counts := map[int]int{}
	atLineStart := true
	col := 0
	for c := list.Head(); c != nil; c = chunk.Next(c) {
		if c.IsNewline() {
			atLineStart = true
			col = 0
			continue
		}
		if atLineStart {
			if c.OrigCol-1 > 0 {
				counts[c.OrigCol-1]++
			}
			atLineStart = false
		}
		_ = col
	}

	proposed := map[string]Value{}
	if best, ok := majority(counts); ok {
		proposed["indent_columns"] = UInt(uint64(best))
	}
	return proposed
}

func majority(counts map[int]int) (int, bool) {
	best, bestN := 0, 0
	for width, n := range counts {
		if width <= 0 || width > 8 {
			continue
		}
		if n > bestN {
			best, bestN = width, n
		}
	}
	return best, bestN > 0
}
