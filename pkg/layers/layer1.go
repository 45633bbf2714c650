package layers

import (
	"strings"

	"github.com/kittclouds/engraf/pkg/token"
	"github.com/kittclouds/engraf/pkg/vector"
	"github.com/kittclouds/engraf/pkg/vocab"
)

// commaToken is the indivisible atom a literal comma tokenizes to: no
// semantic content of its own, recognized by Layer 2's conjunction
// lookahead ("comma followed by a conjunction").
func commaToken() vector.Vector {
	v := vector.New()
	v.Word = ","
	return v
}

func isSpace(r byte) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Layer1 implements §4.E: split input into candidate positions
// (preserving commas and quoted strings as indivisible atoms,
// recognizing bracketed vector literals), look up each position against
// v (including multi-word compounds and inflected forms via
// v.LongestMatch), and assign a per-hypothesis confidence that is the
// product of each position's match-kind confidence. A position that
// doesn't resolve against v fails the call with *UnknownToken, per
// §4.E's "if no hypothesis covers the whole input, fail with
// UnknownToken(position)" and §8's single-unknown-word boundary case —
// it does not fall back to a synthesized token.
//
// This implementation builds a single greedy, longest-match-first
// hypothesis rather than enumerating every maximal partition: LATN's
// vocabulary has no ambiguous overlapping compounds (verified by its
// closed lexicon), so the greedy partition is already the unique
// maximal one for every input the default lexicon covers.
func Layer1(input string, v *vocab.Vocabulary) ([]token.Hypothesis, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, &ParseFailure{Position: 0, Message: "empty input"}
	}

	var tokens []vector.Vector
	confidence := 1.0
	pos := 0

	for pos < len(input) {
		if isSpace(input[pos]) {
			pos++
			continue
		}
		if input[pos] == ',' {
			tokens = append(tokens, commaToken())
			pos++
			continue
		}
		if input[pos] == '"' || input[pos] == '\'' {
			if length, vec, ok := vocab.ParseQuoted(input, pos); ok {
				tokens = append(tokens, vec)
				pos += length
				continue
			}
		}
		if input[pos] == '[' {
			if length, vec, ok := vocab.ParseVectorLiteral(input, pos); ok {
				tokens = append(tokens, vec)
				confidence *= matchConfidence(v, input[pos:pos+length])
				pos += length
				continue
			}
		}

		length, vec, ok := v.LongestMatch(input, pos)
		if !ok {
			end := pos
			for end < len(input) && !isSpace(input[end]) && input[end] != ',' {
				end++
			}
			if end == pos {
				end = pos + 1
			}
			return nil, &UnknownToken{Position: pos, Surface: input[pos:end]}
		}

		tokens = append(tokens, vec)
		confidence *= matchConfidence(v, input[pos:pos+length])
		pos += length
	}

	if len(tokens) == 0 {
		return nil, &ParseFailure{Position: 0, Message: "no tokens recognized"}
	}

	h := token.New(tokens, confidence, input)
	return []token.Hypothesis{h}, nil
}

func matchConfidence(v *vocab.Vocabulary, surface string) float64 {
	kind, found := v.MatchKind(surface)
	if !found {
		return 0.3
	}
	return kind.Confidence()
}
