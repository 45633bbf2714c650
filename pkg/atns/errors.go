package atns

import "fmt"

// NumberAgreement is returned when a determiner and its head noun
// disagree on number: a singular determiner with a plural noun, or a
// numeric (>1) / plural determiner with a singular noun. The offending
// NP hypothesis is dropped; sibling hypotheses continue unaffected.
type NumberAgreement struct {
	Determiner string
	Noun       string
}

func (e *NumberAgreement) Error() string {
	return fmt.Sprintf("number agreement: determiner %q disagrees with noun %q", e.Determiner, e.Noun)
}
