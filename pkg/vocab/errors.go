package vocab

import "fmt"

// UnknownToken reports that lookup could not resolve surface to any
// vocabulary entry or inflected form of one.
type UnknownToken struct {
	Surface string
}

func (e *UnknownToken) Error() string {
	return fmt.Sprintf("vocab: unknown token %q", e.Surface)
}

// NewUnknownToken builds an UnknownToken for surface.
func NewUnknownToken(surface string) error {
	return &UnknownToken{Surface: surface}
}
