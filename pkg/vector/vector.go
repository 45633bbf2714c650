package vector

// PhraseRef is the minimal back-pointer surface a composite token's vector
// carries to the phrase record that produced it. It is declared here,
// rather than importing pkg/phrase, to avoid a dependency cycle (phrase
// vectors live inside phrase.Phrase implementations).
type PhraseRef interface {
	PrintString() string
	OriginalText() string
}

// Vector is a fixed-length array of signed reals indexed by named
// dimensions (see dims.go), plus the optional surface word and phrase
// back-pointer every lexical or composite token carries.
type Vector struct {
	values [dimCount]float64
	Word   string
	Phrase PhraseRef
}

// New returns a zero vector.
func New() Vector {
	return Vector{}
}

// WithFeatures builds a vector from a set of initial dimension values.
// Keys are not validated: a Dim outside the catalog panics with an
// index-out-of-range error.
func WithFeatures(features map[Dim]float64) Vector {
	v := New()
	for d, val := range features {
		v.values[d] = val
	}
	return v
}

// Get reads the value at d. Reading an unknown dimension yields 0.
func (v Vector) Get(d Dim) float64 {
	if !d.valid() {
		return 0
	}
	return v.values[d]
}

// Set writes x at d. Writing an unknown dimension fails with
// *UnknownDimension.
func (v *Vector) Set(d Dim, x float64) error {
	if !d.valid() {
		return &UnknownDimension{Name: d.String()}
	}
	v.values[d] = x
	return nil
}

// SetByName resolves name against the dimension catalog and writes x,
// for data-driven callers (vocabulary loading) that don't have a Dim
// constant in hand.
func (v *Vector) SetByName(name string, x float64) error {
	d, ok := LookupDim(name)
	if !ok {
		return &UnknownDimension{Name: name}
	}
	return v.Set(d, x)
}

// Isa is the predicate "value at dim > 0".
func (v Vector) Isa(d Dim) bool {
	return v.Get(d) > 0
}

// ScalarProjection returns v[dim]; an alias for Get used by callers that
// think of this as "projecting" the vector onto one axis.
func (v Vector) ScalarProjection(d Dim) float64 {
	return v.Get(d)
}

// NonZeroDims returns every dimension with a non-zero value, in catalog
// order.
func (v Vector) NonZeroDims() []Dim {
	var out []Dim
	for d := Dim(0); d < dimCount; d++ {
		if d == posBoundary {
			continue
		}
		if v.values[d] != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	out := v
	return out
}

// Float32 exports every dimension as a fixed-length []float32, in catalog
// order, for callers (pkg/index's HNSW pre-filter) that need a plain
// numeric vector rather than named-dimension access.
func (v Vector) Float32() []float32 {
	out := make([]float32, dimCount)
	for d := Dim(0); d < dimCount; d++ {
		out[d] = float32(v.values[d])
	}
	return out
}

// Dims reports the fixed dimensionality every Vector carries.
func Dims() int { return int(dimCount) }

// Add returns the element-wise sum of v and w. The Word and Phrase of the
// result are left unset; composite-token construction (pkg/token) fills
// those in once the composing phrase is known.
func (v Vector) Add(w Vector) Vector {
	var out Vector
	for d := Dim(0); d < dimCount; d++ {
		out.values[d] = v.values[d] + w.values[d]
	}
	return out
}

// Sub returns the element-wise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	var out Vector
	for d := Dim(0); d < dimCount; d++ {
		out.values[d] = v.values[d] - w.values[d]
	}
	return out
}

// Scale returns v with every dimension multiplied by s (adverb scaling of
// an adjective's contribution).
func (v Vector) Scale(s float64) Vector {
	out := v
	for d := Dim(0); d < dimCount; d++ {
		out.values[d] *= s
	}
	return out
}

// Mask restricts an equality comparison to one partition of the space.
type Mask int

const (
	// MaskAll compares every dimension.
	MaskAll Mask = iota
	// MaskSemantic compares only semantic dimensions.
	MaskSemantic
	// MaskPOS compares only POS dimensions.
	MaskPOS
)

func (m Mask) includes(d Dim) bool {
	switch m {
	case MaskSemantic:
		return d.IsSemantic()
	case MaskPOS:
		return d.IsPOS()
	default:
		return true
	}
}

// Equals reports whether v and w agree on every dimension, plus Word.
func (v Vector) Equals(w Vector) bool {
	return v.EqualsMasked(w, MaskAll) && v.Word == w.Word
}

// EqualsMasked reports whether v and w agree on every dimension selected
// by mask. Word is not compared; use Equals for full equality.
func (v Vector) EqualsMasked(w Vector, mask Mask) bool {
	for d := Dim(0); d < dimCount; d++ {
		if d == posBoundary || !mask.includes(d) {
			continue
		}
		if v.values[d] != w.values[d] {
			return false
		}
	}
	return true
}
