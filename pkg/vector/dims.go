// Package vector implements the fixed-dimension signed-real vector space
// that every lexical and phrasal entity in ENGRAF is represented as.
//
// The dimension catalog is declared once, as a closed enum, rather than
// grown at runtime: adding a dimension means editing this file, never
// monkey-patching a map at parse time.
package vector

// Dim names one axis of the vector space. Dimensions are partitioned into
// POS dimensions (categorical/boolean markers) and semantic dimensions
// (continuous-valued content); IsPOS/IsSemantic report which partition a
// Dim belongs to.
type Dim int

const (
	// --- POS dimensions ---
	DimVerb Dim = iota
	DimNoun
	DimAdj
	DimAdv
	DimPrep
	DimDet
	DimConj
	DimDisj
	DimNeg
	DimModal
	DimQuestion
	DimNP
	DimPP
	DimVP
	DimSP
	DimPronoun
	DimProperNoun
	DimPlural
	DimSingular
	DimComp
	DimSuper
	DimQuoted
	DimUnknown
	DimToBe
	DimVectorLiteral
	DimAnd
	DimOr

	// --- inflection markers (grouped with POS: categorical, not content) ---
	DimVerbPast
	DimVerbPastPart
	DimVerbPresentPart

	posBoundary // sentinel: dims below this are POS, from here on semantic

	// --- spatial / appearance semantics ---
	DimLocX
	DimLocY
	DimLocZ
	DimScaleX
	DimScaleY
	DimScaleZ
	DimRotX
	DimRotY
	DimRotZ
	DimRed
	DimGreen
	DimBlue
	DimTexture
	DimTransparency

	// --- verb-intent categories ---
	DimCreate
	DimTransform
	DimMove
	DimRotate
	DimScale
	DimStyle
	DimOrganize
	DimEdit
	DimSelect
	DimNaming

	// --- preposition semantics ---
	DimSpatialLocation
	DimSpatialProximity
	DimDirectionalTarget
	DimDirectionalAgency
	DimRelationalPossession
	DimRelationalComparison

	// --- misc semantic ---
	DimQuantity

	dimCount // sentinel, must be last
)

// IsPOS reports whether d is a categorical/boolean part-of-speech dimension.
func (d Dim) IsPOS() bool { return d >= 0 && d < posBoundary }

// IsSemantic reports whether d is a continuous-valued semantic dimension.
func (d Dim) IsSemantic() bool { return d > posBoundary && d < dimCount }

// valid reports whether d indexes a real dimension.
func (d Dim) valid() bool { return d >= 0 && d < dimCount && d != posBoundary }

var dimNames = map[Dim]string{
	DimVerb: "verb", DimNoun: "noun", DimAdj: "adj", DimAdv: "adv",
	DimPrep: "prep", DimDet: "det", DimConj: "conj", DimDisj: "disj",
	DimNeg: "neg", DimModal: "modal", DimQuestion: "question",
	DimNP: "NP", DimPP: "PP", DimVP: "VP", DimSP: "SP",
	DimPronoun: "pronoun", DimProperNoun: "proper_noun",
	DimPlural: "plural", DimSingular: "singular",
	DimComp: "comp", DimSuper: "super", DimQuoted: "quoted",
	DimUnknown: "unknown", DimToBe: "tobe", DimVectorLiteral: "vector",
	DimAnd: "and", DimOr: "or",
	DimVerbPast: "verb_past", DimVerbPastPart: "verb_past_part",
	DimVerbPresentPart: "verb_present_part",

	DimLocX: "locX", DimLocY: "locY", DimLocZ: "locZ",
	DimScaleX: "scaleX", DimScaleY: "scaleY", DimScaleZ: "scaleZ",
	DimRotX: "rotX", DimRotY: "rotY", DimRotZ: "rotZ",
	DimRed: "red", DimGreen: "green", DimBlue: "blue",
	DimTexture: "texture", DimTransparency: "transparency",

	DimCreate: "create", DimTransform: "transform", DimMove: "move",
	DimRotate: "rotate", DimScale: "scale", DimStyle: "style",
	DimOrganize: "organize", DimEdit: "edit", DimSelect: "select",
	DimNaming: "naming",

	DimSpatialLocation:      "spatial_location",
	DimSpatialProximity:     "spatial_proximity",
	DimDirectionalTarget:    "directional_target",
	DimDirectionalAgency:    "directional_agency",
	DimRelationalPossession: "relational_possession",
	DimRelationalComparison: "relational_comparison",

	DimQuantity: "quantity",
}

var dimByName map[string]Dim

func init() {
	dimByName = make(map[string]Dim, len(dimNames))
	for d, n := range dimNames {
		dimByName[n] = d
	}
}

// String returns the catalog name of d, or "?" for an unrecognized value.
func (d Dim) String() string {
	if n, ok := dimNames[d]; ok {
		return n
	}
	return "?"
}

// LookupDim resolves a dimension by its catalog name, for vocabulary
// entries and other data-driven callers that name dimensions as strings.
func LookupDim(name string) (Dim, bool) {
	d, ok := dimByName[name]
	return d, ok
}

// ColorDims lists the dimensions the grounder treats as color channels.
var ColorDims = []Dim{DimRed, DimGreen, DimBlue}

// ScaleDims lists the dimensions the grounder treats as size/scale channels.
var ScaleDims = []Dim{DimScaleX, DimScaleY, DimScaleZ}

// LocationDims lists the dimensions the grounder treats as position channels.
var LocationDims = []Dim{DimLocX, DimLocY, DimLocZ}
