package layers

// ConfidenceCoefficients names the tunable confidence multipliers used
// across Layers 2-5, kept as configuration per §9's Open Question
// rather than hard-coded literals, so callers can re-tune them without
// touching layer logic.
type ConfidenceCoefficients struct {
	// LayerAdvance is applied once per layer to every hypothesis that
	// layer's coordinate() pass outputs, whether or not a phrase was
	// built (§4.F step 3's constant 1.05 factor).
	LayerAdvance float64
	// PhraseLevelCoordinationBonus (×1.15) rewards the phrase-level
	// variant when it built a ConjunctionPhrase.
	PhraseLevelCoordinationBonus float64
	// LocalCoordinationPenalty (×0.95) applies to the local variant when
	// it saw a coordination opportunity and did not build a chain.
	LocalCoordinationPenalty float64
	// PPAttachmentPenalty (0.05 per non-null attachment) is subtracted,
	// not multiplied, from confidence during Layer 3's PP-attachment
	// enumeration.
	PPAttachmentPenalty float64
	// SpatialDropThreshold is the average spatial score below which a
	// PP-attachment combination is dropped entirely.
	SpatialDropThreshold float64
}

// DefaultConfidenceCoefficients returns the coefficients spec.md names
// literally.
func DefaultConfidenceCoefficients() ConfidenceCoefficients {
	return ConfidenceCoefficients{
		LayerAdvance:                 1.05,
		PhraseLevelCoordinationBonus: 1.15,
		LocalCoordinationPenalty:     0.95,
		PPAttachmentPenalty:          0.05,
		SpatialDropThreshold:         0.3,
	}
}

// Options bundles the §6 "options" bag every execute_layer_k call takes,
// as a plain struct with a Default constructor, the way
// pkg/resorank.ResoRankConfig/DefaultConfig() is built.
// BuildPhraseLevelCoordination is not read by the layers: every layer
// builds both the phrase-level and the local variant.
type Options struct {
	EnableSemanticGrounding      bool
	ReturnAllMatches             bool
	MaxHypotheses                int
	BuildPhraseLevelCoordination bool
	Confidence                   ConfidenceCoefficients
}

// DefaultOptions returns the spec's documented defaults: grounding on,
// top-24 hypothesis bound, both coordination strategies attempted.
func DefaultOptions() Options {
	return Options{
		EnableSemanticGrounding:      true,
		ReturnAllMatches:             false,
		MaxHypotheses:                24,
		BuildPhraseLevelCoordination: true,
		Confidence:                   DefaultConfidenceCoefficients(),
	}
}
