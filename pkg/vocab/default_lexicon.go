package vocab

import "github.com/kittclouds/engraf/pkg/vector"

// NewDefaultVocabulary builds a Vocabulary pre-populated with the closed,
// scene-description lexicon ENGRAF operates over: determiners, pronouns,
// prepositions (including the multi-word compounds Layer 1 must prefer a
// longest match for), conjunctions, to-be forms, scene-manipulation verbs,
// spatial/appearance adjectives and their scale/color content, and common
// scene-object nouns. Grouped loading of word lists by part of speech
// follows the shape of the teacher's chunker.loadDefaultLexicon.
func NewDefaultVocabulary() *Vocabulary {
	v := New()

	def := func(word string, features map[vector.Dim]float64) {
		v.Define(word, vector.WithFeatures(features))
	}

	// Determiners. Plural-compatible determiners set plural=1 so the NP
	// ATN's number-agreement check treats "these"/"those"/"some"/... as
	// requiring a plural noun.
	singularDet := []string{"a", "an", "the", "this", "that", "every", "each", "no"}
	for _, w := range singularDet {
		def(w, map[vector.Dim]float64{vector.DimDet: 1, vector.DimSingular: 1})
	}
	pluralDet := []string{"these", "those", "some", "many", "all", "both", "few", "most"}
	for _, w := range pluralDet {
		def(w, map[vector.Dim]float64{vector.DimDet: 1, vector.DimPlural: 1})
	}
	def("two", map[vector.Dim]float64{vector.DimDet: 1, vector.DimPlural: 1, vector.DimQuantity: 2})
	def("three", map[vector.Dim]float64{vector.DimDet: 1, vector.DimPlural: 1, vector.DimQuantity: 3})

	// Pronouns.
	def("it", map[vector.Dim]float64{vector.DimPronoun: 1, vector.DimSingular: 1})
	def("them", map[vector.Dim]float64{vector.DimPronoun: 1, vector.DimPlural: 1})
	def("they", map[vector.Dim]float64{vector.DimPronoun: 1, vector.DimPlural: 1})

	// To-be / auxiliary.
	for _, w := range []string{"is", "are", "was", "were", "be", "been", "being", "am"} {
		def(w, map[vector.Dim]float64{vector.DimToBe: 1, vector.DimVerb: 1})
	}

	// Conjunctions.
	def("and", map[vector.Dim]float64{vector.DimConj: 1})
	def("or", map[vector.Dim]float64{vector.DimConj: 1, vector.DimDisj: 1})
	def("not", map[vector.Dim]float64{vector.DimNeg: 1})

	// Prepositions, single-word and compound. Compounds are distinct
	// entries keyed by their exact joined surface.
	spatial := map[string]vector.Dim{
		"on": vector.DimSpatialLocation, "in": vector.DimSpatialLocation,
		"under": vector.DimSpatialLocation, "below": vector.DimSpatialLocation,
		"above": vector.DimSpatialLocation, "behind": vector.DimSpatialLocation,
	}
	for w, d := range spatial {
		def(w, map[vector.Dim]float64{vector.DimPrep: 1, d: 1})
	}
	proximal := []string{"beside", "near"}
	for _, w := range proximal {
		def(w, map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialProximity: 1})
	}
	def("next to", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialProximity: 1})
	def("in front of", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialLocation: 1})
	def("left of", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialLocation: 1})
	def("right of", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialLocation: 1})
	def("to", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimDirectionalTarget: 1})
	def("by", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimDirectionalAgency: 1})
	def("of", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimRelationalPossession: 1})
	def("like", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimRelationalComparison: 1})
	def("at", map[vector.Dim]float64{vector.DimPrep: 1, vector.DimSpatialLocation: 1})

	// Adverbs (intensity scaling applied to an adjacent adjective).
	for w, scale := range map[string]float64{
		"very": 1.5, "really": 1.6, "slightly": 1.15, "somewhat": 1.2, "extremely": 2,
	} {
		def(w, map[vector.Dim]float64{vector.DimAdv: scale})
	}

	// Scene-manipulation verbs.
	def("draw", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimCreate: 1})
	def("create", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimCreate: 1})
	def("make", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimCreate: 1, vector.DimTransform: 1})
	def("add", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimCreate: 1})
	def("move", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimMove: 1})
	def("put", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimMove: 1})
	def("place", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimMove: 1})
	def("rotate", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimRotate: 1})
	def("turn", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimRotate: 1})
	def("scale", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimScale: 1, vector.DimTransform: 1})
	def("resize", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimScale: 1, vector.DimTransform: 1})
	def("color", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimStyle: 1, vector.DimTransform: 1})
	def("paint", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimStyle: 1, vector.DimTransform: 1})
	def("group", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimOrganize: 1})
	def("select", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimSelect: 1})
	def("name", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimNaming: 1})
	def("delete", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimEdit: 1})
	def("remove", map[vector.Dim]float64{vector.DimVerb: 1, vector.DimEdit: 1})

	// Colors (strong signal: full-strength channel).
	colors := map[string][3]float64{
		"red": {1, 0, 0}, "green": {0, 1, 0}, "blue": {0, 0, 1},
		"yellow": {1, 1, 0}, "purple": {0.6, 0, 0.8}, "white": {1, 1, 1},
		"black": {0, 0, 0}, "orange": {1, 0.5, 0},
	}
	for w, rgb := range colors {
		def(w, map[vector.Dim]float64{
			vector.DimAdj: 1, vector.DimRed: rgb[0], vector.DimGreen: rgb[1], vector.DimBlue: rgb[2],
		})
	}

	// Scale adjectives.
	def("big", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 2, vector.DimScaleY: 2, vector.DimScaleZ: 2})
	def("large", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 2, vector.DimScaleY: 2, vector.DimScaleZ: 2})
	def("small", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 0.5, vector.DimScaleY: 0.5, vector.DimScaleZ: 0.5})
	def("tiny", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 0.3, vector.DimScaleY: 0.3, vector.DimScaleZ: 0.3})
	def("tall", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleY: 2})
	def("short", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleY: 0.5})
	def("wide", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 2})
	def("bigger", map[vector.Dim]float64{vector.DimAdj: 1, vector.DimScaleX: 2, vector.DimScaleY: 2, vector.DimScaleZ: 2})

	// Nouns: scene object kinds.
	for _, w := range []string{"cube", "sphere", "cylinder", "cone", "pyramid", "box", "ball", "plane", "torus"} {
		def(w, map[vector.Dim]float64{vector.DimNoun: 1, vector.DimSingular: 1})
	}

	v.Build()
	return v
}
