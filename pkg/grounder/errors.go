package grounder

// Re-export scene's NoReferent under this package too, since callers
// reasoning about grounding failures import pkg/grounder, not
// pkg/scene, for the error type.
import "github.com/kittclouds/engraf/pkg/scene"

type NoReferent = scene.NoReferent
