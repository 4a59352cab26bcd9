// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring: fewer than 3 vertices would need a
// self-loop or a repeated pair.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one rate.
const MinPathNodes = 2

// MinStarNodes is one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-ring plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1 (a single isolated vertex).
const MinCompleteNodes = 1

// MinPartitionSize is the smallest side of a bipartite graph.
const MinPartitionSize = 1

// MinGridDim is the smallest allowed rows or cols for a Grid.
// A 1×1 grid has no rates, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
