package models

// ============================================================================
// STAGE SLUGS
// ============================================================================

// Well-known stage slugs. The remote service may define others; these are
// the ones with a dedicated accent colour.
const (
	StageNew       = "new"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageRejected  = "rejected"
	StageHired     = "hired"
)

// ============================================================================
// MOVE DIRECTION
// ============================================================================

// Direction is a relative stage transition resolved against the stage order
type Direction int

const (
	// NoDirection means the move names an explicit target stage
	NoDirection Direction = iota
	// Forward moves to the next stage (right)
	Forward
	// Backward moves to the previous stage (left)
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// ParseDirection maps CLI words to a direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next", "forward":
		return Forward, true
	case "prev", "previous", "backward":
		return Backward, true
	default:
		return NoDirection, false
	}
}
