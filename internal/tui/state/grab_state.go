package state

import "github.com/thenoetrevino/hirepaso/internal/types"

// GrabState tracks a card picked up for a drag-style move.
// The card stays in its stage until it is dropped on another one.
type GrabState struct {
	applicationID types.ApplicationID
	fromStage     string
	active        bool
}

func NewGrabState() *GrabState {
	return &GrabState{}
}

// Grab picks up the card with id from the stage slug.
func (s *GrabState) Grab(id types.ApplicationID, fromStage string) {
	s.applicationID = id
	s.fromStage = fromStage
	s.active = true
}

func (s *GrabState) Active() bool {
	return s.active
}

func (s *GrabState) ApplicationID() types.ApplicationID {
	return s.applicationID
}

func (s *GrabState) FromStage() string {
	return s.fromStage
}

// Release drops whatever is held and returns it.
func (s *GrabState) Release() (types.ApplicationID, string, bool) {
	id, from, ok := s.applicationID, s.fromStage, s.active
	*s = GrabState{}
	return id, from, ok
}
