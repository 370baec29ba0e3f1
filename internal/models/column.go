package models

// Stage is a named step in a vacancy's application pipeline (e.g. "screening", "interview").
// Stages arrive from the remote service already ordered; Order is the position in that sequence.
type Stage struct {
	Slug  string `json:"slug"`  // Stable identifier, also the status value sent on a move
	Label string `json:"label"` // Display name
	Order int    `json:"order"` // Left-to-right position on the board
}

// Column is a stage together with the cards currently stored under it
type Column struct {
	Stage
	Cards []*ApplicationCard `json:"applications"`
}

// Pipeline is the board snapshot for one vacancy as returned by the remote service
type Pipeline struct {
	VacancyID string    `json:"vacancy_id"`
	Columns   []*Column `json:"columns"`
}

// CardCount returns the total number of cards across all columns
func (p *Pipeline) CardCount() int {
	if p == nil {
		return 0
	}
	total := 0
	for _, col := range p.Columns {
		total += len(col.Cards)
	}
	return total
}

// Clone returns a deep copy of the column so callers can't mutate board state through it
func (c *Column) Clone() *Column {
	cards := make([]*ApplicationCard, len(c.Cards))
	for i, card := range c.Cards {
		cp := *card
		cards[i] = &cp
	}
	return &Column{Stage: c.Stage, Cards: cards}
}
