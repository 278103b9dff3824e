package card

// DefaultType is used when a source does not name the card type.
const DefaultType = "Character"

// Card represents a card parsed from a source
type Card struct {
	ID         string   `json:"id" yaml:"id"`                                     // Printing identifier (e.g., OP13-001, P-042)
	Name       string   `json:"name" yaml:"name"`                                 // Card name as printed
	Type       string   `json:"type" yaml:"type"`                                 // Leader, Character, Event, Stage
	Colors     []string `json:"colors" yaml:"colors"`                             // Ordered colors (e.g., Red, Green)
	Cost       *int     `json:"cost,omitempty" yaml:"cost,omitempty"`             // Play cost, absent for leaders
	Life       *int     `json:"life,omitempty" yaml:"life,omitempty"`             // Leader life
	Power      *int     `json:"power,omitempty" yaml:"power,omitempty"`           // Battle power
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty"` // Strike, Slash, Special, ...
	Counter    *int     `json:"counter,omitempty" yaml:"counter,omitempty"`       // Counter value
	Subtype    []string `json:"subtype,omitempty" yaml:"subtype,omitempty"`       // Families (e.g., Straw Hat Crew)
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`             // Rules text
}

// Face is the printed side of a card list entry
type Face struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Cost  int    `json:"cost"`
	Image string `json:"image"`
}

// Faces holds the faces of a card list entry
type Faces struct {
	Front Face `json:"front"`
}

// Entry is a card as stored in the card list
type Entry struct {
	ID         string   `json:"id"`
	Face       Faces    `json:"face"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Cost       int      `json:"cost"`
	Power      int      `json:"power"`
	Colors     []string `json:"colors"`
	Subtype    []string `json:"subtype"`
	Attributes []string `json:"attributes"`
}

// NewEntry builds an entry whose front face mirrors the top-level fields.
func NewEntry(id, name, cardType string, cost, power int, image string) Entry {
	return Entry{
		ID: id,
		Face: Faces{Front: Face{
			Name:  name,
			Type:  cardType,
			Cost:  cost,
			Image: image,
		}},
		Name:       name,
		Type:       cardType,
		Cost:       cost,
		Power:      power,
		Colors:     []string{},
		Subtype:    []string{},
		Attributes: []string{},
	}
}

// Entry converts a parsed card into a card list entry. Leaders carry no
// cost, so their entry cost is zero.
func (c Card) Entry(image string) Entry {
	e := NewEntry(c.ID, c.Name, c.Type, valueOrZero(c.Cost), valueOrZero(c.Power), image)
	e.Colors = nonNil(c.Colors)
	e.Subtype = nonNil(c.Subtype)
	e.Attributes = nonNil(c.Attributes)
	return e
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// nonNil keeps empty lists encoded as [] rather than null
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
