package section

// Piece is the unit of material that owns sections. Sections live and die
// with their piece: deleting a piece destroys its sections.
type Piece struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Sections []*Section `json:"sections,omitempty"`
}

// Section returns the piece's section with the given id, or nil.
func (p *Piece) Section(id string) *Section {
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}
