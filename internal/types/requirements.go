// Package types provides type definitions for structured data used throughout the requirements document service.
package types

// StructuredRequirements is the document shape the LLM must produce. It is
// the single intermediate representation every renderer consumes.
type StructuredRequirements struct {
	Title       string    `json:"title"`
	Assumptions []string  `json:"assumptions"`
	OutOfScope  []string  `json:"outOfScope"`
	Sections    []Section `json:"sections"`
	Figures     []Figure  `json:"figures,omitempty"`
}

// Section is a top-level document section with optional direct bullets and subheadings.
type Section struct {
	Heading     string       `json:"heading"`
	Bullets     []string     `json:"bullets,omitempty"`
	Subheadings []Subheading `json:"subheadings,omitempty"`
}

// Subheading is a nested heading whose bullets render one level deeper than section bullets.
type Subheading struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets,omitempty"`
}

// Figure is a captioned figure entry. Captions only; no embedded images.
type Figure struct {
	Caption string `json:"caption"`
}

// Normalize replaces nil list fields with empty slices so that absent and
// empty render identically downstream.
func (s *StructuredRequirements) Normalize() {
	if s.Assumptions == nil {
		s.Assumptions = []string{}
	}
	if s.OutOfScope == nil {
		s.OutOfScope = []string{}
	}
	if s.Sections == nil {
		s.Sections = []Section{}
	}
	for i := range s.Sections {
		if s.Sections[i].Bullets == nil {
			s.Sections[i].Bullets = []string{}
		}
		for j := range s.Sections[i].Subheadings {
			if s.Sections[i].Subheadings[j].Bullets == nil {
				s.Sections[i].Subheadings[j].Bullets = []string{}
			}
		}
	}
}
