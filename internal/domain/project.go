package domain

import "fmt"

// Project is the top-level container owning all governance artifacts.
type Project struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Validate checks the fields required to create a project.
func (p *Project) Validate() error {
	return RequireFields(Field{"name", p.Name})
}

// DisplayID returns the best short identifier for display.
// Backend ids are long hex or uuid strings; the first 8 characters are
// enough to tell projects apart in a list.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

func (p *Project) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.DisplayID())
}
