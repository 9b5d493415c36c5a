// Package content holds the static portfolio datasets: projects, skills,
// artworks and series, work experience and the owner's profile.
//
// The datasets are embedded at compile time and decoded once at startup.
// Nothing in this package is mutated after Load returns.
package content

// Project is one entry of the development showcase.
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Tech        []string `yaml:"tech"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
	Images      []string `yaml:"images"`
	Link        string   `yaml:"link,omitempty"`
	GitHub      string   `yaml:"github,omitempty"`
	Year        string   `yaml:"year"`
}

// SkillCategory groups skill names under a heading.
type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// Artwork is one gallery piece.
type Artwork struct {
	ID          int     `yaml:"id"`
	Title       string  `yaml:"title"`
	Medium      string  `yaml:"medium"`
	Year        string  `yaml:"year"`
	Image       string  `yaml:"image"`
	Timelapse   string  `yaml:"timelapse,omitempty"`
	Group       string  `yaml:"group,omitempty"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	Description string  `yaml:"description,omitempty"`
}

// HasTimelapse reports whether a time-lapse video accompanies the piece.
func (a Artwork) HasTimelapse() bool { return a.Timelapse != "" }

// Landscape reports whether the piece is wider than tall.
func (a Artwork) Landscape() bool { return a.AspectRatio > 1 }

// Series is a set of artworks presented as one composite gallery entry.
type Series struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Medium      string `yaml:"medium"`
	Year        string `yaml:"year"`
	Series      string `yaml:"series,omitempty"`
	Exhibition  string `yaml:"exhibition,omitempty"`
	Description string `yaml:"description,omitempty"`
	Artworks    []int  `yaml:"artworks"`
}

// Experience is one position on the work timeline.
type Experience struct {
	Company     string   `yaml:"company"`
	Position    string   `yaml:"position"`
	Period      string   `yaml:"period"`
	Location    string   `yaml:"location"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

// Link is a labelled external reference.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name         string   `yaml:"name"`
	Tagline      string   `yaml:"tagline"`
	Roles        []string `yaml:"roles"`
	About        []string `yaml:"about"`
	Location     string   `yaml:"location"`
	Email        string   `yaml:"email"`
	Availability string   `yaml:"availability"`
	Resume       string   `yaml:"resume"`
	Logo         string   `yaml:"logo"`
	Socials      []Link   `yaml:"socials"`
}

// Portfolio is the full dataset.
type Portfolio struct {
	Profile    Profile         `yaml:"profile"`
	Projects   []Project       `yaml:"projects"`
	Skills     []SkillCategory `yaml:"skills"`
	Experience []Experience    `yaml:"experience"`
	Artworks   []Artwork       `yaml:"artworks"`
	Series     []Series        `yaml:"series"`
}

// Project returns the project with the given id.
func (p *Portfolio) Project(id int) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}

// Artwork returns the artwork with the given id.
func (p *Portfolio) Artwork(id int) (Artwork, bool) {
	for _, a := range p.Artworks {
		if a.ID == id {
			return a, true
		}
	}
	return Artwork{}, false
}
