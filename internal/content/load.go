package content

import (
	_ "embed"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

// Load decodes and validates the embedded portfolio.
func Load() (*Portfolio, error) {
	return Parse(embedded)
}

// Parse decodes and validates a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks cross-record invariants: unique project and artwork ids,
// unique series ids, and that every series member exists.
func (p *Portfolio) Validate() error {
	projectIDs := mapset.NewThreadUnsafeSet[int]()
	for _, pr := range p.Projects {
		if !projectIDs.Add(pr.ID) {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalid, pr.ID)
		}
	}

	artworkIDs := mapset.NewThreadUnsafeSet[int]()
	for _, a := range p.Artworks {
		if !artworkIDs.Add(a.ID) {
			return fmt.Errorf("%w: duplicate artwork id %d", ErrInvalid, a.ID)
		}
	}

	seriesIDs := mapset.NewThreadUnsafeSet[string]()
	for _, s := range p.Series {
		if s.ID == "" {
			return fmt.Errorf("%w: series %q has no id", ErrInvalid, s.Title)
		}
		if !seriesIDs.Add(s.ID) {
			return fmt.Errorf("%w: duplicate series id %q", ErrInvalid, s.ID)
		}
		if len(s.Artworks) == 0 {
			return fmt.Errorf("%w: series %q has no artworks", ErrInvalid, s.ID)
		}
		members := mapset.NewThreadUnsafeSet(s.Artworks...)
		if missing := members.Difference(artworkIDs); missing.Cardinality() > 0 {
			return fmt.Errorf("%w: series %q references unknown artworks %v", ErrInvalid, s.ID, missing.ToSlice())
		}
	}
	return nil
}

// Stats are the headline numbers shown in the About section.
type Stats struct {
	Projects     int
	Technologies int
	Artworks     int
}

// Stats counts projects, distinct technologies across all projects, and
// gallery pieces (a series counts once).
func (p *Portfolio) Stats() Stats {
	tech := mapset.NewThreadUnsafeSet[string]()
	for _, pr := range p.Projects {
		tech.Append(pr.Tech...)
	}
	return Stats{
		Projects:     len(p.Projects),
		Technologies: tech.Cardinality(),
		Artworks:     len(p.Gallery()),
	}
}
