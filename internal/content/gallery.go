package content

import "strconv"

// EntryKind distinguishes single pieces from series in the gallery.
type EntryKind int

const (
	EntrySingle EntryKind = iota
	EntrySeries
)

// Image is one displayable picture of a gallery entry.
type Image struct {
	ArtworkID int
	Src       string
}

// GalleryEntry is one card in the gallery: a single artwork or a whole series.
type GalleryEntry struct {
	Kind        EntryKind
	Key         string
	Title       string
	Medium      string
	Year        string
	Series      string
	Exhibition  string
	Description string
	Timelapse   string
	Landscape   bool
	Images      []Image
}

// HasTimelapse reports whether the entry has a time-lapse video.
func (e GalleryEntry) HasTimelapse() bool { return e.Timelapse != "" }

// Gallery returns the gallery entries: regular artworks in declared order
// followed by one composite entry per series. Artworks that belong to a
// series are only shown inside it.
func (p *Portfolio) Gallery() []GalleryEntry {
	grouped := make(map[string]bool, len(p.Series))
	for _, s := range p.Series {
		grouped[s.ID] = true
	}

	entries := make([]GalleryEntry, 0, len(p.Artworks)+len(p.Series))
	for _, a := range p.Artworks {
		if a.Group != "" && grouped[a.Group] {
			continue
		}
		entries = append(entries, singleEntry(a))
	}
	for _, s := range p.Series {
		entries = append(entries, p.seriesEntry(s))
	}
	return entries
}

func singleEntry(a Artwork) GalleryEntry {
	return GalleryEntry{
		Kind:        EntrySingle,
		Key:         artworkKey(a.ID),
		Title:       a.Title,
		Medium:      a.Medium,
		Year:        a.Year,
		Description: a.Description,
		Timelapse:   a.Timelapse,
		Landscape:   a.Landscape(),
		Images:      []Image{{ArtworkID: a.ID, Src: a.Image}},
	}
}

func (p *Portfolio) seriesEntry(s Series) GalleryEntry {
	images := make([]Image, 0, len(s.Artworks))
	for _, id := range s.Artworks {
		if a, ok := p.Artwork(id); ok {
			images = append(images, Image{ArtworkID: a.ID, Src: a.Image})
		}
	}
	return GalleryEntry{
		Kind:        EntrySeries,
		Key:         s.ID,
		Title:       s.Title,
		Medium:      s.Medium,
		Year:        s.Year,
		Series:      s.Series,
		Exhibition:  s.Exhibition,
		Description: s.Description,
		Images:      images,
	}
}

func artworkKey(id int) string {
	return "artwork-" + strconv.Itoa(id)
}
