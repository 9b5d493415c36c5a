package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, p.Profile.Name)
	assert.Len(t, p.Projects, 5)
	assert.NotEmpty(t, p.Skills)
	assert.NotEmpty(t, p.Experience)

	pr, ok := p.Project(4)
	require.True(t, ok)
	assert.Empty(t, pr.Images, "dog wash project ships without screenshots")

	_, ok = p.Project(99)
	assert.False(t, ok)
}

func TestGallery_StoryIsOneEntry(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	entries := p.Gallery()
	var story *GalleryEntry
	for i := range entries {
		for _, img := range entries[i].Images {
			if entries[i].Kind == EntrySingle && (img.ArtworkID == 5 || img.ArtworkID == 6 || img.ArtworkID == 7) {
				t.Errorf("story member %d rendered as a single entry", img.ArtworkID)
			}
		}
		if entries[i].Key == "story" {
			story = &entries[i]
		}
	}
	require.NotNil(t, story)
	assert.Equal(t, EntrySeries, story.Kind)
	require.Len(t, story.Images, 3)
	assert.Equal(t, []int{5, 6, 7}, []int{story.Images[0].ArtworkID, story.Images[1].ArtworkID, story.Images[2].ArtworkID})
}

func TestGallery_SingleEntries(t *testing.T) {
	p := &Portfolio{
		Artworks: []Artwork{
			{ID: 1, Title: "A", Image: "/a.jpg", AspectRatio: 0.75, Timelapse: "/a.mp4"},
			{ID: 2, Title: "B", Image: "/b.jpg", AspectRatio: 1.5, Group: "orphan"},
		},
	}
	entries := p.Gallery()
	require.Len(t, entries, 2, "an artwork whose group names no series stays a single entry")

	assert.Equal(t, "artwork-1", entries[0].Key)
	assert.True(t, entries[0].HasTimelapse())
	assert.False(t, entries[0].Landscape)
	assert.True(t, entries[1].Landscape)
	assert.Len(t, entries[1].Images, 1)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate project", "projects:\n  - id: 1\n  - id: 1\n"},
		{"duplicate artwork", "artworks:\n  - id: 3\n  - id: 3\n"},
		{"series without id", "series:\n  - title: x\n    artworks: [1]\n"},
		{"empty series", "series:\n  - id: s\n"},
		{"unknown member", "artworks:\n  - id: 1\nseries:\n  - id: s\n    artworks: [1, 2]\n"},
		{"duplicate series", "artworks:\n  - id: 1\nseries:\n  - id: s\n    artworks: [1]\n  - id: s\n    artworks: [1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("projects: {"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestStats(t *testing.T) {
	p := &Portfolio{
		Projects: []Project{
			{ID: 1, Tech: []string{"Go", "SQL"}},
			{ID: 2, Tech: []string{"SQL", "React"}},
		},
		Artworks: []Artwork{{ID: 1}, {ID: 2, Group: "s"}, {ID: 3, Group: "s"}},
		Series:   []Series{{ID: "s", Artworks: []int{2, 3}}},
	}
	assert.Equal(t, Stats{Projects: 2, Technologies: 3, Artworks: 2}, p.Stats())
}
