package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	mapset "github.com/deckarep/golang-set/v2"

	"termfolio/internal/preview"
)

// imageLoader renders image previews on demand. Views call Want while
// rendering; Flush turns the new wants into commands. Until a preview is
// ready (or forever, when the asset is missing) the skeleton is shown.
type imageLoader struct {
	ctx     context.Context
	cache   *preview.Cache
	pending mapset.Set[preview.Key] // requested, not yet reported
	wanted  mapset.Set[preview.Key] // seen since the last Flush
}

func newImageLoader(ctx context.Context, cache *preview.Cache) *imageLoader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &imageLoader{
		ctx:     ctx,
		cache:   cache,
		pending: mapset.NewThreadUnsafeSet[preview.Key](),
		wanted:  mapset.NewThreadUnsafeSet[preview.Key](),
	}
}

// Render returns the preview of ref at size, or its skeleton.
func (l *imageLoader) Render(ref string, size preview.Size) string {
	if text, ok := l.Get(ref, size); ok {
		return text
	}
	return Styles.Empty.Render(preview.Skeleton(size))
}

// Get returns a finished preview.
func (l *imageLoader) Get(ref string, size preview.Size) (string, bool) {
	if l == nil || l.cache == nil || ref == "" {
		return "", false
	}
	return l.cache.Get(preview.Key{Ref: ref, Size: size})
}

// Loaded reports whether a preview for ref at size is ready.
func (l *imageLoader) Loaded(ref string, size preview.Size) bool {
	_, ok := l.Get(ref, size)
	return ok
}

// Want marks ref at size as needed by the current frame.
func (l *imageLoader) Want(ref string, size preview.Size) {
	if l == nil || l.cache == nil || ref == "" || size.Rows == 0 || size.Cols == 0 {
		return
	}
	l.wanted.Add(preview.Key{Ref: ref, Size: size})
}

// Request is Want followed by Flush for a single image.
func (l *imageLoader) Request(ref string, size preview.Size) tea.Cmd {
	l.Want(ref, size)
	return l.Flush()
}

// Flush starts rendering every wanted preview that is neither cached nor
// already in flight.
func (l *imageLoader) Flush() tea.Cmd {
	if l == nil || l.cache == nil || l.wanted.Cardinality() == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for _, k := range l.wanted.ToSlice() {
		if l.pending.Contains(k) || l.cache.Settled(k) {
			continue
		}
		l.pending.Add(k)
		cmds = append(cmds, l.load(k))
	}
	l.wanted.Clear()
	return tea.Batch(cmds...)
}

func (l *imageLoader) load(k preview.Key) tea.Cmd {
	ctx, cache := l.ctx, l.cache
	return func() tea.Msg {
		_, _ = cache.Load(ctx, k)
		return ImageLoadedMsg{Key: k}
	}
}

// Done clears the in-flight mark for k.
func (l *imageLoader) Done(k preview.Key) {
	if l == nil {
		return
	}
	l.pending.Remove(k)
}
