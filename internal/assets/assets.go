// Package assets resolves site-root-relative references such as
// "/projects/shot.png" to files under the asset root.
package assets

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	// RootEnv overrides the asset root.
	RootEnv = "TERMFOLIO_ASSET_DIR"
	// DefaultRoot is used when neither a root nor RootEnv is given.
	DefaultRoot = "public"
)

// Resolver maps asset references to filesystem paths.
// Layout: <root>/projects/*.png, <root>/artwork/*.jpg, <root>/resume.pdf
type Resolver struct {
	root string
}

// NewResolver returns a resolver rooted at root, or at RootEnv, or at
// DefaultRoot relative to the working directory.
func NewResolver(root string) *Resolver {
	if root == "" {
		root = os.Getenv(RootEnv)
	}
	if root == "" {
		root = DefaultRoot
	}
	return &Resolver{root: root}
}

// Root returns the asset root directory.
func (r *Resolver) Root() string { return r.root }

// Resolve returns the filesystem path for ref. References are always
// treated as rooted: "../" cannot climb out of the asset root. External
// URLs are returned unchanged.
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if IsExternal(ref) {
		return ref
	}
	clean := path.Clean("/" + strings.TrimLeft(ref, "/"))
	return filepath.Join(r.root, filepath.FromSlash(clean))
}

// Exists reports whether ref resolves to a regular file.
func (r *Resolver) Exists(ref string) bool {
	if ref == "" || IsExternal(ref) {
		return false
	}
	info, err := os.Stat(r.Resolve(ref))
	return err == nil && info.Mode().IsRegular()
}

// IsExternal reports whether ref points outside the site (http, https, mailto).
func IsExternal(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:")
}
