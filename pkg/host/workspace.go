package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tableflip.dev/outline/pkg/heading"
)

// Workspace is a flat directory of markdown documents.
type Workspace struct {
	dir   string
	paths []string
}

// Target is a resolved link destination within the workspace.
type Target struct {
	Path string
	Line int
}

// LoadWorkspace opens dir and scans it for markdown documents.
func LoadWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("host: resolve workspace dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("host: open workspace: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("host: workspace %s is not a directory", abs)
	}
	w := &Workspace{dir: abs}
	if err := w.Scan(); err != nil {
		return nil, err
	}
	return w, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string {
	return w.dir
}

// Scan refreshes the document list from disk.
func (w *Workspace) Scan() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("host: scan workspace: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !markdownFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(w.dir, e.Name()))
	}
	sort.Strings(paths)
	w.paths = paths
	return nil
}

// Paths returns the current document paths in sorted order.
func (w *Workspace) Paths() []string {
	out := make([]string, len(w.paths))
	copy(out, w.paths)
	return out
}

// Load reads the document at path.
func (w *Workspace) Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("host: load %s: %w", path, err)
	}
	return Document{Path: path, Text: string(data)}, nil
}

// Save writes text back to the document at path.
func (w *Workspace) Save(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("host: save %s: %w", path, err)
	}
	return nil
}

// ResolveLink resolves "basename#heading text" to a document position. The
// fragment matches the first heading whose text equals it exactly, so
// duplicate heading text always resolves to the earliest occurrence. A link
// with no fragment, or whose fragment matches nothing, targets the top of
// the document.
func (w *Workspace) ResolveLink(link string) (Target, bool) {
	name, fragment := splitLink(link)
	if name == "" {
		return Target{}, false
	}
	path, ok := w.pathForBaseName(name)
	if !ok {
		return Target{}, false
	}
	if fragment == "" {
		return Target{Path: path}, true
	}
	doc, err := w.Load(path)
	if err != nil {
		return Target{Path: path}, true
	}
	for _, h := range heading.Extract(doc.Text) {
		if h.Text == fragment {
			return Target{Path: path, Line: h.Line}, true
		}
	}
	return Target{Path: path}, true
}

func (w *Workspace) pathForBaseName(name string) (string, bool) {
	for _, p := range w.paths {
		if (Document{Path: p}).BaseName() == name {
			return p, true
		}
	}
	return "", false
}

func splitLink(link string) (string, string) {
	if link == "" {
		return "", ""
	}
	if i := strings.Index(link, "#"); i >= 0 {
		return link[:i], link[i+1:]
	}
	return link, ""
}

func markdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// ErrNoDocuments is returned by callers that need at least one document.
var ErrNoDocuments = errors.New("host: workspace contains no markdown documents")
