package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWorkspaceScansMarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.md", "# B\n")
	writeDoc(t, dir, "a.md", "# A\n")
	writeDoc(t, dir, "notes.markdown", "# Notes\n")
	writeDoc(t, dir, "ignore.txt", "plain\n")
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	paths := w.Paths()
	if len(paths) != 3 {
		t.Fatalf("expected 3 documents, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.md" || filepath.Base(paths[1]) != "b.md" {
		t.Fatalf("expected sorted order, got %v", paths)
	}
}

func TestDocumentBaseName(t *testing.T) {
	d := Document{Path: "/tmp/notes/Getting Started.md"}
	if got := d.BaseName(); got != "Getting Started" {
		t.Fatalf("unexpected base name %q", got)
	}
}

func TestResolveLinkFirstOccurrenceWins(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "guide.md", "# Setup\ntext\n## Extra\n# Setup\n")
	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}

	target, ok := w.ResolveLink("guide#Setup")
	if !ok {
		t.Fatalf("expected link to resolve")
	}
	// Duplicate heading text resolves to the earliest occurrence.
	if target.Line != 0 {
		t.Fatalf("expected line 0, got %d", target.Line)
	}

	target, ok = w.ResolveLink("guide#Extra")
	if !ok || target.Line != 2 {
		t.Fatalf("expected Extra at line 2, got %#v ok=%v", target, ok)
	}
}

func TestResolveLinkFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "guide.md", "# Setup\n")
	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}

	if _, ok := w.ResolveLink("missing#Setup"); ok {
		t.Fatalf("unknown document should not resolve")
	}
	target, ok := w.ResolveLink("guide")
	if !ok || target.Line != 0 {
		t.Fatalf("bare document link should target the top: %#v ok=%v", target, ok)
	}
	target, ok = w.ResolveLink("guide#No Such Heading")
	if !ok || target.Line != 0 {
		t.Fatalf("unmatched fragment should fall back to the top: %#v ok=%v", target, ok)
	}
	if _, ok := w.ResolveLink(""); ok {
		t.Fatalf("empty link should not resolve")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "# Before\n")
	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if err := w.Save(path, "# After\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err := w.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text != "# After\n" {
		t.Fatalf("unexpected text %q", doc.Text)
	}
}

func TestWatchCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.md", "# One\n")
	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("# Changed\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed early")
			}
			if ev.Type == EventDocumentChanged && ev.Path == path {
				return
			}
		case <-deadline:
			t.Fatalf("no document-changed event observed")
		}
	}
}

func TestWatchReportsNewDocuments(t *testing.T) {
	dir := t.TempDir()
	w, err := LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	writeDoc(t, dir, "new.md", "# New\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed early")
			}
			if ev.Type == EventWorkspaceInvalidated {
				return
			}
		case <-deadline:
			t.Fatalf("no invalidation event observed")
		}
	}
}
