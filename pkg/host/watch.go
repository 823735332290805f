package host

import (
	"fmt"
	"os"
	"sync"
	"time"

	"context"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/outline/pkg/debounce"
)

// EventType describes the nature of a workspace change notification.
type EventType int

const (
	// EventDocumentChanged indicates the content of an existing document
	// changed on disk.
	EventDocumentChanged EventType = iota

	// EventWorkspaceInvalidated signals that the document catalog itself
	// changed (files added, removed, or renamed) and callers should rescan.
	EventWorkspaceInvalidated
)

// Event is emitted by Workspace.Watch when on-disk state changes.
type Event struct {
	Type EventType
	Path string
}

const watchCoalesceDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Bursts of filesystem
// activity are coalesced so consumers redraw once per burst. Callers should
// drain the channel; events are dropped rather than blocking the watcher.
// The channel closes once ctx is done or the watcher fails.
func (w *Workspace) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("host: create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("host: watch %s: %w", w.dir, err)
	}

	events := make(chan Event, 64)

	send := func(ev Event) {
		select {
		case events <- ev:
		default:
			// Drop when the consumer lags; the next scan reconciles.
		}
	}

	pending := &pendingEvents{changed: make(map[string]struct{})}
	flush := debounce.New(watchCoalesceDelay, func() {
		pending.flush(send)
	})

	go func() {
		defer close(events)
		defer watcher.Close()
		defer flush.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full rescan to keep clients
				// in sync even when the change cannot be classified.
				fmt.Fprintf(os.Stderr, "host: watcher: %v\n", err)
				pending.invalidate()
				flush.Request()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !markdownFile(evt.Name) {
					continue
				}
				switch {
				case evt.Op&fsnotify.Write == fsnotify.Write:
					pending.change(evt.Name)
				case evt.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0:
					pending.invalidate()
				default:
					continue
				}
				flush.Request()
			}
		}
	}()

	return events, nil
}

// pendingEvents accumulates one burst of filesystem notifications between
// debounce flushes.
type pendingEvents struct {
	mu          sync.Mutex
	changed     map[string]struct{}
	invalidated bool
}

func (p *pendingEvents) change(path string) {
	p.mu.Lock()
	p.changed[path] = struct{}{}
	p.mu.Unlock()
}

func (p *pendingEvents) invalidate() {
	p.mu.Lock()
	p.invalidated = true
	p.mu.Unlock()
}

func (p *pendingEvents) flush(send func(Event)) {
	p.mu.Lock()
	changed := p.changed
	invalidated := p.invalidated
	p.changed = make(map[string]struct{})
	p.invalidated = false
	p.mu.Unlock()

	if invalidated {
		send(Event{Type: EventWorkspaceInvalidated})
	}
	for path := range changed {
		send(Event{Type: EventDocumentChanged, Path: path})
	}
}
