package services

import (
	"sort"
	"sync"

	"quick-notes/events"
	"quick-notes/models"
)

// FeedService serves the merged home feed over plain and voice notes. The
// merged result is cached between mutations; a bus subscription invalidates
// the cache whenever any note changes.
type FeedService struct {
	notes PlainNoteRepository
	voice VoiceNoteRepository

	mu     sync.Mutex
	gen    uint64
	cached []models.NoteItem
}

// NewFeedService creates a feed service and, when a bus is supplied, wires
// cache invalidation to note-change events.
func NewFeedService(notes PlainNoteRepository, voice VoiceNoteRepository, bus *events.Bus) *FeedService {
	fs := &FeedService{notes: notes, voice: voice}
	if bus != nil {
		bus.Subscribe(events.NotesChanged, func(events.Kind) {
			fs.Invalidate()
		})
	}
	return fs
}

// Recent merges plain and voice notes into one recency-descending sequence,
// comparing a plain note's last modification against a voice note's
// recording time directly.
func (fs *FeedService) Recent() ([]models.NoteItem, error) {
	fs.mu.Lock()
	if fs.cached != nil {
		items := fs.cached
		fs.mu.Unlock()
		return items, nil
	}
	gen := fs.gen
	fs.mu.Unlock()

	plain, err := fs.notes.GetPlainNotes("")
	if err != nil {
		return nil, err
	}
	voice, err := fs.voice.GetVoiceNotes()
	if err != nil {
		return nil, err
	}

	items := make([]models.NoteItem, 0, len(plain)+len(voice))
	for i := range plain {
		items = append(items, models.NoteItem{Kind: models.NoteKindPlain, Plain: &plain[i]})
	}
	for i := range voice {
		items = append(items, models.NoteItem{Kind: models.NoteKindVoice, Voice: &voice[i]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp().After(items[j].Timestamp())
	})

	// An invalidation that landed while the rebuild was in flight means the
	// snapshot may predate the mutation; it is still fine to return to this
	// caller, but it must not be cached over the invalidation.
	fs.mu.Lock()
	if fs.gen == gen {
		fs.cached = items
	}
	fs.mu.Unlock()
	return items, nil
}

// Invalidate drops the cached feed; the next Recent call rebuilds it. The
// generation bump keeps an in-flight rebuild from re-caching its stale
// snapshot afterwards.
func (fs *FeedService) Invalidate() {
	fs.mu.Lock()
	fs.gen++
	fs.cached = nil
	fs.mu.Unlock()
}
