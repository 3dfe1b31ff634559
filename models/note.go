package models

import "time"

// DefaultNoteTitle is what the presentation layer shows for an empty title.
// It is never persisted; storage keeps the title exactly as entered.
const DefaultNoteTitle = "Untitled Note"

type PlainNote struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
}

// DisplayTitle is what list and detail screens should render: the stored
// title, or DefaultNoteTitle when the user never entered one.
func (n PlainNote) DisplayTitle() string {
	if n.Title == "" {
		return DefaultNoteTitle
	}
	return n.Title
}

// VoiceNote references an audio blob by opaque file ref. The store owns the
// lifecycle of the ref (the blob is removed when the note is deleted) but
// never decodes the audio. Waveform holds normalized amplitude levels in
// [0.1, 1.0] captured at recording time; they are stored verbatim and never
// recomputed.
type VoiceNote struct {
	ID          string    `json:"id"`
	AudioFile   string    `json:"audio_file"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Waveform    []float32 `json:"waveform"`
	CreatedAt   time.Time `json:"created_at"`
}

type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultFolderNames are created once on first run by the bootstrap.
var DefaultFolderNames = []string{"Personal", "Work", "School", "Travel"}

type NoteKind string

const (
	NoteKindPlain NoteKind = "plain"
	NoteKindVoice NoteKind = "voice"
)

// NoteItem is the tagged union served by the home feed. Exactly one of
// Plain/Voice is set, matching Kind.
type NoteItem struct {
	Kind  NoteKind   `json:"kind"`
	Plain *PlainNote `json:"plain,omitempty"`
	Voice *VoiceNote `json:"voice,omitempty"`
}

// Timestamp is the unified recency notion used to order the feed: a plain
// note counts from its last modification, a voice note from its recording.
func (i NoteItem) Timestamp() time.Time {
	if i.Kind == NoteKindVoice && i.Voice != nil {
		return i.Voice.CreatedAt
	}
	if i.Plain != nil {
		return i.Plain.LastModified
	}
	return time.Time{}
}

type CreatePlainNoteRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Content  string `json:"content"`
	Category string `json:"category" validate:"omitempty,categoryname"`
}

type UpdatePlainNoteRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Content  *string `json:"content"`
	Category *string `json:"category" validate:"omitempty,categoryname"`
}

type CreateVoiceNoteRequest struct {
	AudioFile   string    `json:"audio_file" validate:"required"`
	Duration    string    `json:"duration"`
	Waveform    []float32 `json:"waveform" validate:"dive,gte=0.1,lte=1.0"`
	Category    string    `json:"category" validate:"omitempty,categoryname"`
	Description string    `json:"description"`
}

type UpdateVoiceNoteRequest struct {
	Category    *string `json:"category" validate:"omitempty,categoryname"`
	Description *string `json:"description"`
}

type CreateFolderRequest struct {
	Name string `json:"name" validate:"required,categoryname,max=100"`
}

type RememberCategoryRequest struct {
	Name string `json:"name" validate:"required,categoryname,max=100"`
}
