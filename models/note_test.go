package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlainNoteDisplayTitle(t *testing.T) {
	titled := PlainNote{ID: "p-1", Title: "Groceries"}
	assert.Equal(t, "Groceries", titled.DisplayTitle())

	// Storage keeps the empty title; only the rendered form defaults
	untitled := PlainNote{ID: "p-2"}
	assert.Equal(t, DefaultNoteTitle, untitled.DisplayTitle())
	assert.Empty(t, untitled.Title)
}

func TestNoteItemTimestamp(t *testing.T) {
	modified := time.Now().Add(-time.Hour)
	recorded := time.Now()

	plain := NoteItem{Kind: NoteKindPlain, Plain: &PlainNote{LastModified: modified}}
	assert.Equal(t, modified, plain.Timestamp())

	voice := NoteItem{Kind: NoteKindVoice, Voice: &VoiceNote{CreatedAt: recorded}}
	assert.Equal(t, recorded, voice.Timestamp())

	assert.True(t, NoteItem{Kind: NoteKindPlain}.Timestamp().IsZero())
}
