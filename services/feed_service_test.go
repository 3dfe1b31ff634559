package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quick-notes/events"
	"quick-notes/models"
)

func TestFeedService_RecentOrdering(t *testing.T) {
	t1 := time.Now().Add(-time.Hour)
	t2 := time.Now()

	plainRepo := new(MockPlainNoteRepo)
	plainRepo.On("GetPlainNotes", "").Return([]models.PlainNote{
		{ID: "p-1", Title: "older plain", LastModified: t1},
	}, nil)

	voiceRepo := new(MockVoiceNoteRepo)
	voiceRepo.On("GetVoiceNotes").Return([]models.VoiceNote{
		{ID: "v-1", AudioFile: "a.m4a", CreatedAt: t2},
	}, nil)

	service := NewFeedService(plainRepo, voiceRepo, nil)

	items, err := service.Recent()
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Voice note recorded at T2 > T1 comes first
	assert.Equal(t, models.NoteKindVoice, items[0].Kind)
	assert.Equal(t, "v-1", items[0].Voice.ID)
	assert.Nil(t, items[0].Plain)
	assert.Equal(t, models.NoteKindPlain, items[1].Kind)
	assert.Equal(t, "p-1", items[1].Plain.ID)
	assert.Nil(t, items[1].Voice)
}

func TestFeedService_CacheAndInvalidation(t *testing.T) {
	bus := events.New(nil)

	plainRepo := new(MockPlainNoteRepo)
	plainRepo.On("GetPlainNotes", "").Return([]models.PlainNote{}, nil).Twice()
	voiceRepo := new(MockVoiceNoteRepo)
	voiceRepo.On("GetVoiceNotes").Return([]models.VoiceNote{}, nil).Twice()

	service := NewFeedService(plainRepo, voiceRepo, bus)

	// First call builds, second is served from cache
	_, err := service.Recent()
	require.NoError(t, err)
	_, err = service.Recent()
	require.NoError(t, err)

	// A note mutation invalidates, forcing a rebuild
	bus.Publish(events.NotesChanged)
	_, err = service.Recent()
	require.NoError(t, err)

	plainRepo.AssertExpectations(t)
	voiceRepo.AssertExpectations(t)
}

// A mutation that lands while a rebuild is mid-fetch must win: the stale
// snapshot may be returned to the caller that built it, but it must not be
// cached, or every later read would miss the mutation.
func TestFeedService_InvalidationDuringRebuildWins(t *testing.T) {
	fetching := make(chan struct{})
	release := make(chan struct{})

	plainRepo := new(MockPlainNoteRepo)
	plainRepo.On("GetPlainNotes", "").Return([]models.PlainNote{}, nil).Once()
	plainRepo.On("GetPlainNotes", "").Return([]models.PlainNote{
		{ID: "p-1", Title: "created mid-rebuild", LastModified: time.Now()},
	}, nil).Once()

	voiceRepo := new(MockVoiceNoteRepo)
	voiceRepo.On("GetVoiceNotes").Run(func(mock.Arguments) {
		close(fetching)
		<-release
	}).Return([]models.VoiceNote{}, nil).Once()
	voiceRepo.On("GetVoiceNotes").Return([]models.VoiceNote{}, nil).Once()

	service := NewFeedService(plainRepo, voiceRepo, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.Recent()
	}()

	// Wait until the rebuild is blocked mid-fetch, then let a note creation
	// invalidate the feed before the rebuild finishes.
	<-fetching
	service.Invalidate()
	close(release)
	<-done

	items, err := service.Recent()
	require.NoError(t, err)
	require.Len(t, items, 1, "a create must be visible to the next feed read")
	assert.Equal(t, "p-1", items[0].Plain.ID)

	plainRepo.AssertExpectations(t)
	voiceRepo.AssertExpectations(t)
}

func TestFeedService_EmptyStore(t *testing.T) {
	plainRepo := new(MockPlainNoteRepo)
	plainRepo.On("GetPlainNotes", "").Return([]models.PlainNote{}, nil)
	voiceRepo := new(MockVoiceNoteRepo)
	voiceRepo.On("GetVoiceNotes").Return([]models.VoiceNote{}, nil)

	service := NewFeedService(plainRepo, voiceRepo, nil)

	items, err := service.Recent()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
