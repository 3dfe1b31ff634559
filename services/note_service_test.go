package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quick-notes/events"
	"quick-notes/models"
)

// ==================== MOCKS ====================

// MockPlainNoteRepo is a mock implementation of PlainNoteRepository
type MockPlainNoteRepo struct {
	mock.Mock
}

var _ PlainNoteRepository = (*MockPlainNoteRepo)(nil)

func (m *MockPlainNoteRepo) GetPlainNote(id string) (*models.PlainNote, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlainNote), args.Error(1)
}

func (m *MockPlainNoteRepo) InsertPlainNote(note *models.PlainNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockPlainNoteRepo) UpdatePlainNote(id string, title, content, category *string, lastModified time.Time) (bool, error) {
	args := m.Called(id, title, content, category, lastModified)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlainNoteRepo) DeletePlainNote(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlainNoteRepo) GetPlainNotes(category string) ([]models.PlainNote, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlainNote), args.Error(1)
}

// MockPublisher records published event kinds
type MockPublisher struct {
	published []events.Kind
}

var _ Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(kind events.Kind) {
	m.published = append(m.published, kind)
}

func strptr(s string) *string { return &s }

// ==================== TESTS ====================

func TestNoteService_Create(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		content       string
		category      string
		mockSetup     func(*MockPlainNoteRepo)
		expectedError error
		expectEvent   bool
	}{
		{
			name:     "Success - Create note",
			title:    "Groceries",
			content:  "milk",
			category: "Personal",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("InsertPlainNote", mock.AnythingOfType("*models.PlainNote")).Return(nil)
			},
			expectedError: nil,
			expectEvent:   true,
		},
		{
			name:     "Success - Empty title and content accepted",
			title:    "",
			content:  "",
			category: "",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("InsertPlainNote", mock.AnythingOfType("*models.PlainNote")).Return(nil)
			},
			expectedError: nil,
			expectEvent:   true,
		},
		{
			name:     "Error - Repository insert fails, no event",
			title:    "x",
			content:  "y",
			category: "Work",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("InsertPlainNote", mock.AnythingOfType("*models.PlainNote")).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
			expectEvent:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlainNoteRepo)
			tt.mockSetup(mockRepo)
			bus := &MockPublisher{}

			service := NewNoteService(mockRepo, bus)

			before := time.Now()
			note, err := service.Create(tt.title, tt.content, tt.category)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				assert.NotEmpty(t, note.ID)
				assert.Equal(t, tt.title, note.Title)
				assert.Equal(t, tt.content, note.Content)
				assert.Equal(t, tt.category, note.Category)
				assert.False(t, note.LastModified.Before(before))
			}

			if tt.expectEvent {
				assert.Equal(t, []events.Kind{events.NotesChanged}, bus.published)
			} else {
				assert.Empty(t, bus.published)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		title         *string
		content       *string
		category      *string
		mockSetup     func(*MockPlainNoteRepo)
		check         func(*testing.T, *models.PlainNote)
		expectedError error
	}{
		{
			name:    "Success - Nil fields forwarded untouched to the patch",
			id:      "note-1",
			content: strptr("new content"),
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("UpdatePlainNote", "note-1",
					(*string)(nil), strptr("new content"), (*string)(nil),
					mock.AnythingOfType("time.Time")).Return(true, nil)
				repo.On("GetPlainNote", "note-1").Return(&models.PlainNote{
					ID:           "note-1",
					Title:        "old title",
					Content:      "new content",
					Category:     "Personal",
					LastModified: time.Now(),
				}, nil)
			},
			check: func(t *testing.T, note *models.PlainNote) {
				assert.Equal(t, "old title", note.Title)
				assert.Equal(t, "new content", note.Content)
				assert.Equal(t, "Personal", note.Category)
			},
		},
		{
			name:     "Success - Category change",
			id:       "note-1",
			category: strptr("Work"),
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("UpdatePlainNote", "note-1",
					(*string)(nil), (*string)(nil), strptr("Work"),
					mock.AnythingOfType("time.Time")).Return(true, nil)
				repo.On("GetPlainNote", "note-1").Return(&models.PlainNote{
					ID:           "note-1",
					Title:        "old title",
					Content:      "old content",
					Category:     "Work",
					LastModified: time.Now(),
				}, nil)
			},
			check: func(t *testing.T, note *models.PlainNote) {
				assert.Equal(t, "Work", note.Category)
				assert.Equal(t, "old content", note.Content)
			},
		},
		{
			name: "Error - Note not found",
			id:   "missing",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("UpdatePlainNote", "missing",
					(*string)(nil), (*string)(nil), (*string)(nil),
					mock.AnythingOfType("time.Time")).Return(false, nil)
			},
			expectedError: ErrNoteNotFound,
		},
		{
			name: "Error - Repository error",
			id:   "note-1",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("UpdatePlainNote", "note-1",
					(*string)(nil), (*string)(nil), (*string)(nil),
					mock.AnythingOfType("time.Time")).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlainNoteRepo)
			tt.mockSetup(mockRepo)
			bus := &MockPublisher{}

			service := NewNoteService(mockRepo, bus)

			note, err := service.Update(tt.id, tt.title, tt.content, tt.category)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, note)
				assert.Empty(t, bus.published)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				tt.check(t, note)
				assert.Equal(t, []events.Kind{events.NotesChanged}, bus.published)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		mockSetup     func(*MockPlainNoteRepo)
		expectedError error
	}{
		{
			name: "Success - Delete note",
			id:   "note-1",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("DeletePlainNote", "note-1").Return(true, nil)
			},
		},
		{
			name: "Error - Second delete fails with not found",
			id:   "note-1",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("DeletePlainNote", "note-1").Return(false, nil)
			},
			expectedError: ErrNoteNotFound,
		},
		{
			name: "Error - Repository delete fails",
			id:   "note-1",
			mockSetup: func(repo *MockPlainNoteRepo) {
				repo.On("DeletePlainNote", "note-1").Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlainNoteRepo)
			tt.mockSetup(mockRepo)
			bus := &MockPublisher{}

			service := NewNoteService(mockRepo, bus)

			err := service.Delete(tt.id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Empty(t, bus.published)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []events.Kind{events.NotesChanged}, bus.published)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_List(t *testing.T) {
	mockRepo := new(MockPlainNoteRepo)
	notes := []models.PlainNote{
		{ID: "1", Title: "a", Category: "Work"},
		{ID: "2", Title: "b", Category: "Work"},
	}
	mockRepo.On("GetPlainNotes", "Work").Return(notes, nil)

	service := NewNoteService(mockRepo, nil)

	got, err := service.List("Work")
	assert.NoError(t, err)
	assert.Equal(t, notes, got)
	mockRepo.AssertExpectations(t)
}
