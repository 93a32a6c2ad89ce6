package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopic(t *testing.T) {
	tests := []struct {
		name      string
		topic     string
		weightage float64
		want      float64
		wantErr   bool
	}{
		{name: "default weightage", topic: "Algebra", weightage: 0, want: DefaultWeightage},
		{name: "explicit weightage", topic: "Algebra", weightage: 1.5, want: 1.5},
		{name: "trims name", topic: "  Trig  ", weightage: 1, want: 1},
		{name: "empty name", topic: "   ", weightage: 1, wantErr: true},
		{name: "negative weightage", topic: "Algebra", weightage: -1, wantErr: true},
		{name: "NaN weightage", topic: "Algebra", weightage: math.NaN(), wantErr: true},
		{name: "infinite weightage", topic: "Algebra", weightage: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, err := NewTopic(tt.topic, tt.weightage)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, topic.Weightage)
			assert.NotEmpty(t, topic.Name)
			assert.False(t, topic.Completed)
			assert.Empty(t, topic.ID)
		})
	}

	t.Run("name is trimmed", func(t *testing.T) {
		topic, err := NewTopic("  Trig  ", 0)
		require.NoError(t, err)
		assert.Equal(t, "Trig", topic.Name)
	})
}

func TestNewSubject(t *testing.T) {
	exam := time.Date(2026, 11, 2, 15, 30, 0, 0, time.UTC)
	algebra := Topic{Name: "Algebra", Weightage: 1.5}

	t.Run("valid subject", func(t *testing.T) {
		s, err := NewSubject(" Math ", 8, exam, algebra)
		require.NoError(t, err)
		assert.Equal(t, "Math", s.Name)
		assert.Equal(t, 8, s.Difficulty)
		assert.Equal(t, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), s.ExamDate)
		assert.Len(t, s.Topics, 1)
	})

	t.Run("boundary difficulties", func(t *testing.T) {
		_, err := NewSubject("Math", MinDifficulty, exam)
		assert.NoError(t, err)
		_, err = NewSubject("Math", MaxDifficulty, exam)
		assert.NoError(t, err)
	})

	t.Run("rejects out of range difficulty", func(t *testing.T) {
		_, err := NewSubject("Math", -1, exam)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = NewSubject("Math", 11, exam)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects missing exam date", func(t *testing.T) {
		_, err := NewSubject("Math", 5, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSubject("", 5, exam)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects invalid topic", func(t *testing.T) {
		_, err := NewSubject("Math", 5, exam, Topic{Name: "Algebra", Weightage: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "Math")
	})

	t.Run("past exam date is allowed", func(t *testing.T) {
		_, err := NewSubject("History", 2, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
	})
}

func TestSubject_PendingTopics(t *testing.T) {
	s := Subject{
		Name: "Math",
		Topics: []Topic{
			{ID: "t1", Name: "Algebra", Weightage: 1.5},
			{ID: "t2", Name: "Trig", Weightage: 1, Completed: true},
			{ID: "t3", Name: "Calculus", Weightage: 1},
		},
	}

	pending := s.PendingTopics()

	require.Len(t, pending, 2)
	assert.Equal(t, "t1", pending[0].ID)
	assert.Equal(t, "t3", pending[1].ID)
}

func TestSubject_HasTopic(t *testing.T) {
	s := Subject{Topics: []Topic{{Name: "Linked Lists"}}}

	assert.True(t, s.HasTopic("Linked Lists"))
	assert.True(t, s.HasTopic(" linked lists "))
	assert.False(t, s.HasTopic("Stacks"))
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		difficulty int
		want       DifficultyBand
	}{
		{MinDifficulty, BandEasy},
		{4, BandEasy},
		{5, BandMedium},
		{7, BandMedium},
		{8, BandHard},
		{MaxDifficulty, BandHard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandOf(tt.difficulty), "difficulty %d", tt.difficulty)
	}
}
