package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/scoring"
)

func testQuestions() []scoring.Question {
	return []scoring.Question{
		{ID: "q1", Dimension: scoring.DimensionEI, Target: scoring.TargetFirst},
		{ID: "q2", Dimension: scoring.DimensionSN, Target: scoring.TargetFirst},
		{ID: "q3", Dimension: scoring.DimensionTF, Target: scoring.TargetFirst},
		{ID: "q4", Dimension: scoring.DimensionJP, Target: scoring.TargetFirst},
	}
}

func newState(t *testing.T) *State {
	t.Helper()
	s, err := New(questions.ModeQuick, testQuestions())
	require.NoError(t, err)
	return s
}

func TestNew_Empty(t *testing.T) {
	_, err := New(questions.ModeQuick, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNew_AssignsID(t *testing.T) {
	a := newState(t)
	b := newState(t)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, PhaseActive, a.Phase())
}

func TestSelect_AdvancesAndCompletes(t *testing.T) {
	s := newState(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Select(5))
		assert.Equal(t, i+1, s.Index())
		assert.False(t, s.Completed())
		_, ok := s.Result()
		assert.False(t, ok)
	}

	require.NoError(t, s.Select(5))
	assert.True(t, s.Completed())
	assert.Equal(t, 3, s.Index(), "index stays on the last question")

	r, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "ESTJ", r.Code)
	assert.Equal(t, 100, r.Dimension(scoring.DimensionJP).Percent)
}

func TestSelect_AfterComplete(t *testing.T) {
	s := newState(t)
	for range 4 {
		require.NoError(t, s.Select(1))
	}
	assert.ErrorIs(t, s.Select(3), ErrCompleted)

	r, _ := s.Result()
	assert.Equal(t, "INFP", r.Code)
}

func TestSelect_OutOfRange(t *testing.T) {
	s := newState(t)
	assert.ErrorIs(t, s.Select(0), ErrOutOfRange)
	assert.ErrorIs(t, s.Select(6), ErrOutOfRange)
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
}

func TestPrev_OverwritesAnswer(t *testing.T) {
	s := newState(t)
	require.NoError(t, s.Select(5))
	require.NoError(t, s.Select(5))

	assert.True(t, s.Prev())
	assert.Equal(t, 1, s.Index())
	v, ok := s.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	require.NoError(t, s.Select(1))
	assert.Equal(t, scoring.Answers{"q1": 5, "q2": 1}, s.Answers())
}

func TestPrev_AtStart(t *testing.T) {
	s := newState(t)
	assert.False(t, s.Prev())
	assert.Equal(t, 0, s.Index())
}

func TestPrev_AfterComplete(t *testing.T) {
	s := newState(t)
	for range 4 {
		require.NoError(t, s.Select(4))
	}
	assert.False(t, s.Prev())
}

func TestProgress(t *testing.T) {
	s := newState(t)
	assert.InDelta(t, 0.0, s.Progress(), 1e-9)

	require.NoError(t, s.Select(3))
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)

	// Going back onto an answered question counts it.
	s.Prev()
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)

	require.NoError(t, s.Select(3))
	require.NoError(t, s.Select(3))
	require.NoError(t, s.Select(3))
	require.NoError(t, s.Select(3))
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := newState(t)
	require.NoError(t, s.Select(2))

	a := s.Answers()
	a["q1"] = 5
	a["q9"] = 1

	assert.Equal(t, scoring.Answers{"q1": 2}, s.Answers())
}

func TestNew_CopiesQuestions(t *testing.T) {
	qs := testQuestions()
	s, err := New(questions.ModeDeep, qs)
	require.NoError(t, err)

	qs[0].ID = "mutated"
	assert.Equal(t, "q1", s.Current().ID)
}

func TestNewWithEngine_SevenPoint(t *testing.T) {
	s, err := NewWithEngine(questions.ModeQuick, testQuestions(), scoring.NewEngine(scoring.Scale{Points: 7}))
	require.NoError(t, err)

	require.NoError(t, s.Select(7))
	assert.ErrorIs(t, s.Select(8), ErrOutOfRange)
	assert.Equal(t, 7, s.Scale().Points)
}
