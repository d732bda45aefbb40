package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/scoring"
)

var (
	// ErrOutOfRange is returned when an answer is not a point on the scale.
	ErrOutOfRange = errors.New("answer out of range")
	// ErrCompleted is returned when answering after the last question.
	ErrCompleted = errors.New("session already completed")
	// ErrEmpty is returned when a session is started with no questions.
	ErrEmpty = errors.New("no questions to ask")
)

// Phase is the current phase of a quiz session.
type Phase int

const (
	PhaseActive   Phase = iota // Asking questions
	PhaseComplete              // All questions answered, result available
)

// State tracks one run through a question set. Answers are recorded by
// question ID, so moving back and re-answering overwrites in place.
type State struct {
	ID        string
	Mode      questions.Mode
	StartTime time.Time

	engine    *scoring.Engine
	questions []scoring.Question
	answers   scoring.Answers
	index     int
	phase     Phase
	result    *scoring.Result
}

// New starts a session over qs on the Likert5 scale.
func New(mode questions.Mode, qs []scoring.Question) (*State, error) {
	return NewWithEngine(mode, qs, scoring.NewEngine(scoring.Likert5))
}

// NewWithEngine starts a session scored by engine.
func NewWithEngine(mode questions.Mode, qs []scoring.Question, engine *scoring.Engine) (*State, error) {
	if len(qs) == 0 {
		return nil, ErrEmpty
	}
	own := make([]scoring.Question, len(qs))
	copy(own, qs)
	return &State{
		ID:        uuid.New().String(),
		Mode:      mode,
		StartTime: time.Now(),
		engine:    engine,
		questions: own,
		answers:   make(scoring.Answers, len(qs)),
	}, nil
}

// Len returns the number of questions in the session.
func (s *State) Len() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *State) Index() int { return s.index }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Completed reports whether the result is available.
func (s *State) Completed() bool { return s.phase == PhaseComplete }

// Scale returns the answer scale.
func (s *State) Scale() scoring.Scale { return s.engine.Scale() }

// Current returns the question being asked.
func (s *State) Current() scoring.Question {
	return s.questions[s.index]
}

// CurrentAnswer returns the recorded answer for the current question, if any.
func (s *State) CurrentAnswer() (int, bool) {
	v, ok := s.answers[s.Current().ID]
	return v, ok
}

// Select records value for the current question. On the last question it
// completes the session and computes the result; otherwise it advances.
func (s *State) Select(value int) error {
	if s.phase == PhaseComplete {
		return ErrCompleted
	}
	if !s.engine.Scale().Contains(value) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, value, s.engine.Scale().Points)
	}

	s.answers[s.Current().ID] = value

	if s.index == len(s.questions)-1 {
		r := s.engine.Score(s.questions, s.answers)
		s.result = &r
		s.phase = PhaseComplete
		return nil
	}
	s.index++
	return nil
}

// Prev moves back one question. It is a no-op on the first question or
// once the session is complete.
func (s *State) Prev() bool {
	if s.phase == PhaseComplete || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Progress returns the fraction of the session done, in [0,1].
func (s *State) Progress() float64 {
	if s.phase == PhaseComplete {
		return 1
	}
	done := s.index
	if _, ok := s.CurrentAnswer(); ok {
		done++
	}
	return float64(done) / float64(len(s.questions))
}

// Answers returns a copy of the answers recorded so far.
func (s *State) Answers() scoring.Answers {
	return s.answers.Clone()
}

// Result returns the scored result once the session is complete.
func (s *State) Result() (scoring.Result, bool) {
	if s.result == nil {
		return scoring.Result{}, false
	}
	return *s.result, true
}

// Elapsed returns the time since the session started.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
