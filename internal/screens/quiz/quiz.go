package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/router"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/screens/result"
	"github.com/abhisek/mbti/internal/session"
	"github.com/abhisek/mbti/internal/ui/components"
	"github.com/abhisek/mbti/internal/ui/layout"
	"github.com/abhisek/mbti/internal/ui/theme"
)

// QuizScreen asks the session's questions one at a time.
type QuizScreen struct {
	state       *session.State
	likert      components.Likert
	logger      *zap.Logger
	confirmExit bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.BackInterceptor = (*QuizScreen)(nil)

// New creates a new QuizScreen over an active session.
func New(state *session.State, logger *zap.Logger) *QuizScreen {
	q := &QuizScreen{state: state, logger: logger}
	q.resetLikert()
	return q
}

func (q *QuizScreen) resetLikert() {
	prev, _ := q.state.CurrentAnswer()
	q.likert = components.NewLikert(q.state.Scale(), prev)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) Status() string {
	return fmt.Sprintf("%s · %d/%d", q.state.Mode, q.state.Index()+1, q.state.Len())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", q.state.Scale().Points), Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←/⌫", Description: "Previous"},
		{Key: "Esc", Description: "Leave"},
	}
}

// InterceptBack asks for a second Esc before abandoning answered questions.
func (q *QuizScreen) InterceptBack() bool {
	if len(q.state.Answers()) > 0 && !q.confirmExit {
		q.confirmExit = true
		return true
	}
	q.logger.Info("quiz abandoned",
		zap.String("session_id", q.state.ID),
		zap.Int("answered", len(q.state.Answers())),
		zap.Duration("elapsed", q.state.Elapsed()))
	return false
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.LikertChosenMsg:
		return q, q.answer(msg.Value)

	case tea.KeyMsg:
		q.confirmExit = false
		if key.Matches(msg, components.Keys.Back, components.Keys.Left) {
			if q.state.Prev() {
				q.resetLikert()
				q.logger.Debug("previous question",
					zap.String("session_id", q.state.ID),
					zap.Int("index", q.state.Index()))
			}
			return q, nil
		}
	}

	var cmd tea.Cmd
	q.likert, cmd = q.likert.Update(msg)
	return q, cmd
}

// answer records v and either moves on or hands over to the result screen.
func (q *QuizScreen) answer(v int) tea.Cmd {
	question := q.state.Current()
	if err := q.state.Select(v); err != nil {
		q.logger.Warn("answer rejected",
			zap.String("session_id", q.state.ID),
			zap.String("question_id", question.ID),
			zap.Error(err))
		return nil
	}
	q.logger.Debug("answered",
		zap.String("session_id", q.state.ID),
		zap.String("question_id", question.ID),
		zap.Int("value", v))

	res, done := q.state.Result()
	if !done {
		q.resetLikert()
		return nil
	}

	fields := []zap.Field{
		zap.String("session_id", q.state.ID),
		zap.String("code", res.Code),
		zap.Duration("elapsed", q.state.Elapsed()),
	}
	for _, ds := range res.Dimensions {
		fields = append(fields, zap.Int(string(ds.Dimension), ds.Percent))
	}
	q.logger.Info("quiz completed", fields...)

	next := result.New(res, q.state.Mode, q.state.Elapsed(), q.logger)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := fmt.Sprintf("Question %d of %d", q.state.Index()+1, q.state.Len())
	progress := components.NewProgressBar(label, q.state.Progress(), true, cw).View()

	text := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.Text).
		Bold(true).
		Render(q.state.Current().Text)

	body := text + "\n\n" + q.likert.View()
	if q.confirmExit {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).
			Render("Press Esc again to leave. Your answers will be lost.")
	}

	return components.Frame(progress+"\n\n"+components.Card(body, cw-6), width, height)
}
