package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/screen"
	"github.com/abhisek/mbti/internal/screens/modeselect"
	quizscreen "github.com/abhisek/mbti/internal/screens/quiz"
	"github.com/abhisek/mbti/internal/session"
)

var quizMode string

var quizCmd = &cobra.Command{
	Use:         "quiz",
	Short:       "Start the quiz straight away",
	Long:        "Open the interactive app on the quiz. Without --mode, you pick quick or deep first.",
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(quizStarter(quizMode))
	},
}

func init() {
	quizCmd.Flags().StringVarP(&quizMode, "mode", "m", "", "Question set: quick or deep")
}

// quizStarter returns a builder for the first screen of `mbti quiz`.
func quizStarter(modeFlag string) func(*questions.Catalog) (screen.Screen, error) {
	return func(catalog *questions.Catalog) (screen.Screen, error) {
		if modeFlag == "" {
			preferred, err := questions.ParseMode(cfg.Mode)
			if err != nil {
				return nil, err
			}
			return modeselect.New(catalog, preferred, logger), nil
		}

		mode, err := questions.ParseMode(modeFlag)
		if err != nil {
			return nil, err
		}
		qs, err := catalog.Questions(mode)
		if err != nil {
			return nil, err
		}
		st, err := session.New(mode, qs)
		if err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
		logger.Info("quiz started",
			zap.String("session_id", st.ID),
			zap.String("mode", string(mode)),
			zap.Int("questions", st.Len()))
		return quizscreen.New(st, logger), nil
	}
}
