package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/scoring"
)

var (
	scoreMode        string
	scoreAnswers     string
	scoreAnswersFile string
	scoreJSON        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive quiz",
	Long: `Score answers given on the command line or in a file.

--answers takes one value per question in catalog order, 1 (strongly
disagree) to 5 (strongly agree). Leave an entry empty to skip a question:

  mbti score --mode quick --answers "5,4,,3,1"

--answers-file takes a YAML mapping of question ID to value:

  ei-01: 5
  sn-04: 2`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVarP(&scoreMode, "mode", "m", "", "Question set: quick or deep (default from config)")
	f.StringVarP(&scoreAnswers, "answers", "a", "", "Comma-separated answers in question order")
	f.StringVarP(&scoreAnswersFile, "answers-file", "f", "", "YAML file mapping question ID to answer")
	f.BoolVar(&scoreJSON, "json", false, "Print the result as JSON")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "answers-file")
}

// scoreReport is the JSON shape of `mbti score --json`.
type scoreReport struct {
	Code        string                   `json:"code"`
	Name        string                   `json:"name,omitempty"`
	Temperament string                   `json:"temperament,omitempty"`
	Mode        questions.Mode           `json:"mode"`
	Answered    int                      `json:"answered"`
	Total       int                      `json:"total"`
	Dimensions  []scoring.DimensionScore `json:"dimensions"`
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreAnswers == "" && scoreAnswersFile == "" {
		return errors.New("one of --answers or --answers-file is required")
	}

	modeName := scoreMode
	if modeName == "" {
		modeName = cfg.Mode
	}
	mode, err := questions.ParseMode(modeName)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	qs, err := catalog.Questions(mode)
	if err != nil {
		return err
	}

	var answers scoring.Answers
	if scoreAnswersFile != "" {
		answers, err = loadAnswerFile(scoreAnswersFile)
	} else {
		answers, err = parseAnswerList(scoreAnswers, qs)
	}
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(scoring.Likert5)
	if err := checkAnswers(answers, qs, engine.Scale()); err != nil {
		return err
	}

	res := engine.Score(qs, answers)
	logger.Debug("scored",
		zap.String("mode", string(mode)),
		zap.Int("answered", len(answers)),
		zap.String("code", res.Code))

	report := scoreReport{
		Code:       res.Code,
		Mode:       mode,
		Answered:   len(answers),
		Total:      len(qs),
		Dimensions: res.Dimensions,
	}
	if p, err := profiles.Lookup(res.Code); err == nil {
		report.Name = p.Name
		report.Temperament = p.Temperament().DisplayName()
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(out, report)
	return nil
}

func printReport(w io.Writer, r scoreReport) {
	fmt.Fprintf(w, "Type: %s", r.Code)
	if r.Name != "" {
		fmt.Fprintf(w, " · %s (%s)", r.Name, r.Temperament)
	}
	fmt.Fprintf(w, "\nAnswered %d of %d (%s)\n\n", r.Answered, r.Total, r.Mode)
	for _, ds := range r.Dimensions {
		fmt.Fprintln(w, textBar(ds, 20))
	}
}

// textBar renders "E  75% [###############.....]  25% I".
func textBar(ds scoring.DimensionScore, width int) string {
	first, second := ds.Dimension.Poles()
	filled := ds.Percent * width / 100
	return fmt.Sprintf("%s %3d%% [%s%s] %3d%% %s",
		first, ds.Percent,
		strings.Repeat("#", filled), strings.Repeat(".", width-filled),
		100-ds.Percent, second)
}
