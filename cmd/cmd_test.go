package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/config"
	"github.com/abhisek/mbti/internal/questions"
	"github.com/abhisek/mbti/internal/radar"
	"github.com/abhisek/mbti/internal/scoring"
)

// resetGlobals restores flag and config globals after a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cfg = config.DefaultConfig()
		logger = zap.NewNop()
		verbose = false
		noSplash = false
		scoreMode, scoreAnswers, scoreAnswersFile, scoreJSON = "", "", "", false
		radarFlags = radarDefaults
		typesFilter = ""
		quizMode = ""
	})
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	c := &cobra.Command{}
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	return c, buf
}

// setupCmd builds a command carrying fresh copies of the persistent flags.
func setupCmd(use string, tui bool) *cobra.Command {
	c := &cobra.Command{Use: use}
	if tui {
		c.Annotations = map[string]string{tuiAnnotation: "true"}
	}
	for _, name := range []string{"theme", "log-file", "log-level", "catalog"} {
		c.Flags().String(name, "", "")
	}
	return c
}

func quickQuestions(t *testing.T) []scoring.Question {
	t.Helper()
	qs, err := questions.Load(questions.ModeQuick)
	require.NoError(t, err)
	return qs
}

func TestParseAnswerList(t *testing.T) {
	qs := quickQuestions(t)

	got, err := parseAnswerList("5, 4,,-,1", qs)
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{qs[0].ID: 5, qs[1].ID: 4, qs[4].ID: 1}, got)
}

func TestParseAnswerList_Errors(t *testing.T) {
	qs := quickQuestions(t)

	_, err := parseAnswerList("5,x", qs)
	assert.ErrorContains(t, err, `answer 2: "x" is not a number`)

	_, err = parseAnswerList(strings.Repeat("3,", len(qs))+"3", qs)
	assert.ErrorContains(t, err, "answers for 32 questions")
}

func TestCheckAnswers(t *testing.T) {
	qs := quickQuestions(t)

	assert.NoError(t, checkAnswers(scoring.Answers{qs[0].ID: 1, qs[1].ID: 5}, qs, scoring.Likert5))

	err := checkAnswers(scoring.Answers{qs[0].ID: 6, qs[1].ID: 0, "zz-99": 3}, qs, scoring.Likert5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), qs[0].ID+": 6 is not in 1..5")
	assert.Contains(t, err.Error(), qs[1].ID+": 0 is not in 1..5")
	assert.Contains(t, err.Error(), "zz-99: unknown question")
}

func TestLoadAnswerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ei-01: 5\nsn-02: 2\n"), 0o644))

	got, err := loadAnswerFile(path)
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{"ei-01": 5, "sn-02": 2}, got)

	_, err = loadAnswerFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunScore_Text(t *testing.T) {
	resetGlobals(t)
	scoreAnswers = "5,5,5,5"

	c, buf := testCmd()
	require.NoError(t, runScore(c, nil))

	out := buf.String()
	assert.Contains(t, out, "Type: ESTJ")
	assert.Contains(t, out, "Answered 4 of 32 (quick)")
	assert.Contains(t, out, "E 100% [####################]   0% I")
}

func TestRunScore_JSON(t *testing.T) {
	resetGlobals(t)
	scoreAnswers = "1,1,1,1,5,5,5,5"
	scoreJSON = true

	c, buf := testCmd()
	require.NoError(t, runScore(c, nil))

	var got scoreReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "INFP", got.Code)
	assert.Equal(t, "Mediator", got.Name)
	assert.Equal(t, 8, got.Answered)
	require.Len(t, got.Dimensions, 4)
	for _, ds := range got.Dimensions {
		assert.Equal(t, 0, ds.Percent)
		assert.Equal(t, 2, ds.Count)
	}
}

func TestRunScore_AnswersFileDeep(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ei-20: 5\n"), 0o644))
	scoreMode = "deep"
	scoreAnswersFile = path

	c, buf := testCmd()
	require.NoError(t, runScore(c, nil))
	// ei-20 targets introversion.
	assert.Contains(t, buf.String(), "Type: ISTJ")
}

func TestRunScore_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{"no answers", func() {}, "--answers or --answers-file"},
		{"bad mode", func() { scoreMode = "marathon"; scoreAnswers = "5" }, "unknown quiz mode"},
		{"off scale", func() { scoreAnswers = "9" }, "is not in 1..5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			tt.setup()
			c, _ := testCmd()
			assert.ErrorContains(t, runScore(c, nil), tt.want)
		})
	}
}

func TestRunRadar_Formats(t *testing.T) {
	t.Run("svg", func(t *testing.T) {
		resetGlobals(t)
		c, buf := testCmd()
		require.NoError(t, runRadar(c, nil))
		assert.True(t, strings.HasPrefix(buf.String(), "<svg"))
		assert.Contains(t, buf.String(), `width="240"`)
	})

	t.Run("json", func(t *testing.T) {
		resetGlobals(t)
		radarFlags.Format = "json"
		radarFlags.Size = 200
		radarFlags.EI = 100
		c, buf := testCmd()
		require.NoError(t, runRadar(c, nil))

		var chart radar.Chart
		require.NoError(t, json.Unmarshal(buf.Bytes(), &chart))
		v, ok := chart.Vertex(scoring.PoleE)
		require.True(t, ok)
		assert.InDelta(t, 100, v.X, 1e-9)
		assert.InDelta(t, 20, v.Y, 1e-9)
	})

	t.Run("text", func(t *testing.T) {
		resetGlobals(t)
		radarFlags.Format = "text"
		radarFlags.Rows = 11
		c, buf := testCmd()
		require.NoError(t, runRadar(c, nil))
		assert.Equal(t, 11, strings.Count(buf.String(), "\n"))
	})
}

func TestRunRadar_OutputFile(t *testing.T) {
	resetGlobals(t)
	radarFlags.Output = filepath.Join(t.TempDir(), "chart.svg")
	c, buf := testCmd()
	require.NoError(t, runRadar(c, nil))

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(radarFlags.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
}

type failingCloser struct {
	bytes.Buffer
}

func (f *failingCloser) Close() error { return errors.New("disk full") }

func TestRunRadar_OutputCloseError(t *testing.T) {
	resetGlobals(t)
	orig := createOutput
	t.Cleanup(func() { createOutput = orig })

	sink := &failingCloser{}
	createOutput = func(string) (io.WriteCloser, error) { return sink, nil }
	radarFlags.Output = "chart.svg"

	c, _ := testCmd()
	err := runRadar(c, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close output")
	assert.Contains(t, sink.String(), "<svg")
}

func TestRunRadar_OutputCreateError(t *testing.T) {
	resetGlobals(t)
	radarFlags.Output = filepath.Join(t.TempDir(), "missing", "chart.svg")

	c, _ := testCmd()
	err := runRadar(c, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")
}

func TestRunRadar_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*radarInput)
	}{
		{"percent", func(in *radarInput) { in.TF = 101 }},
		{"negative size", func(in *radarInput) { in.Size = -5 }},
		{"rows", func(in *radarInput) { in.Rows = 3 }},
		{"format", func(in *radarInput) { in.Format = "png" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			tt.mutate(&radarFlags)
			c, _ := testCmd()
			assert.Error(t, runRadar(c, nil))
		})
	}
}

func TestRunTypes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		resetGlobals(t)
		c, buf := testCmd()
		require.NoError(t, runTypes(c, nil))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 16)
		assert.Contains(t, lines[0], "INTJ")
	})

	t.Run("filter", func(t *testing.T) {
		resetGlobals(t)
		typesFilter = "nf"
		c, buf := testCmd()
		require.NoError(t, runTypes(c, nil))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 4)
		for _, l := range lines {
			assert.Contains(t, l, "Diplomats")
		}
	})

	t.Run("show", func(t *testing.T) {
		resetGlobals(t)
		c, buf := testCmd()
		require.NoError(t, runTypes(c, []string{"enfp"}))
		assert.Contains(t, buf.String(), "ENFP")
		assert.Contains(t, buf.String(), "Strengths")
	})

	t.Run("unknown", func(t *testing.T) {
		resetGlobals(t)
		c, _ := testCmd()
		assert.Error(t, runTypes(c, []string{"ABCD"}))
	})
}

func TestParsePoles(t *testing.T) {
	got, err := parsePoles(" ntN ")
	require.NoError(t, err)
	assert.Equal(t, []scoring.Pole{scoring.PoleN, scoring.PoleT}, got)

	_, err = parsePoles("EI")
	assert.ErrorContains(t, err, "opposite poles")

	_, err = parsePoles("Q")
	assert.ErrorContains(t, err, "not a type letter")
}

func TestSetup_HeadlessLogsToStderr(t *testing.T) {
	resetGlobals(t)
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvTheme, "")
	t.Setenv(config.EnvMode, "deep")

	c := setupCmd("score", false)
	require.NoError(t, c.Flags().Set("theme", "mono"))

	require.NoError(t, setup(c, nil))
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "deep", cfg.Mode)
}

func TestSetup_TUILogsToFile(t *testing.T) {
	resetGlobals(t)
	t.Chdir(t.TempDir())
	logPath := filepath.Join(t.TempDir(), "logs", "mbti.log")
	t.Setenv(config.EnvLogFile, logPath)

	c := setupCmd("quiz", true)

	require.NoError(t, setup(c, nil))
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetup_InvalidConfig(t *testing.T) {
	resetGlobals(t)
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvTheme, "neon")

	c := setupCmd("types", false)
	assert.ErrorContains(t, setup(c, nil), "invalid config")
}

func TestResetGlobals_ClearsQuizMode(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		resetGlobals(t)
		quizMode = "deep"
	})
	assert.Empty(t, quizMode)
}

func TestQuizStarter(t *testing.T) {
	resetGlobals(t)

	s, err := quizStarter("")(questions.Default())
	require.NoError(t, err)
	assert.Equal(t, "Choose a mode", s.Title())

	s, err = quizStarter("deep")(questions.Default())
	require.NoError(t, err)
	assert.Equal(t, "Quiz", s.Title())

	_, err = quizStarter("long")(questions.Default())
	assert.ErrorIs(t, err, questions.ErrUnknownMode)
}

func TestVersion(t *testing.T) {
	c, buf := testCmd()
	versionCmd.Run(c, nil)
	assert.Equal(t, "mbti (devel)\n", buf.String())
}
