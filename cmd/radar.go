package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/radar"
	"github.com/abhisek/mbti/internal/scoring"
)

// radarInput holds the radar command's flags.
type radarInput struct {
	EI     int    `validate:"min=0,max=100"`
	SN     int    `validate:"min=0,max=100"`
	TF     int    `validate:"min=0,max=100"`
	JP     int    `validate:"min=0,max=100"`
	Size   int    `validate:"min=1,max=4096"`
	Rows   int    `validate:"min=9,max=101"`
	Format string `validate:"oneof=svg text json"`
	Output string
}

var (
	radarDefaults = radarInput{EI: 50, SN: 50, TF: 50, JP: 50, Rows: 21, Format: "svg"}
	radarFlags    = radarDefaults
)

// createOutput opens the -o destination.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Draw the 8-axis radar chart for a set of percentages",
	Long: `Draw the radar chart for first-pole percentages (E, S, T, J).

Formats:
  svg   standalone SVG document (default)
  text  character plot for the terminal
  json  projected chart geometry

Example:
  mbti radar --ei 75 --sn 40 --tf 62 --jp 30 --format text`,
	Args: cobra.NoArgs,
	RunE: runRadar,
}

func init() {
	f := radarCmd.Flags()
	f.IntVar(&radarFlags.EI, "ei", radarFlags.EI, "Extraversion percentage (Introversion is the rest)")
	f.IntVar(&radarFlags.SN, "sn", radarFlags.SN, "Sensing percentage")
	f.IntVar(&radarFlags.TF, "tf", radarFlags.TF, "Thinking percentage")
	f.IntVar(&radarFlags.JP, "jp", radarFlags.JP, "Judging percentage")
	f.IntVar(&radarFlags.Size, "size", 0, "SVG/JSON size in pixels (default from config)")
	f.IntVar(&radarFlags.Rows, "rows", radarFlags.Rows, "Text plot height in lines")
	f.StringVar(&radarFlags.Format, "format", radarFlags.Format, "Output format: svg, text or json")
	f.StringVarP(&radarFlags.Output, "output", "o", "", "Write to file instead of stdout")
}

func runRadar(cmd *cobra.Command, args []string) (err error) {
	in := radarFlags
	if in.Size == 0 {
		in.Size = cfg.ChartSize
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid radar flags: %w", err)
	}

	pct := scoring.Percentages{
		scoring.DimensionEI: in.EI,
		scoring.DimensionSN: in.SN,
		scoring.DimensionTF: in.TF,
		scoring.DimensionJP: in.JP,
	}

	out := cmd.OutOrStdout()
	if in.Output != "" {
		f, ferr := createOutput(in.Output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	if err := writeRadar(out, pct, in); err != nil {
		return err
	}
	logger.Debug("radar drawn", zap.String("format", in.Format), zap.Any("percentages", pct))
	return nil
}

func writeRadar(w io.Writer, pct scoring.Percentages, in radarInput) error {
	if in.Format == "text" {
		g, err := radar.Raster(pct, in.Rows)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, g.String())
		return err
	}

	chart, err := radar.Project(pct, float64(in.Size))
	if err != nil {
		return err
	}
	if in.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(chart)
	}
	_, err = io.WriteString(w, chart.SVG(radar.DefaultSVGOptions()))
	return err
}
