package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mbti/internal/profiles"
	"github.com/abhisek/mbti/internal/scoring"
)

var typesFilter string

var typesCmd = &cobra.Command{
	Use:   "types [CODE]",
	Short: "List the 16 types, or describe one",
	Long: `Without arguments, list every type in gallery order. --filter keeps
only codes containing all the given letters, e.g. --filter NT.

With a type code, print that type's full profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().StringVar(&typesFilter, "filter", "", "Letters every listed code must contain, e.g. NT")
}

func runTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		p, err := profiles.Lookup(args[0])
		if err != nil {
			return err
		}
		printProfile(out, p)
		return nil
	}

	poles, err := parsePoles(typesFilter)
	if err != nil {
		return err
	}
	list := profiles.Filter(poles)
	if len(list) == 0 {
		fmt.Fprintln(out, "No types match.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(out, "%s  %s  %-14s %s\n", p.Avatar, p.Code, p.Name, p.Temperament().DisplayName())
	}
	return nil
}

// parsePoles turns "nt" into [N T]. Both poles of one dimension is an error.
func parsePoles(s string) ([]scoring.Pole, error) {
	seen := map[scoring.Dimension]scoring.Pole{}
	var poles []scoring.Pole
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		p := scoring.Pole(string(r))
		d := p.Dimension()
		if d == "" {
			return nil, fmt.Errorf("filter: %q is not a type letter", r)
		}
		if prev, ok := seen[d]; ok && prev != p {
			return nil, fmt.Errorf("filter: %s and %s are opposite poles", prev, p)
		}
		if _, ok := seen[d]; !ok {
			seen[d] = p
			poles = append(poles, p)
		}
	}
	return poles, nil
}

func printProfile(w io.Writer, p profiles.Profile) {
	fmt.Fprintf(w, "%s %s · %s (%s)\n\n", p.Avatar, p.Code, p.Name, p.Temperament().DisplayName())
	fmt.Fprintln(w, p.Description)
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s\n", title)
		for _, item := range items {
			fmt.Fprintf(w, "  • %s\n", item)
		}
	}
	section("Strengths", p.Strengths)
	section("Habits", p.Habits)
	section("Growth", p.Growth)
	section("Well-known examples", p.Representatives)
}
