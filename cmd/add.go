package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hartmut/reprise/internal/section"
)

var addCmd = &cobra.Command{
	Use:   "add <piece-title> <section>...",
	Short: "Register a piece and its sections",
	Long: `Register a piece with one or more sections. Each section argument is
NAME or NAME:DIFFICULTY, where DIFFICULTY is easy, average, or difficult
(default average).

Example:
  reprise add "Nocturne Op. 9 No. 2" intro:easy development:difficult coda`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		piece := &section.Piece{
			ID:    uuid.NewString(),
			Title: args[0],
		}
		for _, arg := range args[1:] {
			sec, err := parseSectionArg(arg, piece.ID)
			if err != nil {
				return err
			}
			piece.Sections = append(piece.Sections, sec)
		}

		if err := svc.AddPiece(cmd.Context(), piece); err != nil {
			return fmt.Errorf("add piece: %w", err)
		}

		fmt.Printf("Added %q with %d sections:\n", piece.Title, len(piece.Sections))
		for _, sec := range piece.Sections {
			fmt.Printf("  %s  %s (%s)\n", sec.ID, sec.Name, strings.ToLower(sec.Difficulty.String()))
		}
		return nil
	},
}

func parseSectionArg(arg, pieceID string) (*section.Section, error) {
	name := arg
	difficulty := section.Average
	if i := strings.LastIndex(arg, ":"); i >= 0 {
		name = arg[:i]
		switch strings.ToLower(arg[i+1:]) {
		case "easy":
			difficulty = section.Easy
		case "average":
			difficulty = section.Average
		case "difficult":
			difficulty = section.Difficult
		default:
			return nil, fmt.Errorf("unknown difficulty %q (easy, average, difficult)", arg[i+1:])
		}
	}
	if name == "" {
		return nil, fmt.Errorf("empty section name in %q", arg)
	}
	sec := section.New(uuid.NewString(), pieceID, difficulty)
	sec.Name = name
	return sec, nil
}
