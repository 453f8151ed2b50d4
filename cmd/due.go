package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List sections due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		due := svc.DueSections(timeNow())
		if len(due) == 0 {
			fmt.Println("Nothing due. Nice work.")
			return nil
		}

		for _, d := range due {
			sec := d.Section
			name := sec.Name
			if name == "" {
				name = sec.ID
			}
			piece := svc.Piece(sec.PieceID)
			if piece != nil {
				name = piece.Title + " / " + name
			}
			if d.OverdueDays >= 1 {
				fmt.Printf("%-50s %.0f days overdue\n", name, d.OverdueDays)
			} else {
				fmt.Printf("%-50s due today\n", name)
			}
		}
		return nil
	},
}
