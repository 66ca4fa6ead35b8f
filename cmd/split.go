package cmd

import (
	"fmt"
	"strconv"
	"time"

	"paisa/internal/cli"
	"paisa/internal/model"
	"paisa/internal/split"

	"github.com/spf13/cobra"
)

var (
	flagSplitAmong  []string
	flagSplitRecord bool
)

var splitCmd = &cobra.Command{
	Use:   "split <amount> [people]",
	Short: "Split a bill across people",
	Example: `  paisa split 1200 4
  paisa split 847.50 --among Asha,Ravi,Meera
  paisa split 1200 4 --record     # also record your share as Social`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringSliceVar(&flagSplitAmong, "among", nil, "Comma-separated names to split among")
	splitCmd.Flags().BoolVar(&flagSplitRecord, "record", false, "Record your share as a Social expense")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(_ *cobra.Command, args []string) error {
	total, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad amount %q", args[0])
	}

	var shares []split.Share
	if len(flagSplitAmong) > 0 {
		shares, err = split.Among(total, flagSplitAmong)
		if err != nil {
			return err
		}
	} else {
		if len(args) < 2 {
			return fmt.Errorf("give a people count or --among names")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad people count %q", args[1])
		}
		amounts, err := split.Even(total, n)
		if err != nil {
			return err
		}
		shares = make([]split.Share, n)
		for i, a := range amounts {
			shares[i] = split.Share{Name: fmt.Sprintf("Person %d", i+1), Amount: a}
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPLIT  " + cli.FormatRupees(total)))
	fmt.Println()

	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Name, cli.FormatRupees(s.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Who", "Owes"},
		Rows:    rows,
	}))

	if !flagSplitRecord {
		fmt.Println()
		return nil
	}

	// Your share is the first one (it absorbs any remainder paise).
	mine := shares[0].Amount
	tx, err := model.NewTransaction(
		strconv.FormatFloat(mine, 'f', -1, 64),
		model.CategorySocial, model.MethodUPI,
		fmt.Sprintf("my share of %s split %d ways", cli.FormatRupees(total), len(shares)),
		time.Now(),
	)
	if err != nil {
		return err
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := l.Add(tx); err != nil {
		return err
	}

	fmt.Printf("\n  Recorded your share: %s (Social)\n\n", cli.FormatRupees(mine))
	return nil
}
