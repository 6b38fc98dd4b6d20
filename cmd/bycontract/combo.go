package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newComboCmd(a *app) *cobra.Command {
	var (
		combos      []string
		callContext string
	)

	cmd := &cobra.Command{
		Use:   "combo --combo LIST [--combo LIST...] VALUE...",
		Short: "Check values against alternative contract lists",
		Long: `Each --combo is a comma separated positional contract list. The values
pass when any one list accepts all of them; otherwise the failure of the
first list is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(combos) == 0 {
				return usageError(errors.New("at least one --combo is required"))
			}

			lists := make([][]string, len(combos))
			for i, c := range combos {
				lists[i] = splitList(c)
			}

			var ctx []string
			if callContext != "" {
				ctx = append(ctx, callContext)
			}
			if _, err := a.engine.ValidateCombo(parseValues(args), lists, ctx...); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "ok")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&combos, "combo", nil, "comma separated contract list, repeat for alternatives")
	cmd.Flags().StringVar(&callContext, "context", "", "label prefixed to failure messages")
	return cmd
}
