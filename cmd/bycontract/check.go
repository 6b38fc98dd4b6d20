package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		contracts   []string
		callContext string
		positional  bool
	)

	cmd := &cobra.Command{
		Use:   "check --contract CONTRACT [--contract CONTRACT...] VALUE...",
		Short: "Check values against a contract",
		Long: `Check one value against one contract, or a list of values against a
positional contract list. The list form is used when more than one contract
or value is given, or when --positional is set. Values are JSON; anything
that does not parse as JSON is taken as a string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(contracts) == 0 {
				return usageError(errors.New("at least one --contract is required"))
			}

			var ctx []string
			if callContext != "" {
				ctx = append(ctx, callContext)
			}

			values := parseValues(args)
			var err error
			if positional || len(contracts) > 1 || len(values) != 1 {
				_, err = a.engine.Validate(values, contracts, ctx...)
			} else {
				_, err = a.engine.Validate(values[0], contracts[0], ctx...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "ok")
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&contracts, "contract", "c", nil, "contract, repeat for positional lists")
	cmd.Flags().StringVar(&callContext, "context", "", "label prefixed to failure messages")
	cmd.Flags().BoolVar(&positional, "positional", false, "treat a single contract as a one-element list")
	return cmd
}
