package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bycontract/pkg/is"
)

func newTypesCmd(a *app) *cobra.Command {
	var primitives bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered custom types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if primitives {
				for _, name := range is.Names() {
					fmt.Fprintln(a.out, name)
				}
				return nil
			}

			types := a.engine.Types()
			names := make([]string, 0, len(types))
			for name := range types {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				def, err := json.Marshal(types[name])
				if err != nil {
					def = []byte(fmt.Sprintf("%T", types[name]))
				}
				fmt.Fprintf(a.out, "%s\t%s\n", name, def)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&primitives, "primitives", false, "list primitive type names instead")
	return cmd
}
