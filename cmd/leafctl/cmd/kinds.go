package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veecore/leafgo"
)

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "kinds lists the layer discriminants that reify to a typed layer.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range leafgo.KnownLayerKinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
