package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds a shared -a/--all flag to list commands.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	const usage = "Include completed events and subjects outside the default list"
	if target == nil {
		cmd.Flags().BoolP("all", "a", false, usage)
		return
	}

	cmd.Flags().BoolVarP(target, "all", "a", false, usage)
}
