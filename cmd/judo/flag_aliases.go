package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var eventFlagAliases = map[string]string{
	"topic": "subject",
	"when":  "time",
}

// addEventFlagAliases registers the aliases whose target flag cmd defines.
func addEventFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		aliases := make(map[string]string, len(eventFlagAliases))
		for alias, target := range eventFlagAliases {
			if cmd.Flags().Lookup(target) != nil {
				aliases[alias] = target
			}
		}
		setFlagAliases(cmd.Flags(), aliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
