package unbrew

import (
	"strings"

	"github.com/arthur-debert/unbrew/pkg/deps"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/remover"
	"github.com/spf13/cobra"
)

func newRmDepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "rm-dep <name>",
		Short:             MsgRmDepShort,
		Long:              MsgRmDepLong,
		Example:           MsgRmDepExample,
		GroupID:           "core",
		Args:              exactArgs(1, MsgErrRmDepArgs),
		ValidArgsFunction: orphanCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.rm-dep")

			printer, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := remover.New(a.client(), printer).RemoveWithDependencies(cmd.Context(), args[0])
			if err != nil {
				logger.Error().
					Str("target", args[0]).
					Strs("removed", result.Removed).
					Msg("Cascade removal aborted")
				return err
			}

			logger.Info().
				Str("target", result.Target).
				Bool("dependency", result.Dependency).
				Strs("removed", result.Removed).
				Msg("rm-dep finished")
			return nil
		},
	}
}

// orphanCompletion completes rm-dep with the formulas it would accept.
func orphanCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		// A no-op once the persistent pre-run has loaded the config.
		if err := a.ensureConfig(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		orphans, err := deps.Orphans(cmd.Context(), a.client())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, name := range orphans {
			if strings.HasPrefix(name, toComplete) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
