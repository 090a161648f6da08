package unbrew

import (
	"github.com/arthur-debert/unbrew/pkg/deps"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    exactArgs(0, MsgErrListArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.list")

			printer, err := a.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			orphans, err := deps.Orphans(cmd.Context(), a.client())
			if err != nil {
				return err
			}
			logger.Info().Int("count", len(orphans)).Msg("Found formulas not used as dependencies")

			for _, name := range orphans {
				printer.Formula(name)
			}
			return nil
		},
	}
}
