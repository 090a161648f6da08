package unbrew

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/ui"
	"github.com/spf13/cobra"
)

// Run executes unbrew with args and returns the process exit code. It is the
// only place that turns errors into diagnostics.
func Run(args []string, stdout, stderr io.Writer) int {
	return execute(NewRootCmd(), args, stdout, stderr)
}

func execute(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	// A failed brew call speaks for itself: pass its stderr through as is.
	if diag := errors.Stderr(err); diag != "" {
		fmt.Fprint(stderr, diag)
		if !strings.HasSuffix(diag, "\n") {
			fmt.Fprintln(stderr)
		}
	} else {
		ui.NewPrinter(stderr, ui.FormatAuto).Error(err)
	}

	if errors.IsErrorCode(err, errors.ErrInvalidInput) && cmd != nil {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
	}

	return 1
}
