package unbrew

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "A little brew helper to remove formulas nothing needs"
	MsgListShort  = "List formulas not used as a dependency"
	MsgRmDepShort = "Remove a formula with all its unused dependencies"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrListArgs     = "list takes no arguments, got %d"
	MsgErrRmDepArgs    = "rm-dep requires exactly one formula name, got %d"
	MsgErrOutputFormat = "invalid output.format %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/rmdep-long.txt
	msgRmDepLongRaw string
	MsgRmDepLong    = strings.TrimSpace(msgRmDepLongRaw)

	//go:embed msgs/rmdep-example.txt
	msgRmDepExampleRaw string
	MsgRmDepExample    = strings.TrimRight(msgRmDepExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
