package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

const (
	backendFlag      = "backend"
	projectFlag      = "project"
	timelineItemFlag = "item"
)

// BackendFromArgs returns the value of --backend from raw command-line
// arguments, or "" when it is absent. main needs the backend before the
// services, and with them the command tree, can be built.
func BackendFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--"+backendFlag+"="); ok {
			return v
		}
		if arg == "--"+backendFlag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// addProjectFlag registers the --project flag shared by every create command.
func addProjectFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, projectFlag, "p", "", "Project ID or ID prefix")
}

// addTimelineItemFlag registers the --item flag for entities attached to a
// timeline item.
func addTimelineItemFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, timelineItemFlag, "i", "", "Timeline item ID or ID prefix")
}
