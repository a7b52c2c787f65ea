package cli

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/cotijoy/elasticsearch/internal/metadata"
	"github.com/cotijoy/elasticsearch/internal/output"
)

// loadSnapshot resolves the snapshot path (flag beats config default) and
// loads it. Returns a CLIError suitable for outputErrorCommon on failure.
func loadSnapshot(globals *Globals, flagPath string) (metadata.Snapshot, *CLIError) {
	path := flagPath
	if path == "" && globals.Config != nil {
		path = globals.Config.Defaults.Snapshot
	}
	if path == "" {
		return nil, &CLIError{
			Code:    "NO_SNAPSHOT",
			Message: "no snapshot file given (use --snapshot or set defaults.snapshot)",
		}
	}
	snap, err := metadata.Load(path)
	if err != nil {
		return nil, &CLIError{Code: "SNAPSHOT_LOAD_FAILED", Message: err.Error()}
	}
	return snap, nil
}

// resolvePattern applies the config default when no pattern argument was given.
func resolvePattern(globals *Globals, arg string) string {
	if arg != "" {
		return arg
	}
	if globals.Config != nil && globals.Config.Defaults.Pattern != "" {
		return globals.Config.Defaults.Pattern
	}
	return "_all"
}

// maybeNoStyle strips table colors when stdout is not a terminal.
func maybeNoStyle(globals *Globals) {
	if globals == nil || globals.Stdout == nil {
		return
	}
	if f, ok := globals.Stdout.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) {
			output.PlainStyles()
		}
		return
	}
	output.PlainStyles()
}
