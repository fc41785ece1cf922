package main

import (
	"fmt"
	"os"
	"strings"
)

const usage = `Usage: mc [options] <source path>

Options:
--------
-h, --help        Displays usage information (ie. this text).
-config <path>    Path to a build profile TOML file (default: mc.toml next
                   to the source file, if present).
-out <path>       Path to write the generated LLVM IR to (default: output.ll,
                   or whatever mc.toml specifies).
-loglevel <lvl>   One of "silent", "error", "warn", "info" (default: info,
                   or whatever mc.toml specifies).
`

// options holds the parsed command line, before the build profile has had a
// chance to supply defaults for anything left unset.
type options struct {
	sourcePath string
	configPath string
	outPath    string
	logLevel   string
}

func printUsage(code int) {
	fmt.Print(usage)
	os.Exit(code)
}

func argumentError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "argument error: %s\n\n", fmt.Sprintf(format, args...))
	printUsage(1)
}

// withValue names the flags that consume the next argument as their value,
// as opposed to boolean flags like -h.
var withValue = map[string]bool{
	"config":   true,
	"out":      true,
	"loglevel": true,
}

// parseArgs walks os.Args[1:] classifying each token as a flag, an option
// (flag plus value), or the lone positional source path.
func parseArgs(args []string) options {
	var opts options

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			if opts.sourcePath != "" {
				argumentError("source path specified multiple times")
			}
			opts.sourcePath = arg
			continue
		}

		name := strings.TrimLeft(arg, "-")
		switch name {
		case "h", "help":
			printUsage(0)
		}

		if !withValue[name] {
			argumentError("unknown flag: %s", arg)
		}
		if i+1 >= len(args) {
			argumentError("option -%s requires an argument", name)
		}
		i++
		value := args[i]

		switch name {
		case "config":
			opts.configPath = value
		case "out":
			opts.outPath = value
		case "loglevel":
			switch value {
			case "silent", "error", "warn", "info":
			default:
				argumentError("invalid log level: %s", value)
			}
			opts.logLevel = value
		}
	}

	if opts.sourcePath == "" {
		argumentError("a source path must be specified")
	}

	return opts
}
