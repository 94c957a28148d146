// Package flagx lets several parsers share os.Args by handing each one only
// the flags it owns.
package flagx

import (
	"flag"
	"os"
	"strings"

	"github.com/samber/lo"
)

// FilterArgs keeps the allowed flags from args, together with their values.
//
// Accepted forms are "-n 16" (value in the next argument, unless it starts
// with '-') and "-n=16". Parsing stops at a bare "--". The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if lo.Contains(allowedFlags, name) {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !lo.Contains(allowedFlags, arg) {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the value of -c or -config in args, or "" when neither
// is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// ConfigFileFlag is ConfigPath applied to the process arguments.
func ConfigFileFlag() string {
	return ConfigPath(os.Args[1:])
}
