package cli

import (
	scaffoldtmpl "github.com/example/django2gorm/internal/templates/scaffold"
)

// DemoInput selects the built-in example schema instead of a file.
const DemoInput = "DEMO"

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "gorm_models.go"

// resolveInput returns either a path or, for DEMO, the demo lines.
func resolveInput(arg string) (string, []string) {
	if arg == DemoInput {
		return "", scaffoldtmpl.DemoSchema()
	}
	return arg, nil
}

// resolveOutput returns the output path from the positional arguments.
func resolveOutput(args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return DefaultOutput
}
