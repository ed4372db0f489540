package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} references with environment variable
// values and returns the substituted content plus the list of unresolved
// variables. Two bash-style forms are supported: ${VAR:-fallback} uses
// fallback when VAR is unset or empty, and ${VAR:?message} reports
// "VAR: message" as missing when VAR is unset or empty. A plain ${VAR}
// that resolves to nothing is left verbatim and reported by name.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		name, op, arg := splitEnvExpr(match[2 : len(match)-1])

		switch op {
		case ":-":
			if value := os.Getenv(name); value != "" {
				return value
			}
			return arg
		case ":?":
			if value := os.Getenv(name); value != "" {
				return value
			}
			if arg != "" {
				missing = append(missing, name+": "+arg)
			} else {
				missing = append(missing, name)
			}
			return match
		default:
			if value, ok := os.LookupEnv(name); ok {
				return value
			}
			missing = append(missing, name)
			return match
		}
	})

	return result, missing
}

// splitEnvExpr splits "VAR:-arg" or "VAR:?arg" at the first operator.
// Expressions without an operator return op == "".
func splitEnvExpr(expr string) (name, op, arg string) {
	for i := 0; i+1 < len(expr); i++ {
		if expr[i] == ':' && (expr[i+1] == '-' || expr[i+1] == '?') {
			return expr[:i], expr[i : i+2], expr[i+2:]
		}
	}
	return expr, "", ""
}
