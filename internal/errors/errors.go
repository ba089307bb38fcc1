package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/betterrest/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix.
// Multi-line messages (joined errors) are indented under the prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + strings.ReplaceAll(err.Error(), "\n", "\n  ")
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	FatalCode(err, 1)
}

// FatalCode logs an error and exits the program with the given exit code.
// It does nothing when err is nil.
func FatalCode(err error, code int) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err, "exit_code", code)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(code)
}
