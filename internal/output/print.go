package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// UserError is a usage mistake rather than a runtime failure.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func PrintSuccess(msg string) {
	color.New(color.FgGreen).Fprintln(os.Stdout, msg)
}

func PrintInfo(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

func PrintWarning(msg string) {
	color.New(color.FgYellow).Fprintln(os.Stderr, "Warning: "+msg)
}

func PrintError(err error) {
	if err == nil {
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, "Error: "+err.Error())
}
