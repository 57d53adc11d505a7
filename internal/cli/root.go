package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dshills/isprime/internal/input"
	"github.com/dshills/isprime/internal/prime"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const (
	usageTemplate = "Usage: {{.UseLine}}\n{{.Long}}\n"
	helpTemplate  = "{{.UsageString}}"
)

// Printed verbatim after the Error: label.
var (
	errArgCount     = &cliError{msg: "Incorrect number of arguments.", usage: true}
	errInvalidInput = &cliError{msg: "Invalid input. Please provide a valid positive integer.", usage: true}
	errTooLarge     = &cliError{msg: fmt.Sprintf("Number is too large (maximum %d).", uint64(math.MaxUint64))}
)

// cliError is a failure reported to the user verbatim. When usage is set the
// usage text follows the message on stderr.
type cliError struct {
	msg   string
	usage bool
}

func (e *cliError) Error() string { return e.msg }

func newRootCmd(program string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   program + " <positive integer>",
		Short: "Check whether a number is prime",
		Long:  "Checks if the provided number is a prime number.",

		// -5 must reach the parser as a value, not be rejected as an unknown
		// shorthand flag. Help is handled in RunE instead.
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if len(args) != 1 {
				return errArgCount
			}

			n, err := input.Parse(args[0])
			if err != nil {
				if errors.Is(err, input.ErrOverflow) {
					return errTooLarge
				}
				return errInvalidInput
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), prime.IsPrime(n))
			return err
		},
	}
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

// Run executes the command for args and returns the process exit code.
// program is the name shown in usage text.
func Run(program string, args []string, stdout, stderr io.Writer) int {
	// Cobra falls back to os.Args when handed a nil slice.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(program)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var err error
	if isCompletionRequest(args) {
		// Execute registers the hidden completion commands itself, so these
		// names would never reach RunE.
		err = cmd.RunE(cmd, args)
	} else {
		err = cmd.Execute()
	}
	if err != nil {
		printError(stderr, err)
		var ce *cliError
		if errors.As(err, &ce) && ce.usage {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return ExitFailure
	}
	return ExitSuccess
}

func isCompletionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

func printError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold)
	if !isTerminal(w) {
		label.DisableColor()
	}
	label.Fprint(w, "Error:")
	fmt.Fprintln(w, "", err)
}

// isTerminal reports whether w is a console. color.NoColor only inspects
// os.Stdout, which says nothing about a caller-supplied writer.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
