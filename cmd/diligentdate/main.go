// The diligentdate command extracts dates from strings, feeds and web pages.
//
// With no subcommand it parses each argument (or each stdin line when no
// arguments are given) and prints the date it found, one per line.
package main

import (
	"bufio"
	"diligentdate"
	"diligentdate/log"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var asJSON bool
var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "diligentdate [date strings]",
		Short: "Extract dates from strings, feeds and web pages",
		Args:  cobra.ArbitraryArgs,
		Run: func(_ *cobra.Command, args []string) {
			runParse(args)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print machine readable output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log progress detail")
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(htmlCmd)

	cobra.OnInitialize(func() {
		if !verbose {
			log.SetQuiet()
		}
	})

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

type parseResult struct {
	Input  string               `json:"input"`
	Found  bool                 `json:"found"`
	Moment *diligentdate.Moment `json:"moment,omitempty"`
}

func runParse(args []string) {
	inputs := args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			panic(err)
		}
	}

	if exitCode := parseInputs(inputs, os.Stdout, os.Stderr); exitCode != 0 {
		os.Exit(exitCode)
	}
}

// parseInputs prints one line per input and returns 1 when any input had no
// date in it, in JSON mode too.
func parseInputs(inputs []string, out io.Writer, errOut io.Writer) int {
	exitCode := 0
	for _, input := range inputs {
		moment, ok := diligentdate.Parse(input)
		if !ok {
			exitCode = 1
		}
		switch {
		case asJSON:
			result := parseResult{Input: input, Found: ok, Moment: nil}
			if ok {
				result.Moment = &moment
			}
			printJSON(out, result)
		case ok:
			fmt.Fprintln(out, moment)
		default:
			fmt.Fprintf(errOut, "no date in: %s\n", input)
		}
	}
	return exitCode
}

func printJSON(w io.Writer, value any) {
	bytes, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(w, string(bytes))
}

// readInput returns the contents of the file argument, or of stdin when no
// argument was given.
func readInput(args []string) string {
	if len(args) == 0 {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			panic(err)
		}
		return string(bytes)
	}

	bytes, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return string(bytes)
}
