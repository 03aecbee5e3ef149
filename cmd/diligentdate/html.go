package main

import (
	"diligentdate"
	"diligentdate/feed"
	"diligentdate/htmldate"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var htmlCmd *cobra.Command

func init() {
	htmlCmd = &cobra.Command{
		Use:   "html [file]",
		Short: "Find the publication date of an HTML page",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			runHTML(args)
		},
	}
}

type htmlOutput struct {
	Found  bool                 `json:"found"`
	Moment *diligentdate.Moment `json:"moment,omitempty"`
	Source string               `json:"source,omitempty"`
	Raw    string               `json:"raw,omitempty"`
}

func runHTML(args []string) {
	content := readInput(args)
	result, err := htmldate.Find(content, feed.ZeroLogger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if result == nil {
		if asJSON {
			printJSON(os.Stdout, htmlOutput{Found: false, Moment: nil, Source: "", Raw: ""})
		} else {
			fmt.Fprintln(os.Stderr, "no date found")
		}
		os.Exit(1)
	}

	if asJSON {
		printJSON(os.Stdout, htmlOutput{
			Found:  true,
			Moment: &result.Moment,
			Source: string(result.Source),
			Raw:    result.Raw,
		})
		return
	}
	fmt.Printf("%s (from %s: %s)\n", result.Moment, result.Source, result.Raw)
}
