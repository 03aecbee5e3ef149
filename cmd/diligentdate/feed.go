package main

import (
	"diligentdate"
	"diligentdate/feed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var feedCmd *cobra.Command
var feedSorted bool

func init() {
	feedCmd = &cobra.Command{
		Use:   "feed [file]",
		Short: "List feed entries with their parsed timestamps",
		Args:  cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			runFeed(args)
		},
	}
	feedCmd.Flags().BoolVar(&feedSorted, "sorted", false, "order entries newest first")
}

type feedOutput struct {
	Kind    string               `json:"kind"`
	Title   string               `json:"title"`
	Moment  *diligentdate.Moment `json:"moment,omitempty"`
	Entries []feedEntryOutput    `json:"entries"`
}

type feedEntryOutput struct {
	Title   string               `json:"title"`
	URL     string               `json:"url"`
	Moment  *diligentdate.Moment `json:"moment,omitempty"`
	RawDate string               `json:"raw_date,omitempty"`
}

func runFeed(args []string) {
	content := readInput(args)
	document, err := feed.Parse(content, feed.ZeroLogger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	entries := document.Entries
	if feedSorted {
		entries = document.SortedByMomentDesc()
	}

	if asJSON {
		output := feedOutput{
			Kind:    string(document.Kind),
			Title:   document.Title,
			Moment:  nil,
			Entries: nil,
		}
		if document.HasMoment {
			moment := document.Moment
			output.Moment = &moment
		}
		for _, entry := range entries {
			entryOutput := feedEntryOutput{
				Title:   entry.Title,
				URL:     entry.URL,
				Moment:  nil,
				RawDate: entry.RawDate,
			}
			if entry.HasMoment {
				moment := entry.Moment
				entryOutput.Moment = &moment
			}
			output.Entries = append(output.Entries, entryOutput)
		}
		printJSON(os.Stdout, output)
		return
	}

	if document.HasMoment {
		fmt.Printf("%s: %s (%s)\n", document.Kind, document.Title, document.Moment)
	} else {
		fmt.Printf("%s: %s\n", document.Kind, document.Title)
	}
	for _, entry := range entries {
		momentStr := "?"
		if entry.HasMoment {
			momentStr = entry.Moment.String()
		} else if entry.RawDate != "" {
			momentStr = fmt.Sprintf("? (%s)", entry.RawDate)
		}
		fmt.Printf("%s\t%s\t%s\n", momentStr, entry.Title, entry.URL)
	}
}
