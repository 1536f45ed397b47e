package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go-twic/text"
)

type entityOutput struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value"`
}

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "List the URLs, hashtags and mentions in text",
	Long: `List the URLs, hashtags and mentions found in text, in order.

Offsets are byte offsets into the UTF-8 input. Text is read from the
arguments, or from stdin when there are none.

Examples:
  twic extract "see http://example.com #go @gopher"
  echo "#go" | twic extract --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputText(cmd, args)
		if err != nil {
			return err
		}

		entities := text.ExtractEntities(in)
		if jsonOutput {
			out := make([]entityOutput, 0, len(entities))
			for _, e := range entities {
				out = append(out, entityOutput{Kind: e.Kind.String(), Start: e.Start, End: e.End, Value: e.Value})
			}
			return outputJSON(cmd.OutOrStdout(), out)
		}
		for _, e := range entities {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %4d %4d  %s\n", e.Kind, e.Start, e.End, e.Value)
		}
		if text.HasInvalidCharacters(in) {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: text contains characters Twitter rejects")
		}
		return nil
	},
}

var autolinkCmd = &cobra.Command{
	Use:   "autolink [text...]",
	Short: "Render text as HTML with entities linked",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		target, _ := cmd.Flags().GetString("target")
		fmt.Fprintln(cmd.OutOrStdout(), text.AutoLink(in, text.LinkOptions{Target: target}))
		return nil
	},
}

func init() {
	autolinkCmd.Flags().String("target", "", "Anchor target attribute, e.g. _blank")
	rootCmd.AddCommand(extractCmd, autolinkCmd)
}
