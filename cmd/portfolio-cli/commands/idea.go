package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// htmlToText undoes the display conversion for terminal output.
var htmlToText = strings.NewReplacer(
	"<br/>", "\n",
	"<strong>", "", "</strong>", "",
	"<em>", "", "</em>", "",
	"&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&amp;", "&",
)

func ideaCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Generate a project idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res string
			err := withSpinner(cmd, func(ctx context.Context) error {
				var err error
				res, err = client.ProjectIdea(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if !raw {
				res = htmlToText.Replace(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "html", false, "print the HTML as returned by the server")

	return cmd
}
