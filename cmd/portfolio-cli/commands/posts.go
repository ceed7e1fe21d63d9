package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"portfolio/internal/content"
)

func postsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var posts []content.Post
			err := withSpinner(cmd, func(ctx context.Context) error {
				var err error
				posts, err = client.Posts(ctx, limit)
				return err
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range posts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date, p.Slug, p.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "number of posts (0 for all)")

	return cmd
}

func postCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <slug>",
		Short: "Show a single blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p content.Post
			err := withSpinner(cmd, func(ctx context.Context) error {
				var err error
				p, err = client.Post(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s | %s\n\n%s\n", p.Title, p.Date, p.Category, p.Content)
			return nil
		},
	}
}
