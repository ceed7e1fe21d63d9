package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func contactCmd() *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res string
			err := withSpinner(cmd, func(ctx context.Context) error {
				var err error
				res, err = client.SendContact(ctx, name, email, message)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "your name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "your email")
	cmd.Flags().StringVarP(&message, "message", "m", "", "the message")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
