package main

import (
	"context"

	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the store",
	RunE:  runContact,
}

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "your email address")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "the message to send")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.Session.SubmitContact(context.Background(), contactName, contactEmail, contactMessage)
}
