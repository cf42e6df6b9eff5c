package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/siteclient"
)

var newsletterCmd = &cobra.Command{
	Use:   "newsletter",
	Short: "Manage newsletter subscriptions",
}

var newsletterSubscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Subscribe an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := site.NewsletterSubscribe()
		sub, err := m.Submit(cmd.Context(), args[0], siteclient.NewsletterSubscribeOptions())
		if err != nil {
			return err
		}
		pterm.Printfln("subscribed %s at %s", sub.Email, sub.SubscribedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	newsletterCmd.AddCommand(newsletterSubscribeCmd)
	rootCmd.AddCommand(newsletterCmd)
}
