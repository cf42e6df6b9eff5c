package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nghia89/landingpage-wedding-sub000/config"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/siteclient"
)

const toastTTL = 4 * time.Second

var (
	baseURL string

	site *siteclient.Client
	bus  *notify.Bus
)

var rootCmd = &cobra.Command{
	Use:           "adminconsole",
	Short:         "Operator console for the wedding studio API",
	Long:          "adminconsole talks to a running wedding studio backend over its public and admin HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if baseURL == "" {
			baseURL = cfg.Client.BaseURL
		}

		bus = notify.NewBus(toastTTL)
		bus.Subscribe(printToast)

		site = siteclient.New(
			apiclient.New(baseURL),
			siteclient.WithNotifier(bus),
			siteclient.WithDebounce(time.Duration(cfg.Client.DebounceMS)*time.Millisecond),
		)
		return nil
	},
}

// Execute runs the console and exits non-zero on command failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func printToast(t notify.Toast) {
	switch t.Level {
	case notify.LevelSuccess:
		pterm.Success.Println(t.Message)
	case notify.LevelError:
		pterm.Error.Println(t.Message)
	default:
		pterm.Info.Println(t.Message)
	}
}

// mutateFeedback keeps the error toast on and swaps in a command-specific
// success message.
func mutateFeedback(success string) mutate.Options {
	opts := mutate.DefaultOptions()
	opts.SuccessMessage = success
	return opts
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (defaults to client.base_url from config)")
}
