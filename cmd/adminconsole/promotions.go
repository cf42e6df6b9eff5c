package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/siteclient"
)

var promotionListFlags struct {
	limit      int
	activeOnly bool
	mock       bool
}

var promotionsCmd = &cobra.Command{
	Use:   "promotions",
	Short: "Inspect the promotions shown on the landing page",
}

var promotionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List promotions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := site
		if promotionListFlags.mock {
			// Offline preview against a canned source, same rendering path.
			sc = siteclient.New(nil,
				siteclient.WithNotifier(bus),
				siteclient.WithPromotionSource(mockPromotions),
			)
		}

		var params siteclient.PromotionListParams
		params.Limit = promotionListFlags.limit
		if promotionListFlags.activeOnly {
			active := true
			params.Active = &active
		}

		q := sc.Promotions(cmd.Context(), params)
		defer q.Close()

		promos, err := q.Execute(cmd.Context())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"ID", "Title", "Discount", "Start", "End", "Active"}}
		for _, p := range promos {
			active := "no"
			if p.IsActive {
				active = "yes"
			}
			data = append(data, []string{p.ID, p.Title, p.Discount, p.StartDate, p.EndDate, active})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var mockPromotions = siteclient.StaticPromotionSource{
	{ID: "mock-1", Title: "Early bird 2027", Description: "Book a 2027 wedding before new year", Discount: "15%", StartDate: "2026-09-01", EndDate: "2026-12-31", IsActive: true},
	{ID: "mock-2", Title: "Weekday ceremony", Description: "Monday to Thursday venues", Discount: "10%", StartDate: "2026-01-01", EndDate: "2026-06-30", IsActive: false},
}

func init() {
	f := promotionsListCmd.Flags()
	f.IntVar(&promotionListFlags.limit, "limit", 0, "Max promotions to return (0 = server default)")
	f.BoolVar(&promotionListFlags.activeOnly, "active", false, "Only currently active promotions")
	f.BoolVar(&promotionListFlags.mock, "mock", false, "Render canned promotions without hitting the backend")

	promotionsCmd.AddCommand(promotionsListCmd)
	rootCmd.AddCommand(promotionsCmd)
}
