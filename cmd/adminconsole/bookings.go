package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/siteclient"
)

var bookingListFlags struct {
	status string
	date   string
	search string
	page   int
	limit  int
}

var bookingSubmitFlags struct {
	name    string
	phone   string
	email   string
	date    string
	time    string
	service string
	message string
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Inspect and manage consultation bookings",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings with the admin filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := site.Bookings(cmd.Context(), siteclient.BookingListParams{
			Page:   bookingListFlags.page,
			Limit:  bookingListFlags.limit,
			Status: bookingListFlags.status,
			Date:   bookingListFlags.date,
			Search: bookingListFlags.search,
		})
		defer q.Close()

		page, err := q.Execute(cmd.Context())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"ID", "Customer", "Phone", "Date", "Time", "Status"}}
		for _, b := range page.Items {
			data = append(data, []string{b.ID, b.CustomerName, b.Phone, b.ConsultationDate, b.ConsultationTime, b.Status})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pg := page.Pagination
		pterm.Info.Printfln("page %d of %d, %d bookings total", pg.Page, pg.Pages, pg.Total)
		return nil
	},
}

var bookingsSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a consultation request as a visitor would",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := site.BookingSubmit()
		booking, err := m.Submit(cmd.Context(), siteclient.BookingForm{
			Name:    bookingSubmitFlags.name,
			Phone:   bookingSubmitFlags.phone,
			Email:   bookingSubmitFlags.email,
			Date:    bookingSubmitFlags.date,
			Time:    bookingSubmitFlags.time,
			Service: bookingSubmitFlags.service,
			Message: bookingSubmitFlags.message,
		}, siteclient.BookingSubmitOptions())
		if err != nil {
			return err
		}
		pterm.Printfln("booking %s created with status %s", booking.ID, booking.Status)
		return nil
	},
}

var bookingsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change one booking's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := site.UpdateBooking()
		booking, err := m.Submit(cmd.Context(), siteclient.UpdateBookingInput{
			ID:    args[0],
			Input: siteclient.BookingInput{Status: args[1]},
		}, mutateFeedback(fmt.Sprintf("Booking moved to %q", args[1])))
		if err != nil {
			return err
		}
		pterm.Printfln("booking %s is now %s", booking.ID, booking.Status)
		return nil
	},
}

var bookingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := site.DeleteBooking().Submit(cmd.Context(), args[0], mutateFeedback("Booking deleted"))
		return err
	},
}

func init() {
	f := bookingsListCmd.Flags()
	f.StringVar(&bookingListFlags.status, "status", "", "Filter by status (pending, confirmed, completed, cancelled)")
	f.StringVar(&bookingListFlags.date, "date", "", "Filter by consultation date (YYYY-MM-DD)")
	f.StringVar(&bookingListFlags.search, "search", "", "Search customer name or phone")
	f.IntVar(&bookingListFlags.page, "page", 1, "Page number")
	f.IntVar(&bookingListFlags.limit, "limit", 10, "Page size")

	s := bookingsSubmitCmd.Flags()
	s.StringVar(&bookingSubmitFlags.name, "name", "", "Customer name")
	s.StringVar(&bookingSubmitFlags.phone, "phone", "", "Customer phone")
	s.StringVar(&bookingSubmitFlags.email, "email", "", "Customer email")
	s.StringVar(&bookingSubmitFlags.date, "date", "", "Consultation date (YYYY-MM-DD)")
	s.StringVar(&bookingSubmitFlags.time, "time", "", "Consultation time (HH:MM)")
	s.StringVar(&bookingSubmitFlags.service, "service", "", "Service of interest")
	s.StringVar(&bookingSubmitFlags.message, "message", "", "Requirements / message")
	_ = bookingsSubmitCmd.MarkFlagRequired("name")
	_ = bookingsSubmitCmd.MarkFlagRequired("phone")
	_ = bookingsSubmitCmd.MarkFlagRequired("date")
	_ = bookingsSubmitCmd.MarkFlagRequired("time")

	bookingsCmd.AddCommand(bookingsListCmd, bookingsSubmitCmd, bookingsSetStatusCmd, bookingsDeleteCmd)
	rootCmd.AddCommand(bookingsCmd)
}
