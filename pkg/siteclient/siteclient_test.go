package siteclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/mutate"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/notify"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/siteclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...siteclient.Option) (*siteclient.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return siteclient.New(apiclient.New(srv.URL), opts...), srv
}

func TestBookingSubmit(t *testing.T) {
	t.Run("Form Maps To Booking Schema", func(t *testing.T) {
		var body map[string]any
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/bookings" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"b-1","customerName":"An Nguyen","status":"pending"}}`))
		})

		booking, err := sc.BookingSubmit().Submit(context.Background(), siteclient.BookingForm{
			Name:    "An Nguyen",
			Phone:   "0901234567",
			Email:   "an@example.com",
			Date:    "2026-10-20",
			Time:    "14:00",
			Service: "Trọn gói tiệc cưới",
			Message: "Around 300 guests",
		}, siteclient.BookingSubmitOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.ID != "b-1" {
			t.Errorf("unexpected booking %+v", booking)
		}

		want := map[string]any{
			"customerName":     "An Nguyen",
			"phone":            "0901234567",
			"consultationDate": "2026-10-20",
			"consultationTime": "14:00",
			"requirements":     "Around 300 guests",
			"status":           "pending",
		}
		for k, v := range want {
			if body[k] != v {
				t.Errorf("body[%q] = %v, want %v", k, body[k], v)
			}
		}
		// The form's service and email fields are deliberately not part of
		// the posted schema. Pinned here so a silent widening of the payload
		// fails loudly.
		for _, k := range []string{"service", "email"} {
			if _, ok := body[k]; ok {
				t.Errorf("field %q must not be posted", k)
			}
		}
		if len(body) != len(want) {
			t.Errorf("posted %d fields, want %d: %v", len(body), len(want), body)
		}
	})

	t.Run("Failure Emits Hotline Toast", func(t *testing.T) {
		bus := notify.NewBus(time.Minute)
		var mu sync.Mutex
		var toasts []notify.Toast
		bus.Subscribe(func(toast notify.Toast) {
			mu.Lock()
			toasts = append(toasts, toast)
			mu.Unlock()
		})

		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false}`))
		}, siteclient.WithNotifier(bus))

		_, err := sc.BookingSubmit().Submit(context.Background(), siteclient.BookingForm{}, siteclient.BookingSubmitOptions())
		if err == nil {
			t.Fatalf("expected submit error")
		}

		mu.Lock()
		defer mu.Unlock()
		if len(toasts) != 1 || toasts[0].Level != notify.LevelError {
			t.Fatalf("expected one error toast, got %v", toasts)
		}
	})
}

func TestBookingsQuery(t *testing.T) {
	t.Run("Filters Translate To Query Params", func(t *testing.T) {
		var gotQuery string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true,"data":[],"pagination":{"page":2,"limit":10,"total":0,"pages":1}}`))
		}, siteclient.WithDebounce(time.Hour))

		q := sc.Bookings(context.Background(), siteclient.BookingListParams{})
		defer q.Close()

		q.SetParams(context.Background(), siteclient.BookingListParams{
			Page:   2,
			Limit:  10,
			Status: "pending",
		})
		if _, err := q.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		vals, err := url.ParseQuery(gotQuery)
		if err != nil {
			t.Fatalf("bad query %q: %v", gotQuery, err)
		}
		if vals.Get("page") != "2" || vals.Get("limit") != "10" || vals.Get("status") != "pending" {
			t.Errorf("unexpected query %q", gotQuery)
		}
		if vals.Has("date") || vals.Has("search") {
			t.Errorf("empty filters must be omitted, got %q", gotQuery)
		}
	})

	t.Run("Admin Filter Flow", func(t *testing.T) {
		// One debounced request for the filter change, and the pagination
		// block tells the view to hide paging controls (pages == 1).
		var requests atomic.Int32
		var mu sync.Mutex
		var gotQuery string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotQuery = r.URL.RawQuery
			mu.Unlock()
			requests.Add(1)
			w.Write([]byte(`{"success":true,"data":[
				{"id":"b-1","customerName":"Nguyen An"},
				{"id":"b-2","customerName":"Nguyen Binh"},
				{"id":"b-3","customerName":"Nguyen Chi"}
			],"pagination":{"page":1,"limit":10,"total":3,"pages":1}}`))
		}, siteclient.WithDebounce(20*time.Millisecond))

		ctx := context.Background()
		q := sc.Bookings(ctx, siteclient.BookingListParams{Page: 1, Limit: 10})
		defer q.Close()
		q.SetParams(ctx, siteclient.BookingListParams{Page: 1, Limit: 10, Status: "pending", Search: "Nguyen"})

		deadline := time.Now().Add(2 * time.Second)
		for requests.Load() == 0 {
			if time.Now().After(deadline) {
				t.Fatalf("debounced request never fired")
			}
			time.Sleep(5 * time.Millisecond)
		}
		time.Sleep(100 * time.Millisecond)
		if got := requests.Load(); got != 1 {
			t.Fatalf("expected exactly 1 request, got %d", got)
		}

		mu.Lock()
		query := gotQuery
		mu.Unlock()
		vals, err := url.ParseQuery(query)
		if err != nil {
			t.Fatalf("bad query %q: %v", query, err)
		}
		if vals.Get("status") != "pending" || vals.Get("search") != "Nguyen" ||
			vals.Get("page") != "1" || vals.Get("limit") != "10" {
			t.Errorf("unexpected query %q", query)
		}

		st := q.State()
		if st.Data == nil {
			t.Fatalf("expected data applied")
		}
		if len(st.Data.Items) != 3 {
			t.Errorf("expected 3 rows, got %d", len(st.Data.Items))
		}
		if st.Data.Pagination.Pages != 1 {
			t.Errorf("expected single page, got %d", st.Data.Pagination.Pages)
		}
	})

	t.Run("Filter Burst Collapses To One Request", func(t *testing.T) {
		var requests atomic.Int32
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.Write([]byte(`{"success":true,"data":[]}`))
		}, siteclient.WithDebounce(20*time.Millisecond))

		ctx := context.Background()
		q := sc.Bookings(ctx, siteclient.BookingListParams{Page: 1})
		defer q.Close()

		for page := 2; page <= 6; page++ {
			q.SetParams(ctx, siteclient.BookingListParams{Page: page})
		}

		deadline := time.Now().Add(2 * time.Second)
		for requests.Load() == 0 {
			if time.Now().After(deadline) {
				t.Fatalf("debounced request never fired")
			}
			time.Sleep(5 * time.Millisecond)
		}
		time.Sleep(100 * time.Millisecond)
		if got := requests.Load(); got != 1 {
			t.Errorf("expected the burst to collapse into 1 request, got %d", got)
		}
		if q.Params().Page != 6 {
			t.Errorf("expected last params to win, got page %d", q.Params().Page)
		}
	})
}

func TestServicesQuery(t *testing.T) {
	t.Run("Active Filter Becomes IsActive", func(t *testing.T) {
		var gotQuery string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true,"data":[]}`))
		}, siteclient.WithDebounce(time.Hour))

		active := true
		q := sc.Services(context.Background(), siteclient.ServiceListParams{})
		defer q.Close()
		q.SetParams(context.Background(), siteclient.ServiceListParams{Category: "photography", Active: &active})
		if _, err := q.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		vals, err := url.ParseQuery(gotQuery)
		if err != nil {
			t.Fatalf("bad query %q: %v", gotQuery, err)
		}
		if vals.Get("isActive") != "true" {
			t.Errorf("expected isActive=true, got %q", gotQuery)
		}
		if vals.Has("active") {
			t.Errorf("logical name must not leak into the query: %q", gotQuery)
		}
	})

	t.Run("Nil Active Omitted", func(t *testing.T) {
		var gotQuery string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true,"data":[]}`))
		}, siteclient.WithDebounce(time.Hour))

		q := sc.Services(context.Background(), siteclient.ServiceListParams{})
		defer q.Close()
		if _, err := q.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery != "" {
			t.Errorf("expected no query params, got %q", gotQuery)
		}
	})
}

func TestPromotions(t *testing.T) {
	t.Run("Static Source Replaces API", func(t *testing.T) {
		fixtures := siteclient.StaticPromotionSource{
			{ID: "p-1", Title: "Early bird", IsActive: true},
			{ID: "p-2", Title: "Expired", IsActive: false},
			{ID: "p-3", Title: "Weekday", IsActive: true},
		}
		sc := siteclient.New(nil, siteclient.WithPromotionSource(fixtures))

		active := true
		q := sc.Promotions(context.Background(), siteclient.PromotionListParams{})
		defer q.Close()
		q.SetParams(context.Background(), siteclient.PromotionListParams{Active: &active, Limit: 1})

		promos, err := q.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(promos) != 1 || promos[0].ID != "p-1" {
			t.Errorf("expected first active promotion only, got %+v", promos)
		}
	})

	t.Run("API Source Sends IsActive Param", func(t *testing.T) {
		var gotQuery string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			if r.URL.Path != "/api/promotions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"success":true,"data":[{"id":"p-1","title":"Early bird"}]}`))
		}, siteclient.WithDebounce(time.Hour))

		active := true
		q := sc.Promotions(context.Background(), siteclient.PromotionListParams{})
		defer q.Close()
		q.SetParams(context.Background(), siteclient.PromotionListParams{Active: &active})

		promos, err := q.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(promos) != 1 || promos[0].Title != "Early bird" {
			t.Errorf("unexpected promotions %+v", promos)
		}
		vals, err := url.ParseQuery(gotQuery)
		if err != nil {
			t.Fatalf("bad query %q: %v", gotQuery, err)
		}
		if vals.Get("isActive") != "true" {
			t.Errorf("expected isActive=true, got %q", gotQuery)
		}
	})
}

func TestNewsletterSubscribe(t *testing.T) {
	t.Run("Posts Email And Decodes Subscription", func(t *testing.T) {
		var body map[string]string
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/newsletter/subscribe" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"n-1","email":"an@example.com"}}`))
		})

		sub, err := sc.NewsletterSubscribe().Submit(context.Background(), "an@example.com", siteclient.NewsletterSubscribeOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["email"] != "an@example.com" {
			t.Errorf("unexpected body %v", body)
		}
		if sub.Email != "an@example.com" {
			t.Errorf("unexpected subscription %+v", sub)
		}
	})

	t.Run("Duplicate Submit Still Succeeds", func(t *testing.T) {
		// The backend treats re-subscribing as idempotent, so the mutator
		// surfaces a success both times.
		var requests atomic.Int32
		sc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.Write([]byte(`{"success":true,"data":{"id":"n-1","email":"an@example.com"}}`))
		})

		m := sc.NewsletterSubscribe()
		for i := 0; i < 2; i++ {
			if _, err := m.Submit(context.Background(), "an@example.com", mutate.Options{}); err != nil {
				t.Fatalf("submit %d failed: %v", i, err)
			}
		}
		if requests.Load() != 2 {
			t.Errorf("expected 2 requests, got %d", requests.Load())
		}
	})
}
