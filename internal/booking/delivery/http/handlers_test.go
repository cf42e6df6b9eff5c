package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nghia89/landingpage-wedding-sub000/internal/booking"
	bookingHTTP "github.com/nghia89/landingpage-wedding-sub000/internal/booking/delivery/http"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/log"
	"github.com/nghia89/landingpage-wedding-sub000/pkg/response"
)

type fakeUseCase struct {
	createFunc func(booking.CreateBookingInput) (booking.CreateBookingOutput, error)
	listFunc   func(booking.ListBookingsInput) (booking.ListBookingsOutput, error)
	detailFunc func(string) (booking.DetailBookingOutput, error)
	updateFunc func(booking.UpdateBookingInput) (booking.UpdateBookingOutput, error)
	deleteFunc func(string) error
}

func (f *fakeUseCase) Create(_ context.Context, in booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
	return f.createFunc(in)
}

func (f *fakeUseCase) List(_ context.Context, in booking.ListBookingsInput) (booking.ListBookingsOutput, error) {
	return f.listFunc(in)
}

func (f *fakeUseCase) Detail(_ context.Context, id string) (booking.DetailBookingOutput, error) {
	return f.detailFunc(id)
}

func (f *fakeUseCase) Update(_ context.Context, in booking.UpdateBookingInput) (booking.UpdateBookingOutput, error) {
	return f.updateFunc(in)
}

func (f *fakeUseCase) Delete(_ context.Context, id string) error {
	return f.deleteFunc(id)
}

func newRouter(uc booking.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := bookingHTTP.New(log.NewNop(), uc)
	r := gin.New()
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.GET("/api/bookings/:id", h.Detail)
	r.PUT("/api/bookings/:id", h.Update)
	r.DELETE("/api/bookings/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestCreate(t *testing.T) {
	t.Run("Valid Form", func(t *testing.T) {
		var gotInput booking.CreateBookingInput
		r := newRouter(&fakeUseCase{
			createFunc: func(in booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
				gotInput = in
				return booking.CreateBookingOutput{Booking: booking.Booking{ID: "b-1", CustomerName: in.CustomerName, Status: "pending"}}, nil
			},
		})

		w, resp := doJSON(t, r, http.MethodPost, "/api/bookings", `{
			"customerName": "An Nguyen",
			"phone": "0901234567",
			"consultationDate": "2026-10-20",
			"consultationTime": "14:00",
			"requirements": "Around 300 guests"
		}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !resp.Success {
			t.Errorf("expected success envelope")
		}
		if gotInput.CustomerName != "An Nguyen" || gotInput.Requirements != "Around 300 guests" {
			t.Errorf("unexpected input %+v", gotInput)
		}

		data := resp.Data.(map[string]any)
		if data["id"] != "b-1" || data["status"] != "pending" {
			t.Errorf("unexpected data %v", data)
		}
	})

	t.Run("Missing Phone", func(t *testing.T) {
		r := newRouter(&fakeUseCase{})
		w, resp := doJSON(t, r, http.MethodPost, "/api/bookings", `{
			"customerName": "An Nguyen",
			"consultationDate": "2026-10-20",
			"consultationTime": "14:00"
		}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if resp.Success {
			t.Errorf("expected error envelope")
		}
	})

	t.Run("Unknown Status", func(t *testing.T) {
		r := newRouter(&fakeUseCase{})
		w, _ := doJSON(t, r, http.MethodPost, "/api/bookings", `{
			"customerName": "An Nguyen",
			"phone": "0901234567",
			"consultationDate": "2026-10-20",
			"consultationTime": "14:00",
			"status": "archived"
		}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", w.Code)
		}
	})

	t.Run("Domain Error Mapped", func(t *testing.T) {
		r := newRouter(&fakeUseCase{
			createFunc: func(booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
				return booking.CreateBookingOutput{}, booking.ErrInvalidDate
			},
		})
		w, resp := doJSON(t, r, http.MethodPost, "/api/bookings", `{
			"customerName": "An Nguyen",
			"phone": "0901234567",
			"consultationDate": "2020-01-01",
			"consultationTime": "14:00"
		}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(resp.Error, "Consultation date") {
			t.Errorf("unexpected error message %q", resp.Error)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Paginated Envelope", func(t *testing.T) {
		var gotInput booking.ListBookingsInput
		r := newRouter(&fakeUseCase{
			listFunc: func(in booking.ListBookingsInput) (booking.ListBookingsOutput, error) {
				gotInput = in
				return booking.ListBookingsOutput{
					Bookings: []booking.Booking{{ID: "b-1"}, {ID: "b-2"}},
					Total:    95,
					Page:     1,
					Limit:    10,
				}, nil
			},
		})

		w, resp := doJSON(t, r, http.MethodGet, "/api/bookings?status=pending&page=1&limit=10", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotInput.Status != "pending" {
			t.Errorf("expected status filter bound, got %q", gotInput.Status)
		}
		if resp.Pagination == nil {
			t.Fatalf("expected pagination block")
		}
		if resp.Pagination.Pages != 10 || resp.Pagination.Total != 95 {
			t.Errorf("unexpected pagination %+v", resp.Pagination)
		}
		items := resp.Data.([]any)
		if len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("Bad Status Filter", func(t *testing.T) {
		r := newRouter(&fakeUseCase{})
		w, _ := doJSON(t, r, http.MethodGet, "/api/bookings?status=archived", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		r := newRouter(&fakeUseCase{
			detailFunc: func(string) (booking.DetailBookingOutput, error) {
				return booking.DetailBookingOutput{}, booking.ErrBookingNotFound
			},
		})
		w, resp := doJSON(t, r, http.MethodGet, "/api/bookings/nope", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if resp.Error != "Booking not found" {
			t.Errorf("unexpected error message %q", resp.Error)
		}
	})

	t.Run("Found", func(t *testing.T) {
		r := newRouter(&fakeUseCase{
			detailFunc: func(id string) (booking.DetailBookingOutput, error) {
				return booking.DetailBookingOutput{Booking: booking.Booking{ID: id}}, nil
			},
		})
		w, resp := doJSON(t, r, http.MethodGet, "/api/bookings/b-1", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["id"] != "b-1" {
			t.Errorf("unexpected data %v", data)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("ID From URI", func(t *testing.T) {
		var gotInput booking.UpdateBookingInput
		r := newRouter(&fakeUseCase{
			updateFunc: func(in booking.UpdateBookingInput) (booking.UpdateBookingOutput, error) {
				gotInput = in
				return booking.UpdateBookingOutput{Booking: booking.Booking{ID: in.ID, Status: in.Status}}, nil
			},
		})

		w, _ := doJSON(t, r, http.MethodPut, "/api/bookings/b-1", `{"status": "confirmed"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotInput.ID != "b-1" || gotInput.Status != "confirmed" {
			t.Errorf("unexpected input %+v", gotInput)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Deletes And Confirms", func(t *testing.T) {
		var deleted string
		r := newRouter(&fakeUseCase{
			deleteFunc: func(id string) error {
				deleted = id
				return nil
			},
		})

		w, resp := doJSON(t, r, http.MethodDelete, "/api/bookings/b-1", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !resp.Success {
			t.Errorf("expected success envelope")
		}
		if deleted != "b-1" {
			t.Errorf("expected delete of b-1, got %q", deleted)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		r := newRouter(&fakeUseCase{
			deleteFunc: func(string) error { return booking.ErrBookingNotFound },
		})
		w, _ := doJSON(t, r, http.MethodDelete, "/api/bookings/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
