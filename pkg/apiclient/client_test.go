package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
)

func TestGet(t *testing.T) {
	t.Run("Success Envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/services" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":{"id":"svc-1","name":"Photography"}}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		env, err := c.Get(context.Background(), "/api/services", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		type service struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		got, err := apiclient.Decode[service](env)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if got.ID != "svc-1" || got.Name != "Photography" {
			t.Errorf("unexpected payload: %+v", got)
		}
	})

	t.Run("Empty Params Are Not Sent", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		_, err := c.Get(context.Background(), "/api/bookings", apiclient.Params{
			"status": "pending",
			"date":   "",
			"search": "",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery != "status=pending" {
			t.Errorf("expected query %q, got %q", "status=pending", gotQuery)
		}
	})

	t.Run("Non 2xx Carries Server Message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":"booking not found"}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		_, err := c.Get(context.Background(), "/api/bookings/nope", nil)

		var apiErr *apiclient.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *apiclient.Error, got %T", err)
		}
		if apiErr.Status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", apiErr.Status)
		}
		if apiErr.Message != "booking not found" {
			t.Errorf("expected server message, got %q", apiErr.Message)
		}
		if !apiclient.IsNotFound(err) {
			t.Errorf("IsNotFound should report true")
		}
	})

	t.Run("Success False Is An Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"validation failed"}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		_, err := c.Get(context.Background(), "/api/services", nil)

		var apiErr *apiclient.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *apiclient.Error, got %T", err)
		}
		if apiErr.Message != "validation failed" {
			t.Errorf("expected %q, got %q", "validation failed", apiErr.Message)
		}
	})

	t.Run("Invalid JSON On 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>definitely not json</html>`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		_, err := c.Get(context.Background(), "/api/services", nil)

		var apiErr *apiclient.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *apiclient.Error, got %T", err)
		}
		if apiErr.Message != apiclient.MsgInvalidResponse {
			t.Errorf("expected %q, got %q", apiclient.MsgInvalidResponse, apiErr.Message)
		}
	})

	t.Run("Connection Failure Has Status Zero", func(t *testing.T) {
		c := apiclient.New("http://127.0.0.1:1")
		_, err := c.Get(context.Background(), "/api/services", nil)

		var apiErr *apiclient.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *apiclient.Error, got %T", err)
		}
		if apiErr.Status != 0 {
			t.Errorf("expected status 0, got %d", apiErr.Status)
		}
		if apiErr.Message != apiclient.MsgConnectionFailed {
			t.Errorf("expected %q, got %q", apiclient.MsgConnectionFailed, apiErr.Message)
		}
	})
}

func TestPost(t *testing.T) {
	t.Run("Sends JSON Body", func(t *testing.T) {
		var gotBody map[string]any
		var gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":"b-1"}}`))
		}))
		defer srv.Close()

		c := apiclient.New(srv.URL)
		env, err := c.Post(context.Background(), "/api/bookings", map[string]string{"customerName": "An"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotContentType != "application/json" {
			t.Errorf("expected json content type, got %q", gotContentType)
		}
		if gotBody["customerName"] != "An" {
			t.Errorf("unexpected body: %+v", gotBody)
		}
		if !env.Success {
			t.Errorf("expected success envelope")
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("Nil Envelope Yields Zero Value", func(t *testing.T) {
		got, err := apiclient.Decode[[]string](nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil slice, got %v", got)
		}
	})

	t.Run("Pagination Block Survives", func(t *testing.T) {
		var env apiclient.Envelope
		if err := json.Unmarshal([]byte(`{"success":true,"data":[],"pagination":{"page":2,"limit":10,"total":95,"pages":10}}`), &env); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if env.Pagination == nil {
			t.Fatalf("expected pagination block")
		}
		if env.Pagination.Pages != 10 || env.Pagination.Total != 95 {
			t.Errorf("unexpected pagination: %+v", env.Pagination)
		}
	})
}
