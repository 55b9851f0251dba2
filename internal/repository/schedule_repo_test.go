package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-schedule/internal/models"
)

func TestGetScheduleRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/employees/7/schedule" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("start_date") != "2025-03-03" || r.URL.Query().Get("end_date") != "2025-03-09" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.SchedulePayload{
			WorkingHours: map[string]models.RawDayHours{
				"1": {Start: "09:00", End: "18:00"},
			},
			TimeOff: []models.TimeOffException{{Date: "2025-03-08", Reason: "Отпуск"}},
		}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewHTTPScheduleRepository(server.URL, "test-token", 5*time.Second)
	payload, err := repo.GetSchedule(context.Background(), 7, "2025-03-03", "2025-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.WorkingHours) != 1 || payload.WorkingHours["1"].Start != "09:00" {
		t.Fatalf("payload mismatch: %+v", payload.WorkingHours)
	}
	if len(payload.TimeOff) != 1 || payload.TimeOff[0].Date != "2025-03-08" {
		t.Fatalf("time off mismatch: %+v", payload.TimeOff)
	}
}

func TestUpdateScheduleSendsFullPayload(t *testing.T) {
	var received models.SchedulePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/employees/7/schedule" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	working := true
	off := false
	payload := &models.SchedulePayload{
		WorkingHours: map[string]models.RawDayHours{
			"1": {Start: "09:00", End: "18:00", IsWorking: &working},
			"0": {Start: "00:00", End: "00:00", IsWorking: &off},
		},
		TimeOff: []models.TimeOffException{{Date: "2025-03-08", Reason: "Отпуск"}},
	}

	repo := NewHTTPScheduleRepository(server.URL, "", 5*time.Second)
	if err := repo.UpdateSchedule(context.Background(), 7, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sunday, ok := received.WorkingHours["0"]
	if !ok {
		t.Fatal("day-off sentinel must be sent, not omitted")
	}
	if sunday.IsWorking == nil || *sunday.IsWorking {
		t.Fatalf("sentinel must carry is_working=false: %+v", sunday)
	}
}

func TestScheduleRepoRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "внутренняя ошибка", http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewHTTPScheduleRepository(server.URL, "", 5*time.Second)

	if _, err := repo.GetSchedule(context.Background(), 7, "", ""); !errors.Is(err, models.ErrRemote) {
		t.Fatalf("expected ErrRemote on GET, got %v", err)
	}
	if err := repo.UpdateSchedule(context.Background(), 7, &models.SchedulePayload{}); !errors.Is(err, models.ErrRemote) {
		t.Fatalf("expected ErrRemote on PUT, got %v", err)
	}
}

func TestScheduleRepoUnreachableBackend(t *testing.T) {
	repo := NewHTTPScheduleRepository("http://127.0.0.1:1", "", 500*time.Millisecond)
	if _, err := repo.GetSchedule(context.Background(), 7, "", ""); !errors.Is(err, models.ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
}
