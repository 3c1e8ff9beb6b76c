package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/derekmegyesi/social-starter-kit/internal/transport/http/dto"
)

func TestEventsListReturnsFullCatalog(t *testing.T) {
	handler := NewEventsHandler()

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}

	var resp dto.EventsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Events) != 8 {
		t.Fatalf("unexpected catalog size: %d", len(resp.Events))
	}

	seen := map[string]bool{}
	for _, event := range resp.Events {
		if event.Value == "" || event.Label == "" {
			t.Fatalf("incomplete event option: %+v", event)
		}
		seen[event.Value] = true
	}
	for _, want := range []string{"date", "party", "networking", "casual-meetup", "other"} {
		if !seen[want] {
			t.Fatalf("catalog missing %q", want)
		}
	}
}
