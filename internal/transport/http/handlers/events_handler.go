package handlers

import (
	"net/http"

	"github.com/derekmegyesi/social-starter-kit/internal/domain/enums"
	"github.com/derekmegyesi/social-starter-kit/internal/transport/http/dto"
	httperrors "github.com/derekmegyesi/social-starter-kit/internal/transport/http/errors"
)

// EventsHandler serves the fixed event catalog the client renders as the
// event selector.
type EventsHandler struct{}

func NewEventsHandler() *EventsHandler {
	return &EventsHandler{}
}

func (h *EventsHandler) List(w http.ResponseWriter, _ *http.Request) {
	catalog := enums.EventCatalog()
	events := make([]dto.EventOption, 0, len(catalog))
	for _, info := range catalog {
		events = append(events, dto.EventOption{
			Value:       string(info.ID),
			Label:       info.Name,
			Description: info.Description,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.EventsResponse{Events: events})
}
