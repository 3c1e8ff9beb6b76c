package dto

type EventOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type EventsResponse struct {
	Events []EventOption `json:"events"`
}
