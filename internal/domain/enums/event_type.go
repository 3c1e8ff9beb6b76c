package enums

type EventType string

const (
	EventDate            EventType = "date"
	EventParty           EventType = "party"
	EventNetworking      EventType = "networking"
	EventCasualMeetup    EventType = "casual-meetup"
	EventGroupActivity   EventType = "group-activity"
	EventClassWorkshop   EventType = "class-workshop"
	EventFamilyGathering EventType = "family-gathering"
	EventOther           EventType = "other"
)

type EventInfo struct {
	ID          EventType
	Name        string
	Description string
}

var eventCatalog = []EventInfo{
	{EventDate, "First Date", "Coffee, dinner, or casual meetup"},
	{EventParty, "Party / Social Gathering", "House party, celebration, or social event"},
	{EventNetworking, "Professional Networking", "Work events, conferences, or business mixers"},
	{EventCasualMeetup, "Casual Meetup", "Coffee shop, bookstore, or casual hangout"},
	{EventGroupActivity, "Group Activity", "Sports, hobbies, or organized group events"},
	{EventClassWorkshop, "Class / Workshop", "Educational events, classes, or workshops"},
	{EventFamilyGathering, "Family Gathering", "Family events, reunions, or holidays"},
	{EventOther, "Other Event", "Any other social situation"},
}

func EventCatalog() []EventInfo {
	out := make([]EventInfo, len(eventCatalog))
	copy(out, eventCatalog)
	return out
}

func (e EventType) IsValid() bool {
	for _, info := range eventCatalog {
		if info.ID == e {
			return true
		}
	}
	return false
}

func (e EventType) DisplayName() string {
	for _, info := range eventCatalog {
		if info.ID == e {
			return info.Name
		}
	}
	return ""
}

// NormalizeEventType maps unknown event types to casual-meetup, the most
// universally safe starter set.
func NormalizeEventType(raw string) EventType {
	e := EventType(raw)
	if e.IsValid() {
		return e
	}
	return EventCasualMeetup
}
