package models

import "time"

type Event struct {
	ID             string        `json:"id"`
	EventName      string        `json:"eventname"`
	EventDate      time.Time     `json:"eventdata"`
	Observations   string        `json:"observations"`
	Slots          int           `json:"slots"`
	AvailableSlots int           `json:"available_slots"`
	Participants   []Participant `json:"participants"`

	// ParticipantsRaw is the participants document exactly as stored, used as
	// the compare-and-swap token for updates. Legacy records may omit keys the
	// decoded form would re-emit, so the raw bytes are authoritative.
	ParticipantsRaw []byte `json:"-"`
}
