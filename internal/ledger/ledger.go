// Package ledger holds the seat-allocation rules for a single event: how much
// capacity remains, whether a candidate registration is admissible, and what
// the participant list looks like after an add or a remove. Everything here is
// pure; callers persist the returned lists.
package ledger

import (
	"errors"
	"strings"

	"eventRegistrar/internal/cpf"
	"eventRegistrar/internal/models"
)

var (
	ErrMissingIdentifier     = errors.New("participant cpf is required")
	ErrInvalidIdentifier     = errors.New("participant cpf is invalid")
	ErrDuplicateRegistration = errors.New("cpf already registered for this event")
	ErrNoSlotsAvailable      = errors.New("no slots available")
)

// AvailableSlots derives the remaining capacity from the authoritative
// participant count. The value is clamped to [0, slots], so a record edited
// out from under us can never drive it negative or past capacity.
func AvailableSlots(slots, registered int) int {
	available := slots - registered
	if available < 0 {
		return 0
	}
	if available > slots {
		return slots
	}
	return available
}

// Evaluate decides whether candidate may join the event and, when admitted,
// returns the current list with the candidate appended last. The identifier
// is checked first: capacity and duplicate comparisons only mean something
// once the CPF is well-formed. The candidate's name is upper-cased and the
// CPF stored in canonical form.
func Evaluate(participants []models.Participant, slots int, candidate models.Participant) ([]models.Participant, error) {
	digits := cpf.Digits(candidate.CPF)
	if digits == "" {
		return nil, ErrMissingIdentifier
	}
	if !cpf.Valid(candidate.CPF) {
		return nil, ErrInvalidIdentifier
	}

	if AvailableSlots(slots, len(participants)) <= 0 {
		return nil, ErrNoSlotsAvailable
	}

	id := cpf.Normalize(candidate.CPF)
	for _, p := range participants {
		if cpf.Normalize(p.CPF) == id {
			return nil, ErrDuplicateRegistration
		}
	}

	next := make([]models.Participant, 0, len(participants)+1)
	next = append(next, participants...)
	next = append(next, models.Participant{
		Name: strings.ToUpper(strings.TrimSpace(candidate.Name)),
		CPF:  id,
		PCD:  candidate.PCD,
	})

	return next, nil
}

// Remove filters out the participant carrying rawCPF, comparing in canonical
// form so any equivalent formatting matches. An absent CPF is a no-op;
// removed tells the caller whether anything changed so it can skip the write.
func Remove(participants []models.Participant, rawCPF string) (next []models.Participant, removed bool) {
	id := cpf.Normalize(rawCPF)

	next = make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if cpf.Normalize(p.CPF) == id {
			removed = true
			continue
		}
		next = append(next, p)
	}

	return next, removed
}
