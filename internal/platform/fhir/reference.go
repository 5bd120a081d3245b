package fhir

import (
	"fmt"
	"strings"
)

// Actor reference prefixes. A participant array is unordered and may omit
// any of these actor types, so resolution is by prefix, never by index.
const (
	RefOrganization = "Organization/"
	RefPatient      = "Patient/"
	RefPractitioner = "Practitioner/"
)

// ResolveActor returns the id and display of the first participant whose
// actor reference starts with the given type prefix. Both results are empty
// when no participant of that type exists.
func ResolveActor(participants []Participant, prefix string) (id, display string) {
	for _, p := range participants {
		if strings.HasPrefix(p.Actor.Reference, prefix) {
			return strings.TrimPrefix(p.Actor.Reference, prefix), p.Actor.Display
		}
	}
	return "", ""
}

// NewParticipant builds a participant entry with the fixed acceptance
// status used on encode.
func NewParticipant(reference, display string) Participant {
	return Participant{
		Actor:  Reference{Reference: reference, Display: display},
		Status: "accepted",
	}
}

// FormatReference creates a FHIR reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}
