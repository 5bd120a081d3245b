package fhir

import (
	"time"
)

// Resource is the base FHIR resource representation.
type Resource struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
	Meta         *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	VersionID   string    `json:"versionId,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
	Tag         []Coding  `json:"tag,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

// Participant is one entry of a resource's participant array. The actor is
// identified by a typed reference string ("Patient/42"); resolution is always
// by reference prefix, never by position in the array.
type Participant struct {
	Actor  Reference `json:"actor"`
	Status string    `json:"status"`
}

// Extension carries one logical domain field as a {url, typed-value} pair.
// Exactly one value key is populated per entry; the key is part of the wire
// contract for the extension's canonical URL. Value keys are pointers so that
// an encoded zero value ("", 0, false) still serializes: decode-with-default
// must see the same shape whether a field was zero or absent.
type Extension struct {
	URL             string      `json:"url"`
	ValueString     *string     `json:"valueString,omitempty"`
	ValueInteger    *int        `json:"valueInteger,omitempty"`
	ValueDecimal    *float64    `json:"valueDecimal,omitempty"`
	ValueDate       *string     `json:"valueDate,omitempty"`
	ValueDateTime   *string     `json:"valueDateTime,omitempty"`
	ValueBoolean    *bool       `json:"valueBoolean,omitempty"`
	ValueIdentifier *Identifier `json:"valueIdentifier,omitempty"`
	Extension       []Extension `json:"extension,omitempty"`
}
