package fhir

import (
	"encoding/json"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Typed accessors
// ---------------------------------------------------------------------------

func TestGetString_Found(t *testing.T) {
	exts := []Extension{
		Integer(ExtStockReorderLevel, 5),
		String(ExtStrength, "250mg"),
	}
	if got := GetString(exts, ExtStrength); got != "250mg" {
		t.Errorf("GetString = %q, want %q", got, "250mg")
	}
}

func TestGetString_MissingYieldsEmpty(t *testing.T) {
	exts := []Extension{Integer(ExtStockReorderLevel, 5)}
	if got := GetString(exts, ExtStrength); got != "" {
		t.Errorf("GetString = %q, want empty string", got)
	}
}

func TestGetString_WrongValueKeyYieldsDefault(t *testing.T) {
	// A decimal stored under the URL must not be read as a string.
	exts := []Extension{Decimal(ExtMarkup, 1.5)}
	if got := GetString(exts, ExtMarkup); got != "" {
		t.Errorf("GetString = %q, want empty string", got)
	}
}

func TestDefaultPolicyByType(t *testing.T) {
	var none []Extension
	if got := GetString(none, ExtStrength); got != "" {
		t.Errorf("string default = %q, want \"\"", got)
	}
	if got := GetInteger(none, ExtStockReorderLevel); got != 0 {
		t.Errorf("integer default = %d, want 0", got)
	}
	if got := GetDecimal(none, ExtMarkup); got != 0 {
		t.Errorf("decimal default = %v, want 0", got)
	}
	if got := GetBoolean(none, ExtSlot); got != false {
		t.Errorf("boolean default = %v, want false", got)
	}
	if got := GetDate(none, ExtExpiryDate); got != "" {
		t.Errorf("date default = %q, want \"\"", got)
	}
	if got := GetDateTime(none, ExtCreatedAt); got != "" {
		t.Errorf("dateTime default = %q, want \"\"", got)
	}
	if got := GetIdentifier(none, ExtCatalogBusinessID); got != (Identifier{}) {
		t.Errorf("identifier default = %+v, want zero Identifier", got)
	}
}

func TestGetInteger_Found(t *testing.T) {
	exts := []Extension{Integer(ExtStockReorderLevel, 12)}
	if got := GetInteger(exts, ExtStockReorderLevel); got != 12 {
		t.Errorf("GetInteger = %d, want 12", got)
	}
}

func TestGetBoolean_Found(t *testing.T) {
	exts := []Extension{Boolean(SlotIsBooked, true)}
	if got := GetBoolean(exts, SlotIsBooked); !got {
		t.Error("GetBoolean = false, want true")
	}
}

func TestGetIdentifier_Found(t *testing.T) {
	want := Identifier{System: IdentBusiness, Value: "biz-42"}
	exts := []Extension{IdentifierValue(ExtCatalogBusinessID, want)}
	if got := GetIdentifier(exts, ExtCatalogBusinessID); got != want {
		t.Errorf("GetIdentifier = %+v, want %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// Constructors: shape stability
// ---------------------------------------------------------------------------

func TestConstructors_EmitZeroValues(t *testing.T) {
	// Encoding a zero value must still serialize the typed value key, so
	// that decode-with-default sees the same shape either way.
	cases := []struct {
		name string
		ext  Extension
		key  string
	}{
		{"empty string", String(ExtStrength, ""), `"valueString":""`},
		{"zero int", Integer(ExtStockReorderLevel, 0), `"valueInteger":0`},
		{"zero decimal", Decimal(ExtMarkup, 0), `"valueDecimal":0`},
		{"false bool", Boolean(SlotIsBooked, false), `"valueBoolean":false`},
		{"empty date", Date(ExtExpiryDate, ""), `"valueDate":""`},
		{"empty dateTime", DateTime(ExtCreatedAt, ""), `"valueDateTime":""`},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(tc.ext)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if !strings.Contains(string(raw), tc.key) {
			t.Errorf("%s: %s missing from %s", tc.name, tc.key, raw)
		}
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	exts := []Extension{
		String(ExtStrength, "first"),
		String(ExtStrength, "second"),
	}
	if got := GetString(exts, ExtStrength); got != "first" {
		t.Errorf("GetString = %q, want %q", got, "first")
	}
}
