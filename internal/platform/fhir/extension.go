package fhir

// Typed accessors over extension lists. Decode never fails: a missing URL or
// a mismatched value key yields the zero default for the accessor's type.
// Absent optional fields are routine in decoded payloads, not errors.

// Find returns the first extension with the given URL.
func Find(exts []Extension, url string) (Extension, bool) {
	for _, e := range exts {
		if e.URL == url {
			return e, true
		}
	}
	return Extension{}, false
}

func GetString(exts []Extension, url string) string {
	if e, ok := Find(exts, url); ok && e.ValueString != nil {
		return *e.ValueString
	}
	return ""
}

func GetInteger(exts []Extension, url string) int {
	if e, ok := Find(exts, url); ok && e.ValueInteger != nil {
		return *e.ValueInteger
	}
	return 0
}

func GetDecimal(exts []Extension, url string) float64 {
	if e, ok := Find(exts, url); ok && e.ValueDecimal != nil {
		return *e.ValueDecimal
	}
	return 0
}

func GetBoolean(exts []Extension, url string) bool {
	if e, ok := Find(exts, url); ok && e.ValueBoolean != nil {
		return *e.ValueBoolean
	}
	return false
}

func GetDate(exts []Extension, url string) string {
	if e, ok := Find(exts, url); ok && e.ValueDate != nil {
		return *e.ValueDate
	}
	return ""
}

func GetDateTime(exts []Extension, url string) string {
	if e, ok := Find(exts, url); ok && e.ValueDateTime != nil {
		return *e.ValueDateTime
	}
	return ""
}

func GetIdentifier(exts []Extension, url string) Identifier {
	if e, ok := Find(exts, url); ok && e.ValueIdentifier != nil {
		return *e.ValueIdentifier
	}
	return Identifier{}
}

// Constructors. Each emits its entry unconditionally, zero value or not, so
// every encode of the same record type produces the same extension shape.

func String(url, v string) Extension {
	return Extension{URL: url, ValueString: &v}
}

func Integer(url string, v int) Extension {
	return Extension{URL: url, ValueInteger: &v}
}

func Decimal(url string, v float64) Extension {
	return Extension{URL: url, ValueDecimal: &v}
}

func Boolean(url string, v bool) Extension {
	return Extension{URL: url, ValueBoolean: &v}
}

func Date(url, v string) Extension {
	return Extension{URL: url, ValueDate: &v}
}

func DateTime(url, v string) Extension {
	return Extension{URL: url, ValueDateTime: &v}
}

func IdentifierValue(url string, id Identifier) Extension {
	return Extension{URL: url, ValueIdentifier: &id}
}

// Nested builds an extension whose value is a composite sub-object encoded
// as an inner extension list (a slot, a report row).
func Nested(url string, inner []Extension) Extension {
	return Extension{URL: url, Extension: inner}
}
