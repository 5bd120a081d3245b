package fhir

// Canonical extension URLs. These strings are the wire-level keys for domain
// fields inside extension lists and must be preserved bit-for-bit: the table
// is append-only, and every URL is permanently bound to one typed value key.
//
// ExtBusinessID and ExtCatalogBusinessID name the same logical field but are
// distinct wire keys: SupplyItem payloads carry it as a plain valueString
// under "business-id", while Basic (catalog) payloads carry it as a nested
// valueIdentifier under "bussinessId" (sic). Both spellings are live on the
// wire; unifying them would break previously encoded payloads.
const (
	extBase = "https://vetpms.io/fhir/StructureDefinition/"

	ExtBusinessID        = extBase + "business-id"       // valueString (SupplyItem)
	ExtCatalogBusinessID = extBase + "bussinessId"       // valueIdentifier (Basic)
	ExtCategory          = extBase + "category"          // valueString (also in code.coding[0])
	ExtStrength          = extBase + "strength"          // valueString
	ExtMarkup            = extBase + "markup"            // valueDecimal
	ExtCostPrice         = extBase + "costPrice"         // valueDecimal
	ExtSellingPrice      = extBase + "sellingPrice"      // valueDecimal
	ExtStockReorderLevel = extBase + "stockReorderLevel" // valueInteger
	ExtQuantityInStock   = extBase + "quantityInStock"   // valueInteger
	ExtExpiryDate        = extBase + "expiryDate"        // valueDate
	ExtCreatedAt         = extBase + "createdAt"         // valueDateTime
	ExtUpdatedAt         = extBase + "updatedAt"         // valueDateTime
	ExtTokenNumber       = extBase + "tokenNumber"       // valueString
	ExtAppointmentSource = extBase + "appointmentSource" // valueString
	ExtSlot              = extBase + "slot"              // nested extension list
	ExtExpiryReportEntry = extBase + "expiryReportEntry" // nested extension list
)

// Inner URLs of a slot sub-extension. Lookup is always by URL, never by
// index; sub-extension order is irrelevant.
const (
	SlotTime     = "time"     // valueString, display form ("9:00 AM")
	SlotTime24   = "time24"   // valueString, 24-hour form ("09:00")
	SlotID       = "_id"      // valueString
	SlotIsBooked = "isBooked" // valueBoolean
	SlotSelected = "selected" // valueBoolean
)

// Inner URLs of an expiry-report entry sub-extension.
const (
	ReportCategory   = "category"   // valueString
	ReportTotalCount = "totalCount" // valueInteger
)

// Identifier systems for a SupplyItem's alternate identifiers. Decoders
// match these by substring on the system field, so the distinguishing token
// ("barcode", "batch-number", "sku") must stay unique within the set.
const (
	IdentBarcode     = "https://vetpms.io/fhir/identifier/barcode"
	IdentBatchNumber = "https://vetpms.io/fhir/identifier/batch-number"
	IdentSKU         = "https://vetpms.io/fhir/identifier/sku"
	IdentBusiness    = "https://vetpms.io/fhir/identifier/business"
)

// Bundle meta.tag systems used as the paging side-channel. Codes are
// stringified integers.
const (
	TagTotalPages  = "https://vetpms.io/fhir/tag/totalPages"
	TagCurrentPage = "https://vetpms.io/fhir/tag/currentPage"
)
