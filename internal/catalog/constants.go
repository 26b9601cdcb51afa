package catalog

// ============================================================================
// Configuration
// ============================================================================

// ConfigVersion is the expected version string of the catalog file.
const ConfigVersion = "1.0"

// WearProbabilityTolerance bounds how far the wear probabilities may drift from 1.0.
const WearProbabilityTolerance = 1e-6

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToReadCatalog  = "failed to read case catalog"
	ErrContextFailedToParseCatalog = "failed to parse case catalog"
	ErrContextSchemaValidation     = "case catalog schema validation failed"
	ErrContextInvalidCatalog       = "invalid case catalog"
)

// ============================================================================
// Logging
// ============================================================================

const (
	LogMsgCatalogLoaded     = "Case catalog loaded"
	LogMsgVersionMismatch   = "Case catalog version differs from expected"
	LogMsgUnknownCondition  = "Item lists a wear condition missing from the table"
	LogFieldCases           = "cases"
	LogFieldItems           = "items"
	LogFieldSource          = "source"
	LogFieldVersion         = "version"
	LogFieldExpectedVersion = "expected_version"
	LogFieldItem            = "item"
	LogFieldCondition       = "condition"
)
