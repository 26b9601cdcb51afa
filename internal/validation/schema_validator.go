package validation

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// schemaBaseURL anchors schema resources so the compiler never tries to fetch them.
const schemaBaseURL = "https://caseopener.local/schemas/"

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	mu       sync.Mutex
	source   fs.FS
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator creates a validator resolving schema names inside source
// (usually the embedded configs filesystem).
func NewSchemaValidator(source fs.FS) SchemaValidator {
	return &validator{
		source:   source,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

// ValidateFile validates a JSON file on disk against a named schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a named schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return v.formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.source, schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	url := schemaBaseURL + schemaName
	if err := v.compiler.AddResource(url, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError flattens the validation error tree into one line per cause
func (v *validator) formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errs []string
		v.collectErrors(validationErr, &errs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func (v *validator) collectErrors(err *jsonschema.ValidationError, errs *[]string) {
	// Only leaves carry the concrete failure; parents just say "see causes".
	if len(err.Causes) == 0 {
		*errs = append(*errs, v.formatError(err))
	}
	for _, cause := range err.Causes {
		v.collectErrors(cause, errs)
	}
}

func (v *validator) formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind == nil {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}

	keywords := strings.Join(err.ErrorKind.KeywordPath(), ".")
	detail := err.ErrorKind.LocalizedString(v.printer)
	if keywords == "" {
		return fmt.Sprintf("  - at %s: %s", location, detail)
	}
	return fmt.Sprintf("  - at %s: %s validation failed: %s", location, keywords, detail)
}
