package todo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// The wire contract is fixed, so the schemas ship embedded rather than
// being loaded from a configurable path.
var (
	//go:embed schema/create.json
	createSchemaJSON string
	//go:embed schema/update.json
	updateSchemaJSON string

	createSchema = jsonschema.MustCompileString("create.json", createSchemaJSON)
	updateSchema = jsonschema.MustCompileString("update.json", updateSchemaJSON)
)

// ValidateCreate checks a raw create body against the create schema and
// decodes it. A missing priority defaults to low.
func ValidateCreate(raw []byte) (CreateRequest, error) {
	var req CreateRequest
	if err := validateAgainst(createSchema, raw); err != nil {
		return req, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, ValidationErrors{{Err: fmt.Errorf("invalid JSON body: %w", err)}}
	}
	if req.Priority == 0 {
		req.Priority = PriorityLow
	}
	return req, nil
}

// ValidateUpdate checks a raw patch body against the update schema and
// decodes it. A JSON null is equivalent to omitting the field.
func ValidateUpdate(raw []byte) (UpdateRequest, error) {
	var req UpdateRequest
	if err := validateAgainst(updateSchema, raw); err != nil {
		return req, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, ValidationErrors{{Err: fmt.Errorf("invalid JSON body: %w", err)}}
	}
	return req, nil
}

func validateAgainst(schema *jsonschema.Schema, raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ValidationErrors{{Err: fmt.Errorf("invalid JSON body: %w", err)}}
	}
	if err := schema.Validate(doc); err != nil {
		return flattenSchemaError(err)
	}
	return nil
}

// flattenSchemaError converts a jsonschema validation error tree into
// per-field ValidationErrors.
func flattenSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return ValidationErrors{{Err: err}}
	}
	var errs ValidationErrors
	collectSchemaErrors(&errs, ve)
	if len(errs) == 0 {
		errs = append(errs, &ValidationError{Err: err})
	}
	return errs
}

func collectSchemaErrors(errs *ValidationErrors, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts a JSON pointer like "/tasks/0/name" to a
// dotted path like "tasks[0].name".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
