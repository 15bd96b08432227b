// Package shape recovers structured results from raw model output.
package shape

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"med-estudia/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

type Kind string

const (
	KindInvalidJSON      Kind = "invalid_json"
	KindFieldMissing     Kind = "field_missing"
	KindWrongType        Kind = "wrong_type"
	KindWrongCardinality Kind = "wrong_cardinality"
)

// ShapeError reports why a candidate payload was rejected. Field is a
// "/"-separated path into the payload, empty for the root value. Raw holds
// the candidate text for logging only.
type ShapeError struct {
	Kind  Kind
	Field string
	Raw   string
	Err   error
}

func (e *ShapeError) Error() string {
	field := e.Field
	if field == "" {
		field = "(root)"
	}
	switch e.Kind {
	case KindInvalidJSON:
		return fmt.Sprintf("invalid JSON: %v", e.Err)
	case KindFieldMissing:
		return fmt.Sprintf("missing field %s", field)
	case KindWrongCardinality:
		return fmt.Sprintf("wrong number of items in %s", field)
	default:
		return fmt.Sprintf("wrong type for %s", field)
	}
}

func (e *ShapeError) Unwrap() error { return e.Err }

const mcqItemSchema = `{
	"type": "object",
	"required": ["question", "options", "correctAnswer", "explanation"],
	"properties": {
		"question": {"type": "string"},
		"options": {
			"type": "array",
			"minItems": 4,
			"maxItems": 4,
			"items": {"type": "string"}
		},
		"correctAnswer": {"type": "string"},
		"explanation": {"type": "string"}
	}
}`

var schemaSources = map[domain.Mode]string{
	domain.ModeMCQ: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "#/$defs/item",
		"$defs": {"item": ` + mcqItemSchema + `}
	}`,
	domain.ModeQuiz: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"minItems": 1,
		"items": {"$ref": "#/$defs/item"},
		"$defs": {"item": ` + mcqItemSchema + `}
	}`,
	domain.ModeExplain: `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["definition", "clinicalFeatures", "diagnosis", "treatment", "lowResourceConsiderations"],
		"properties": {
			"definition": {"type": "string"},
			"clinicalFeatures": {"type": "string"},
			"diagnosis": {"type": "string"},
			"treatment": {"type": "string"},
			"lowResourceConsiderations": {"type": "string"}
		}
	}`,
}

// Validator checks normalized payloads against the result shape of each
// mode. Compiled schemas are read-only, so one Validator may be shared.
type Validator struct {
	schemas map[domain.Mode]*jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	schemas := make(map[domain.Mode]*jsonschema.Schema, len(schemaSources))

	for mode, src := range schemaSources {
		var doc any
		if err := json.Unmarshal([]byte(src), &doc); err != nil {
			return nil, fmt.Errorf("parse %s schema: %w", mode, err)
		}
		url := fmt.Sprintf("schema://medestudia/%s.json", mode)
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", mode, err)
		}
		compiled, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", mode, err)
		}
		schemas[mode] = compiled
	}

	return &Validator{schemas: schemas}, nil
}

// Validate parses candidate and maps it onto the result type for mode:
// domain.MCQItem, domain.Quiz or domain.ExplanationRecord. Rejections are
// *ShapeError values. Quiz length is not compared to the requested count.
func (v *Validator) Validate(candidate string, mode domain.Mode) (domain.Result, error) {
	schema, ok := v.schemas[mode]
	if !ok {
		return nil, domain.NewInvalidRequestTypeError(string(mode))
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, &ShapeError{Kind: KindInvalidJSON, Raw: candidate, Err: err}
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, fromValidationError(verr, candidate)
		}
		return nil, &ShapeError{Kind: KindWrongType, Raw: candidate, Err: err}
	}

	switch mode {
	case domain.ModeMCQ:
		var item domain.MCQItem
		return decode(candidate, &item)
	case domain.ModeQuiz:
		var quiz domain.Quiz
		return decode(candidate, &quiz)
	default:
		var record domain.ExplanationRecord
		return decode(candidate, &record)
	}
}

func decode[T domain.Result](candidate string, out *T) (domain.Result, error) {
	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return nil, &ShapeError{Kind: KindWrongType, Raw: candidate, Err: err}
	}
	return *out, nil
}

// fromValidationError reports the first leaf failure of the validation tree.
func fromValidationError(verr *jsonschema.ValidationError, raw string) *ShapeError {
	leaf := verr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	path := append([]string{}, leaf.InstanceLocation...)
	shapeErr := &ShapeError{Kind: KindWrongType, Raw: raw, Err: verr}

	switch k := leaf.ErrorKind.(type) {
	case *kind.Required:
		shapeErr.Kind = KindFieldMissing
		if len(k.Missing) > 0 {
			path = append(path, k.Missing[0])
		}
	case *kind.MinItems, *kind.MaxItems:
		shapeErr.Kind = KindWrongCardinality
	}

	shapeErr.Field = strings.Join(path, "/")
	return shapeErr
}
