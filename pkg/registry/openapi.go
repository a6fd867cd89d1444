package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys honoured when hydrating a registry from an OpenAPI document.
const (
	groupExtensionKey = "x-group"
	kindExtensionKey  = "x-kind"
)

// FromOpenAPI hydrates a registry from the multipart request body of a single
// operation inside an OpenAPI document, so the receiving endpoint's contract
// document can drive the field declarations. Property types map to kinds:
// string/binary becomes a file, string/date a date, boolean a flag, and
// everything else text. The vendor extensions "x-group" and "x-kind" override
// the conditional group and the inferred kind.
func FromOpenAPI(ctx context.Context, doc []byte, operationID string) (*Registry, error) {
	if len(doc) == 0 {
		return nil, errors.New("registry: openapi document payload is empty")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return nil, errors.New("registry: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc)
	if err != nil {
		return nil, fmt.Errorf("registry: load openapi document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("registry: openapi document does not contain any paths")
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("registry: operation %q not found", operationID)
	}

	schema := requestBodySchema(operation)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("registry: operation %q has no request body properties", operationID)
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			fields = append(fields, Field{Key: name, Label: name, Kind: KindText})
			continue
		}
		fields = append(fields, fieldFromProperty(name, ref.Value))
	}
	return New(fields...)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"multipart/form-data", "application/x-www-form-urlencoded", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromProperty(name string, property *openapi3.Schema) Field {
	field := Field{
		Key:   name,
		Label: name,
		Kind:  inferKind(property),
	}
	if title := strings.TrimSpace(property.Title); title != "" {
		field.Label = title
	}
	if property.Default != nil {
		field.Default = fmt.Sprint(property.Default)
	}
	if raw, ok := property.Extensions[groupExtensionKey]; ok {
		if group, ok := raw.(string); ok {
			field.Group = strings.TrimSpace(group)
		}
	}
	if raw, ok := property.Extensions[kindExtensionKey]; ok {
		if kind, ok := raw.(string); ok && kind != "" {
			field.Kind = Kind(kind)
		}
	}
	return field
}

func inferKind(property *openapi3.Schema) Kind {
	switch firstType(property.Type) {
	case "boolean":
		return KindBool
	case "string":
		switch property.Format {
		case "binary", "byte":
			return KindFile
		case "date", "date-time":
			return KindDate
		}
	}
	return KindText
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
