/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
)

var logger = log.New("jsonschema")

// Schema is a compiled JSON schema identified by its $id.
type Schema struct {
	id     string
	schema *gojsonschema.Schema
}

// Compile parses and compiles the given JSON schema document. The document must declare a string $id.
func Compile(doc []byte) (*Schema, error) {
	var schemaDoc map[string]interface{}

	if err := json.Unmarshal(doc, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	idObj, ok := schemaDoc["$id"]
	if !ok {
		return nil, fmt.Errorf("field '$id' not found in JSON schema")
	}

	id, ok := idObj.(string)
	if !ok {
		return nil, fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			reflect.TypeOf(idObj))
	}

	compiled, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schemaDoc))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema [%s]: %w", id, err)
	}

	logger.Debug("Compiled JSON schema", logfields.WithSchemaID(id))

	return &Schema{id: id, schema: compiled}, nil
}

// MustCompile is Compile for schemas embedded in the binary.
func MustCompile(doc []byte) *Schema {
	s, err := Compile(doc)
	if err != nil {
		panic(err)
	}

	return s
}

// ID returns the schema $id.
func (s *Schema) ID() string {
	return s.id
}

// Validate validates the given JSON document.
func (s *Schema) Validate(data []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("validation error: %w", ValidationErrors(result.Errors()))
	}

	return nil
}

// ValidationErrors lists every violation found in a document.
type ValidationErrors []gojsonschema.ResultError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))

	for _, msg := range e {
		msgs = append(msgs, msg.String())
	}

	return fmt.Sprintf("[%s]", strings.Join(msgs, "; "))
}
