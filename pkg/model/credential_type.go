/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// CredentialType is a registrar credential type definition.
type CredentialType struct {
	ID             string
	CredentialType string
	SchemaName     string
	IssuerCategory ServiceType
	JSONLDContext  []string
	Recommended    bool
}

// UnmarshalJSON accepts jsonldContext either as a string or as a list of strings.
func (t *CredentialType) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid credential type JSON")
	}

	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return fmt.Errorf("credential type is not a JSON object")
	}

	ctx := r.Get("jsonldContext")

	*t = CredentialType{
		ID:             r.Get("id").String(),
		CredentialType: r.Get("credentialType").String(),
		SchemaName:     r.Get("schemaName").String(),
		IssuerCategory: ServiceType(r.Get("issuerCategory").String()),
		Recommended:    r.Get("recommended").Bool(),
	}

	if ctx.IsArray() {
		t.JSONLDContext = lo.Map(ctx.Array(), func(c gjson.Result, _ int) string { return c.String() })
	} else if ctx.String() != "" {
		t.JSONLDContext = []string{ctx.String()}
	}

	return nil
}

// CredentialTypes is the registrar credential type registry.
type CredentialTypes []*CredentialType

// ParseCredentialTypes parses the registry answer.
func ParseCredentialTypes(payload []byte) (CredentialTypes, error) {
	var types CredentialTypes

	if err := json.Unmarshal(payload, &types); err != nil {
		return nil, fmt.Errorf("unmarshal credential types: %w", err)
	}

	return types, nil
}

// Find returns the definition of credentialType.
func (c CredentialTypes) Find(credentialType string) (*CredentialType, bool) {
	return lo.Find(c, func(t *CredentialType) bool {
		return t != nil && t.CredentialType == credentialType
	})
}
