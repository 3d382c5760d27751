/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/validator/jsonschema"
)

//go:embed schema/did_document.schema.json
var documentSchemaJSON []byte

var documentSchema = jsonschema.MustCompile(documentSchemaJSON) //nolint:gochecknoglobals

// Document is a resolved DID document. It is built fresh on every resolution.
type Document struct {
	ID                 string               `json:"id"`
	AlsoKnownAs        []string             `json:"alsoKnownAs,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
}

// VerificationMethod is a public key listed in a DID document.
type VerificationMethod struct {
	ID           string     `json:"id"`
	Type         string     `json:"type,omitempty"`
	Controller   string     `json:"controller,omitempty"`
	PublicKeyJwk *PublicJWK `json:"publicKeyJwk,omitempty"`
}

// PublicJWK is the public part of a JSON Web Key (RFC 7517).
type PublicJWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
	N   string `json:"n,omitempty"`
	E   string `json:"e,omitempty"`
	Alg string `json:"alg,omitempty"`
	Kid string `json:"kid,omitempty"`
	Use string `json:"use,omitempty"`
}

// ParseDocument validates raw against the DID document schema and decodes it.
func ParseDocument(raw []byte) (*Document, error) {
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("invalid DID document: %w", err)
	}

	doc := &Document{}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("unmarshal DID document: %w", err)
	}

	return doc, nil
}

// Matches reports whether did identifies the document's subject, either as its id or as
// one of its aliases.
func (d *Document) Matches(did string) bool {
	if did == "" {
		return false
	}

	return d.ID == did || lo.Contains(d.AlsoKnownAs, did)
}

// GetPublicJWK returns the key whose verification method fragment matches the fragment of
// kid ("did:example:abc#key-1" or "#key-1"). Absent keys are reported with false.
func GetPublicJWK(doc *Document, kid string) (*PublicJWK, bool) {
	fragment := Fragment(kid)
	if fragment == "" {
		return nil, false
	}

	vm, ok := lo.Find(doc.VerificationMethod, func(vm VerificationMethod) bool {
		return vm.PublicKeyJwk != nil && Fragment(vm.ID) == fragment
	})
	if !ok {
		return nil, false
	}

	return vm.PublicKeyJwk, true
}

// Fragment returns the part of a DID URL after '#'. A value without '#' is treated as a bare fragment.
func Fragment(didURL string) string {
	if i := strings.LastIndex(didURL, "#"); i >= 0 {
		return didURL[i+1:]
	}

	return didURL
}

// BaseDID strips the fragment from a DID URL.
func BaseDID(didURL string) string {
	base, _, _ := strings.Cut(didURL, "#")

	return base
}
