/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

const (
	// PrimaryOrganizationIRI marks the credential subject term naming the organization a claim is about.
	PrimaryOrganizationIRI = "https://velocitynetwork.foundation/ontology#primaryOrganization"
	// PrimarySourceProfileIRI marks the term naming the primary source of a claim.
	PrimarySourceProfileIRI = "https://velocitynetwork.foundation/ontology#primarySourceProfile"

	verifiableCredentialType = "VerifiableCredential"
)

// identityCategories maps identity issuing categories to the service types allowed to issue them.
var identityCategories = map[model.ServiceType][]model.ServiceType{ //nolint:gochecknoglobals
	model.ServiceTypeContactIssuer: {model.ServiceTypeContactIssuer, model.ServiceTypeNotaryContactIssuer},
	model.ServiceTypeIDDocumentIssuer: {
		model.ServiceTypeIDDocumentIssuer, model.ServiceTypeNotaryIDDocumentIssuer,
	},
	model.ServiceTypeIdentityIssuer: {model.ServiceTypeIdentityIssuer},
}

type CredentialIssuerVerifierConfig struct {
	DocumentLoader ld.DocumentLoader
}

// CredentialIssuerVerifier checks that the issuer's accreditation permits issuing a credential:
//   - identity credentials (contact, id document) need the matching identity issuing category;
//   - any other credential must be about the issuer itself, i.e. the subject's primary
//     organization is the issuer, unless the issuer is accredited as a notary.
type CredentialIssuerVerifier struct {
	documentLoader ld.DocumentLoader
}

func NewCredentialIssuerVerifier(config *CredentialIssuerVerifierConfig) *CredentialIssuerVerifier {
	return &CredentialIssuerVerifier{documentLoader: config.DocumentLoader}
}

func (v *CredentialIssuerVerifier) Verify(
	_ context.Context,
	credential *jwt.JWT,
	profile *model.VerifiedProfile,
	types model.CredentialTypes,
) (bool, error) {
	if profile == nil {
		return false, issuerError(credential, sdkerr.IssuerUnexpectedPermissionFailure,
			fmt.Errorf("no verified profile for issuer %s", credential.Iss()))
	}

	credentialType, ok := credentialTypeOf(credential)
	if !ok {
		return false, issuerError(credential, sdkerr.InvalidCredentialSubjectType,
			errors.New("credential declares no type"))
	}

	definition, ok := types.Find(credentialType)
	if !ok {
		return false, issuerError(credential, sdkerr.InvalidCredentialSubjectType,
			fmt.Errorf("unknown credential type %s", credentialType))
	}

	if allowed, isIdentity := identityCategories[definition.IssuerCategory]; isIdentity {
		if profile.HasAnyServiceType(allowed...) {
			return true, nil
		}

		return false, issuerError(credential, sdkerr.IssuerRequiresIdentityPermission,
			fmt.Errorf("issuing %s requires one of %v", credentialType, allowed)).
			With(sdkerr.KeyServiceType, string(definition.IssuerCategory))
	}

	if profile.HasAnyServiceType(model.ServiceTypeNotaryIssuer) {
		return true, nil
	}

	subject := vcClaim(credential, "credentialSubject")
	if !subject.IsObject() {
		return false, issuerError(credential, sdkerr.InvalidCredentialSubjectType,
			errors.New("credential subject is not an object"))
	}

	terms, err := v.primaryOrganizationTerms(definition)
	if err != nil {
		return false, issuerError(credential, sdkerr.InvalidCredentialSubjectContext, err)
	}

	issuers := lo.Compact([]string{credential.Iss(), profile.ID()})

	for _, term := range terms {
		org := subject.Get(escapePath(term))

		for _, id := range []string{org.Get("id").String(), org.Get("identifier").String()} {
			if id != "" && lo.Contains(issuers, id) {
				return true, nil
			}
		}
	}

	logger.Debug("credential is not about its issuer",
		logfields.WithCredentialType(credentialType), logfields.WithDID(credential.Iss()))

	return false, issuerError(credential, sdkerr.IssuerRequiresNotaryPermission,
		fmt.Errorf("issuer is not the primary organization of %s", credentialType))
}

// primaryOrganizationTerms loads the JSON-LD contexts of the credential type and returns the
// terms mapped to the primary organization or primary source IRIs.
func (v *CredentialIssuerVerifier) primaryOrganizationTerms(definition *model.CredentialType) ([]string, error) {
	if len(definition.JSONLDContext) == 0 {
		return nil, fmt.Errorf("credential type %s has no JSON-LD context", definition.CredentialType)
	}

	var terms []string

	for _, contextURL := range definition.JSONLDContext {
		doc, err := v.documentLoader.LoadDocument(contextURL)
		if err != nil {
			return nil, fmt.Errorf("load JSON-LD context %s: %w", contextURL, err)
		}

		content, ok := doc.Document.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("JSON-LD context %s is not a JSON object", contextURL)
		}

		ctx, ok := content["@context"]
		if !ok {
			return nil, fmt.Errorf("JSON-LD context %s has no @context", contextURL)
		}

		terms = append(terms, findTerms(ctx)...)
	}

	terms = lo.Uniq(terms)
	sort.Strings(terms)

	return terms, nil
}

func findTerms(ctx interface{}) []string {
	var terms []string

	switch c := ctx.(type) {
	case []interface{}:
		for _, item := range c {
			terms = append(terms, findTerms(item)...)
		}
	case map[string]interface{}:
		for term, definition := range c {
			def, ok := definition.(map[string]interface{})
			if !ok {
				continue
			}

			if id, _ := def["@id"].(string); id == PrimaryOrganizationIRI || id == PrimarySourceProfileIRI {
				terms = append(terms, term)
			}

			if scoped, ok := def["@context"]; ok {
				terms = append(terms, findTerms(scoped)...)
			}
		}
	}

	return terms
}

// credentialTypeOf returns the most specific declared type of a JWT-VC.
func credentialTypeOf(credential *jwt.JWT) (string, bool) {
	t := vcClaim(credential, "type")

	var types []string
	if t.IsArray() {
		types = lo.Map(t.Array(), func(r gjson.Result, _ int) string { return r.String() })
	} else {
		types = []string{t.String()}
	}

	types = lo.Reject(types, func(s string, _ int) bool { return s == "" || s == verifiableCredentialType })
	if len(types) == 0 {
		return "", false
	}

	return types[len(types)-1], true
}

// vcClaim reads path from the vc claim of a JWT-VC, falling back to the top level payload.
func vcClaim(credential *jwt.JWT, path string) gjson.Result {
	if r := credential.Claim("vc." + path); r.Exists() {
		return r
	}

	return credential.Claim(path)
}

var pathEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`) //nolint:gochecknoglobals

func escapePath(term string) string {
	return pathEscaper.Replace(term)
}

func issuerError(credential *jwt.JWT, code sdkerr.Code, cause error) *sdkerr.Error {
	logger.Warn("credential issuer not permitted",
		logfields.WithDID(credential.Iss()), logfields.WithErrorCode(string(code)), log.WithError(cause))

	e := sdkerr.New(code, cause).
		WithComponent(sdkerr.VerificationComponent).
		WithOperation("verify credential issuer").
		With(sdkerr.KeyDID, credential.Iss())

	tagCredential(e, credential)

	return e
}
