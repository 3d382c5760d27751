/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sdkerr

// Code identifies the reason of a failure.
type Code string

//nolint:gosec
const (
	MalformedJwt      Code = "malformed_jwt"
	ResolutionFailed  Code = "resolution_failed"
	PublicKeyNotFound Code = "public_key_not_found"
	SignatureInvalid  Code = "signature_invalid"

	InvalidDeepLink      Code = "invalid_deep_link"
	MissingDidInDeepLink Code = "missing_did_in_deep_link"

	MismatchedRequestIssuerDid                Code = "mismatched_request_issuer_did"
	MismatchedPresentationRequestInspectorDid Code = "mismatched_presentation_request_inspector_did"
	MismatchedCredentialIssuerDid             Code = "mismatched_credential_issuer_did"
	MismatchedOfferIssuerDid                  Code = "mismatched_offer_issuer_did"

	IssuerRequiresNotaryPermission    Code = "issuer_requires_notary_permission"
	IssuerRequiresIdentityPermission  Code = "issuer_requires_identity_permission"
	IssuerUnexpectedPermissionFailure Code = "issuer_unexpected_permission_failure"
	InvalidCredentialSubjectType      Code = "invalid_credential_subject_type"
	InvalidCredentialSubjectContext   Code = "invalid_credential_subject_context"
	InvalidProfileServiceType         Code = "invalid_profile_service_type"

	TransportError Code = "transport_error"
	SdkError       Code = "sdk_error"
)

// Component names the engine part that raised an error.
type Component string

const (
	TransportComponent           Component = "transport"
	DIDResolverComponent         Component = "did-resolver"
	JWTComponent                 Component = "jwt-codec"
	DeepLinkComponent            Component = "deep-link"
	VerificationComponent        Component = "verification"
	CredentialManifestComponent  Component = "credential-manifest"
	PresentationRequestComponent Component = "presentation-request"
	OffersComponent              Component = "offers"
	SubmissionComponent          Component = "submission"
	AuthTokenComponent           Component = "auth-token"
	ProfileComponent             Component = "verified-profile"
	CredentialTypesComponent     Component = "credential-types"
)

// Audit context keys.
const (
	KeyDID         = "did"
	KeyClaimedDID  = "claimed_did"
	KeyDocumentID  = "document_id"
	KeyKID         = "kid"
	KeyURL         = "url"
	KeyCredential  = "credential"
	KeyOfferID     = "offer_id"
	KeyServiceType = "service_type"
)
