/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

const (
	presentationType  = "VerifiablePresentation"
	descriptorFormat  = "jwt_vc"
	credentialsV1     = "https://www.w3.org/2018/credentials/v1"
	descriptorPathFmt = "$.verifiableCredential[%d]"
)

// VerifiableCredential is a credential selected by the holder for an input descriptor.
type VerifiableCredential struct {
	InputDescriptor string
	JwtVc           *jwt.JWT
}

// Holder is the DID and key the presentation is signed with.
type Holder struct {
	DID string
	Key *jwt.SigningKey
}

// PresentationSubmission is one attempt to answer a presentation request. Its jti and
// submission id are generated once and echoed back by the submission result.
type PresentationSubmission struct {
	request      *PresentationRequest
	credentials  []VerifiableCredential
	holder       *Holder
	jti          string
	submissionID string
	sessionToken Token
}

// NewPresentationSubmission binds the selected credentials to request.
func NewPresentationSubmission(
	request *PresentationRequest,
	credentials []VerifiableCredential,
	holder *Holder,
) *PresentationSubmission {
	return &PresentationSubmission{
		request:      request,
		credentials:  credentials,
		holder:       holder,
		jti:          uuid.NewString(),
		submissionID: uuid.NewString(),
	}
}

func (s *PresentationSubmission) Request() *PresentationRequest {
	return s.request
}

func (s *PresentationSubmission) Holder() *Holder {
	return s.holder
}

func (s *PresentationSubmission) Credentials() []VerifiableCredential {
	return append([]VerifiableCredential(nil), s.credentials...)
}

// WithSessionToken attaches the session token of the exchange the submission belongs to, e.g.
// the manifest session when the presentation identifies the holder to an issuer.
func (s *PresentationSubmission) WithSessionToken(token Token) *PresentationSubmission {
	s.sessionToken = token

	return s
}

func (s *PresentationSubmission) SessionToken() Token {
	return s.sessionToken
}

func (s *PresentationSubmission) JTI() string {
	return s.jti
}

func (s *PresentationSubmission) SubmissionID() string {
	return s.submissionID
}

// PresentationPayload builds the claims of the JWT-VP, one descriptor_map entry per credential.
func (s *PresentationSubmission) PresentationPayload() map[string]interface{} {
	descriptors := lo.Map(s.credentials, func(c VerifiableCredential, i int) map[string]interface{} {
		return map[string]interface{}{
			"id":     c.InputDescriptor,
			"path":   fmt.Sprintf(descriptorPathFmt, i),
			"format": descriptorFormat,
		}
	})

	encoded := lo.Map(s.credentials, func(c VerifiableCredential, _ int) string {
		return c.JwtVc.Encoded()
	})

	claims := map[string]interface{}{
		jwt.ClaimJti: s.jti,
		"vp": map[string]interface{}{
			"type": presentationType,
			"presentation_submission": map[string]interface{}{
				"id":             s.submissionID,
				"definition_id":  s.request.PresentationDefinitionID(),
				"descriptor_map": descriptors,
			},
			"verifiableCredential": encoded,
		},
	}

	if aud := s.request.InspectorID(); aud != "" {
		claims[jwt.ClaimAud] = aud
	}

	if s.holder != nil && s.holder.DID != "" {
		claims[jwt.ClaimIss] = s.holder.DID
	}

	return claims
}

// RequestBody builds the submit presentation body around the signed presentation.
func (s *PresentationSubmission) RequestBody(jwtVP *jwt.JWT) map[string]interface{} {
	body := map[string]interface{}{
		"exchange_id": s.request.ExchangeID(),
		"jwt_vp":      jwtVP.Encoded(),
		"@context":    []string{credentialsV1},
	}

	if pd := s.request.PushDelegate(); pd != nil {
		body["push_delegate"] = pd
	}

	return body
}

// SubmissionResult is the agent's answer to a submission.
type SubmissionResult struct {
	SessionToken Token
	Exchange     *Exchange
	JTI          string
	SubmissionID string
}

type submissionResponse struct {
	Token    string    `json:"token"`
	Exchange *Exchange `json:"exchange"`
}

// ParseSubmissionResult parses the agent's answer to s.
func ParseSubmissionResult(payload []byte, s *PresentationSubmission) (*SubmissionResult, error) {
	var resp submissionResponse

	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal submission result: %w", err)
	}

	if resp.Exchange == nil {
		resp.Exchange = &Exchange{}
	}

	return &SubmissionResult{
		SessionToken: NewToken(resp.Token),
		Exchange:     resp.Exchange,
		JTI:          s.jti,
		SubmissionID: s.submissionID,
	}, nil
}
