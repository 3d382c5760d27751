/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

const segmentCount = 3

// Registered header and claim names.
const (
	HeaderAlg = "alg"
	HeaderKid = "kid"
	HeaderTyp = "typ"

	ClaimIss   = "iss"
	ClaimSub   = "sub"
	ClaimAud   = "aud"
	ClaimJti   = "jti"
	ClaimExp   = "exp"
	ClaimNbf   = "nbf"
	ClaimIat   = "iat"
	ClaimNonce = "nonce"
)

// JWT is a decoded compact JWS. The encoded form is the single source of truth; header,
// payload and signature are decoded from it once and only handed out as copies.
type JWT struct {
	encoded   string
	header    []byte
	payload   []byte
	signature []byte
}

// Decode parses a compact serialized JWT. It does not verify the signature.
func Decode(encoded string) (*JWT, error) {
	segments := strings.Split(encoded, ".")
	if len(segments) != segmentCount {
		return nil, malformed(fmt.Errorf("expected %d segments, got %d", segmentCount, len(segments)))
	}

	header, err := decodeObject(segments[0])
	if err != nil {
		return nil, malformed(fmt.Errorf("header: %w", err))
	}

	payload, err := decodeObject(segments[1])
	if err != nil {
		return nil, malformed(fmt.Errorf("payload: %w", err))
	}

	signature, err := decodeSegment(segments[2])
	if err != nil {
		return nil, malformed(fmt.Errorf("signature: %w", err))
	}

	return &JWT{
		encoded:   encoded,
		header:    header,
		payload:   payload,
		signature: signature,
	}, nil
}

// Encoded returns the compact serialization.
func (j *JWT) Encoded() string {
	return j.encoded
}

func (j *JWT) String() string {
	return j.encoded
}

// SigningInput returns the "<header>.<payload>" part covered by the signature.
func (j *JWT) SigningInput() string {
	return j.encoded[:strings.LastIndex(j.encoded, ".")]
}

// Header returns a copy of the protected header.
func (j *JWT) Header() map[string]interface{} {
	return mustObject(j.header)
}

// Payload returns a copy of the claims.
func (j *JWT) Payload() map[string]interface{} {
	return mustObject(j.payload)
}

// RawPayload returns a copy of the claims JSON.
func (j *JWT) RawPayload() []byte {
	return append([]byte(nil), j.payload...)
}

// Signature returns a copy of the decoded signature.
func (j *JWT) Signature() []byte {
	return append([]byte(nil), j.signature...)
}

// Claim reads a payload value by gjson path, e.g. "vc.credentialSubject.id".
func (j *JWT) Claim(path string) gjson.Result {
	return gjson.GetBytes(j.payload, path)
}

// HeaderParam reads a protected header value by gjson path.
func (j *JWT) HeaderParam(path string) gjson.Result {
	return gjson.GetBytes(j.header, path)
}

func (j *JWT) Iss() string {
	return j.Claim(ClaimIss).String()
}

func (j *JWT) Sub() string {
	return j.Claim(ClaimSub).String()
}

func (j *JWT) Jti() string {
	return j.Claim(ClaimJti).String()
}

func (j *JWT) Kid() string {
	return j.HeaderParam(HeaderKid).String()
}

func (j *JWT) Alg() string {
	return j.HeaderParam(HeaderAlg).String()
}

func (j *JWT) Typ() string {
	return j.HeaderParam(HeaderTyp).String()
}

// Exp returns the expiration time, if the token has one.
func (j *JWT) Exp() (time.Time, bool) {
	exp := j.Claim(ClaimExp)
	if exp.Type != gjson.Number {
		return time.Time{}, false
	}

	return time.Unix(exp.Int(), 0).UTC(), true
}

// MarshalJSON encodes the token as its compact serialization string.
func (j *JWT) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.encoded)
}

// UnmarshalJSON decodes a compact serialization string.
func (j *JWT) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return malformed(err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		return err
	}

	*j = *decoded

	return nil
}

// Encode builds the "<header>.<payload>" signing input for the given header and claims.
func Encode(header, payload map[string]interface{}) (string, error) {
	h, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}

	p, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(h) + "." + base64.RawURLEncoding.EncodeToString(p), nil
}

func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
}

func decodeObject(seg string) ([]byte, error) {
	b, err := decodeSegment(seg)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return nil, fmt.Errorf("not a JSON object")
	}

	return b, nil
}

func mustObject(b []byte) map[string]interface{} {
	m := map[string]interface{}{}

	// b was validated as a JSON object in Decode.
	_ = json.Unmarshal(b, &m)

	return m
}

func malformed(err error) error {
	return sdkerr.New(sdkerr.MalformedJwt, err).WithComponent(sdkerr.JWTComponent)
}
