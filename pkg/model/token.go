/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
)

// Token is a bearer token handed out by an agent. Its value is usually, but not
// necessarily, a JWT.
type Token struct {
	Value string
}

// NewToken wraps value.
func NewToken(value string) Token {
	return Token{Value: value}
}

// IsEmpty reports whether no token was issued.
func (t Token) IsEmpty() bool {
	return t.Value == ""
}

// JWT decodes the token.
func (t Token) JWT() (*jwt.JWT, error) {
	return jwt.Decode(t.Value)
}

func (t Token) String() string {
	return t.Value
}

// AuthToken is an OAuth style access/refresh token pair scoped to one wallet and one
// relying party.
type AuthToken struct {
	AccessToken     Token
	RefreshToken    Token
	TokenType       string
	AuthTokenURI    string
	WalletDID       string
	RelyingPartyDID string
}

// Grant types accepted by agent token endpoints.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// AuthTokenDescriptor addresses a token request.
type AuthTokenDescriptor struct {
	AuthTokenURI      string
	WalletDID         string
	RelyingPartyDID   string
	AuthorizationCode string
	RefreshToken      Token
}

// NewAuthTokenDescriptor requests a first token for the exchange of request, using the deep
// link's vendor origin context as authorization code.
func NewAuthTokenDescriptor(request *PresentationRequest, walletDID string) *AuthTokenDescriptor {
	return &AuthTokenDescriptor{
		AuthTokenURI:      request.AuthTokenURI(),
		WalletDID:         walletDID,
		RelyingPartyDID:   request.InspectorID(),
		AuthorizationCode: request.VendorOriginContext(),
	}
}

// NewRefreshAuthTokenDescriptor requests a new token pair for an expired one.
func NewRefreshAuthTokenDescriptor(token *AuthToken) *AuthTokenDescriptor {
	return &AuthTokenDescriptor{
		AuthTokenURI:    token.AuthTokenURI,
		WalletDID:       token.WalletDID,
		RelyingPartyDID: token.RelyingPartyDID,
		RefreshToken:    token.RefreshToken,
	}
}

// GrantType returns refresh_token when a refresh token is set, authorization_code otherwise.
func (d *AuthTokenDescriptor) GrantType() string {
	if !d.RefreshToken.IsEmpty() {
		return GrantTypeRefreshToken
	}

	return GrantTypeAuthorizationCode
}

// Payload builds the token request body.
func (d *AuthTokenDescriptor) Payload() map[string]interface{} {
	body := map[string]interface{}{
		"grant_type": d.GrantType(),
		"client_id":  d.WalletDID,
		"audience":   d.RelyingPartyDID,
	}

	if d.GrantType() == GrantTypeRefreshToken {
		body["refresh_token"] = d.RefreshToken.Value
	} else {
		body["authorization_code"] = d.AuthorizationCode
	}

	return body
}

type authTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// ParseAuthToken builds the token pair returned for d.
func ParseAuthToken(payload []byte, d *AuthTokenDescriptor) (*AuthToken, error) {
	var resp authTokenResponse

	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal auth token: %w", err)
	}

	if resp.AccessToken == "" {
		return nil, errors.New("auth token response has no access_token")
	}

	return &AuthToken{
		AccessToken:     NewToken(resp.AccessToken),
		RefreshToken:    NewToken(resp.RefreshToken),
		TokenType:       resp.TokenType,
		AuthTokenURI:    d.AuthTokenURI,
		WalletDID:       d.WalletDID,
		RelyingPartyDID: d.RelyingPartyDID,
	}, nil
}
