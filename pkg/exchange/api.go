/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import (
	"context"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/offers"
)

// ServiceInterface is the wallet-side surface of a credential exchange.
type ServiceInterface interface {
	ResolveDID(ctx context.Context, id string) (*did.Document, error)
	VerifyJWT(ctx context.Context, token *jwt.JWT) (*did.Document, error)
	SignJWT(ctx context.Context, payload map[string]interface{}, key *jwt.SigningKey) (*jwt.JWT, error)
	GetCredentialTypes(ctx context.Context) (model.CredentialTypes, error)
	GetVerifiedProfile(ctx context.Context, id string) (*model.VerifiedProfile, error)
	GetCredentialManifest(
		ctx context.Context,
		descriptor *model.CredentialManifestDescriptor,
	) (*model.CredentialManifest, error)
	GetPresentationRequest(
		ctx context.Context,
		descriptor *model.PresentationRequestDescriptor,
	) (*model.PresentationRequest, error)
	GenerateOffers(
		ctx context.Context,
		descriptor *model.GenerateOffersDescriptor,
		sessionToken model.Token,
	) (*model.Offers, error)
	CheckForOffers(
		ctx context.Context,
		descriptor *model.GenerateOffersDescriptor,
		sessionToken model.Token,
	) (*model.Offers, error)
	FinalizeOffers(
		ctx context.Context,
		descriptor *model.FinalizeOffersDescriptor,
		sessionToken model.Token,
	) (*offers.FinalizeResult, error)
	SubmitPresentation(
		ctx context.Context,
		submission *model.PresentationSubmission,
		authToken *model.AuthToken,
	) (*model.SubmissionResult, error)
	GetExchangeProgress(ctx context.Context, descriptor *model.ExchangeDescriptor) (*model.Exchange, error)
	GetAuthToken(ctx context.Context, descriptor *model.AuthTokenDescriptor) (*model.AuthToken, error)
}
