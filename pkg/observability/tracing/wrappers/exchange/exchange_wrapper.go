/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package exchange . Service

package exchange

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/exchange"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/tracing/attributeutil"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/offers"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

type Service exchange.ServiceInterface

var _ exchange.ServiceInterface = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) ResolveDID(ctx context.Context, id string) (*did.Document, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.ResolveDID")
	defer span.End()

	span.SetAttributes(attribute.String("did", id))

	doc, err := w.svc.ResolveDID(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}

	return doc, nil
}

func (w *Wrapper) VerifyJWT(ctx context.Context, token *jwt.JWT) (*did.Document, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.VerifyJWT")
	defer span.End()

	span.SetAttributes(attribute.String("iss", token.Iss()))
	span.SetAttributes(attribute.String("kid", token.Kid()))

	doc, err := w.svc.VerifyJWT(ctx, token)
	if err != nil {
		return nil, fail(span, err)
	}

	return doc, nil
}

func (w *Wrapper) SignJWT(
	ctx context.Context,
	payload map[string]interface{},
	key *jwt.SigningKey,
) (*jwt.JWT, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.SignJWT")
	defer span.End()

	span.SetAttributes(attribute.String("kid", key.KID))
	span.SetAttributes(attributeutil.JSON("payload", payload, attributeutil.WithRedacted("vp.verifiableCredential")))

	token, err := w.svc.SignJWT(ctx, payload, key)
	if err != nil {
		return nil, fail(span, err)
	}

	return token, nil
}

func (w *Wrapper) GetCredentialTypes(ctx context.Context) (model.CredentialTypes, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetCredentialTypes")
	defer span.End()

	types, err := w.svc.GetCredentialTypes(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	return types, nil
}

func (w *Wrapper) GetVerifiedProfile(ctx context.Context, id string) (*model.VerifiedProfile, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetVerifiedProfile")
	defer span.End()

	span.SetAttributes(attribute.String("did", id))

	profile, err := w.svc.GetVerifiedProfile(ctx, id)
	if err != nil {
		return nil, fail(span, err)
	}

	return profile, nil
}

func (w *Wrapper) GetCredentialManifest(
	ctx context.Context,
	descriptor *model.CredentialManifestDescriptor,
) (*model.CredentialManifest, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetCredentialManifest")
	defer span.End()

	if descriptor.DeepLink != nil {
		span.SetAttributes(attribute.String("deep_link", descriptor.DeepLink.RequestURI()))
	}

	span.SetAttributes(attribute.String("issuer_did", descriptor.IssuerDID))
	span.SetAttributes(attribute.StringSlice("credential_types", descriptor.CredentialTypes))

	manifest, err := w.svc.GetCredentialManifest(ctx, descriptor)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.String("exchange_id", manifest.ExchangeID()))

	return manifest, nil
}

func (w *Wrapper) GetPresentationRequest(
	ctx context.Context,
	descriptor *model.PresentationRequestDescriptor,
) (*model.PresentationRequest, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetPresentationRequest")
	defer span.End()

	if descriptor.DeepLink != nil {
		span.SetAttributes(attribute.String("deep_link", descriptor.DeepLink.RequestURI()))
	}

	request, err := w.svc.GetPresentationRequest(ctx, descriptor)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.String("exchange_id", request.ExchangeID()))

	return request, nil
}

func (w *Wrapper) GenerateOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GenerateOffers")
	defer span.End()

	span.SetAttributes(attribute.String("exchange_id", descriptor.Manifest.ExchangeID()))
	span.SetAttributes(attribute.StringSlice("types", descriptor.Types))
	span.SetAttributes(attributeutil.Secret("session_token", sessionToken.Value))

	result, err := w.svc.GenerateOffers(ctx, descriptor, sessionToken)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("offers", len(result.All)))

	return result, nil
}

func (w *Wrapper) CheckForOffers(
	ctx context.Context,
	descriptor *model.GenerateOffersDescriptor,
	sessionToken model.Token,
) (*model.Offers, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.CheckForOffers")
	defer span.End()

	span.SetAttributes(attribute.String("exchange_id", descriptor.Manifest.ExchangeID()))
	span.SetAttributes(attributeutil.Secret("session_token", sessionToken.Value))

	result, err := w.svc.CheckForOffers(ctx, descriptor, sessionToken)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("offers", len(result.All)))

	return result, nil
}

func (w *Wrapper) FinalizeOffers(
	ctx context.Context,
	descriptor *model.FinalizeOffersDescriptor,
	sessionToken model.Token,
) (*offers.FinalizeResult, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.FinalizeOffers")
	defer span.End()

	span.SetAttributes(attribute.String("exchange_id", descriptor.Manifest.ExchangeID()))
	span.SetAttributes(attribute.StringSlice("approved_offer_ids", descriptor.ApprovedOfferIDs))
	span.SetAttributes(attribute.StringSlice("rejected_offer_ids", descriptor.RejectedOfferIDs))
	span.SetAttributes(attributeutil.Secret("session_token", sessionToken.Value))

	result, err := w.svc.FinalizeOffers(ctx, descriptor, sessionToken)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("passed", len(result.Passed)))
	span.SetAttributes(attribute.Int("failed", len(result.Failed)))

	return result, nil
}

func (w *Wrapper) SubmitPresentation(
	ctx context.Context,
	submission *model.PresentationSubmission,
	authToken *model.AuthToken,
) (*model.SubmissionResult, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.SubmitPresentation")
	defer span.End()

	span.SetAttributes(attribute.String("exchange_id", submission.Request().ExchangeID()))
	span.SetAttributes(attribute.String("submission_id", submission.SubmissionID()))
	span.SetAttributes(attribute.Int("credentials", len(submission.Credentials())))
	span.SetAttributes(attributeutil.Secret("session_token", submission.SessionToken().Value))

	if authToken != nil {
		span.SetAttributes(attributeutil.Secret("access_token", authToken.AccessToken.Value))
	}

	result, err := w.svc.SubmitPresentation(ctx, submission, authToken)
	if err != nil {
		return nil, fail(span, err)
	}

	return result, nil
}

func (w *Wrapper) GetExchangeProgress(
	ctx context.Context,
	descriptor *model.ExchangeDescriptor,
) (*model.Exchange, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetExchangeProgress")
	defer span.End()

	span.SetAttributes(attribute.String("exchange_id", descriptor.ExchangeID))

	result, err := w.svc.GetExchangeProgress(ctx, descriptor)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attributeutil.JSON("exchange", result))

	return result, nil
}

func (w *Wrapper) GetAuthToken(ctx context.Context, descriptor *model.AuthTokenDescriptor) (*model.AuthToken, error) {
	ctx, span := w.tracer.Start(ctx, "exchange.GetAuthToken")
	defer span.End()

	span.SetAttributes(attribute.String("grant_type", descriptor.GrantType()))
	span.SetAttributes(attribute.String("audience", descriptor.RelyingPartyDID))
	span.SetAttributes(attributeutil.Secret("refresh_token", descriptor.RefreshToken.Value))

	token, err := w.svc.GetAuthToken(ctx, descriptor)
	if err != nil {
		return nil, fail(span, err)
	}

	return token, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(sdkerr.CodeOf(err)))

	return err
}
