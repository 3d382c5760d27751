/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package submission sends signed presentations to relying parties and polls the progress of
// the exchange they belong to.
package submission

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/jwt"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

var logger = log.New("submission")

type Config struct {
	AppConfig      *config.Config
	NetworkService transport.NetworkService
	JWTSigner      jwt.Signer
	Metrics        metrics.Metrics
}

type Service struct {
	cfg       *config.Config
	network   transport.NetworkService
	jwtSigner jwt.Signer
	metrics   metrics.Metrics
}

func New(config *Config) *Service {
	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		cfg:       config.AppConfig,
		network:   config.NetworkService,
		jwtSigner: config.JWTSigner,
		metrics:   m,
	}
}

// Submit signs the submission as a JWT-VP with the holder key and posts it. authToken may be nil;
// when set, its access token follows the session token in the Authorization header.
func (s *Service) Submit(
	ctx context.Context,
	submission *model.PresentationSubmission,
	authToken *model.AuthToken,
) (*model.SubmissionResult, error) {
	start := time.Now()
	defer func() { s.metrics.SubmitPresentationTime(time.Since(start)) }()

	request := submission.Request()
	endpoint := request.SubmitPresentationURI()

	if endpoint == "" {
		return nil, submissionError(errors.New("presentation request has no submit_presentation_uri"),
			"submit presentation", endpoint)
	}

	holder := submission.Holder()
	if holder == nil || holder.Key == nil {
		return nil, submissionError(errors.New("no holder key to sign the presentation"),
			"submit presentation", endpoint)
	}

	jwtVP, err := s.jwtSigner.Sign(ctx, submission.PresentationPayload(), holder.Key)
	if err != nil {
		return nil, submissionError(fmt.Errorf("sign presentation: %w", err), "submit presentation", endpoint)
	}

	req, err := transport.NewRequest(s.cfg, http.MethodPost, endpoint, submission.RequestBody(jwtVP))
	if err != nil {
		return nil, submissionError(err, "submit presentation", endpoint)
	}

	tokens := []string{submission.SessionToken().Value}
	if authToken != nil {
		tokens = append(tokens, authToken.AccessToken.Value)
	}

	resp, err := s.network.SendRequest(ctx, req.WithBearer(tokens...))
	if err != nil {
		return nil, submissionError(err, "submit presentation", endpoint)
	}

	result, err := model.ParseSubmissionResult(resp.Payload, submission)
	if err != nil {
		return nil, submissionError(err, "submit presentation", endpoint)
	}

	logger.Info("presentation submitted",
		logfields.WithExchangeID(request.ExchangeID()),
		logfields.WithSubmissionID(submission.SubmissionID()),
		logfields.WithCredentialCount(len(submission.Credentials())))

	return result, nil
}

// GetExchangeProgress polls the progress of an exchange.
func (s *Service) GetExchangeProgress(ctx context.Context, descriptor *model.ExchangeDescriptor) (*model.Exchange, error) {
	start := time.Now()
	defer func() { s.metrics.ExchangeProgressTime(time.Since(start)) }()

	endpoint, err := descriptor.Endpoint()
	if err != nil {
		return nil, submissionError(err, "get exchange progress", descriptor.ProgressURI)
	}

	req, err := transport.NewRequest(s.cfg, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, submissionError(err, "get exchange progress", endpoint)
	}

	resp, err := s.network.SendRequest(ctx, req.WithBearer(descriptor.SessionToken.Value))
	if err != nil {
		return nil, submissionError(err, "get exchange progress", endpoint)
	}

	exchange, err := model.ParseExchange(resp.Payload)
	if err != nil {
		return nil, submissionError(err, "get exchange progress", endpoint)
	}

	return exchange, nil
}

func submissionError(err error, operation, endpoint string) error {
	logger.Warn(operation+" failed", log.WithURL(endpoint), log.WithError(err))

	var e *sdkerr.Error
	if errors.As(err, &e) {
		return err
	}

	return sdkerr.New(sdkerr.SdkError, err).
		WithComponent(sdkerr.SubmissionComponent).
		WithOperation(operation).
		With(sdkerr.KeyURL, endpoint)
}
