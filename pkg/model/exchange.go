/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Exchange is a snapshot of an issuing or disclosure session.
type Exchange struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	DisclosureComplete bool   `json:"disclosureComplete"`
	ExchangeComplete   bool   `json:"exchangeComplete"`
}

// ParseExchange parses a progress answer.
func ParseExchange(payload []byte) (*Exchange, error) {
	e := &Exchange{}

	if err := json.Unmarshal(payload, e); err != nil {
		return nil, fmt.Errorf("unmarshal exchange: %w", err)
	}

	return e, nil
}

// ExchangeDescriptor addresses a progress poll.
type ExchangeDescriptor struct {
	ProgressURI  string
	ExchangeID   string
	SessionToken Token
}

// NewExchangeDescriptor addresses the exchange of a presentation submission.
func NewExchangeDescriptor(request *PresentationRequest, result *SubmissionResult) *ExchangeDescriptor {
	exchangeID := result.Exchange.ID
	if exchangeID == "" {
		exchangeID = request.ExchangeID()
	}

	return &ExchangeDescriptor{
		ProgressURI:  request.ProgressURI(),
		ExchangeID:   exchangeID,
		SessionToken: result.SessionToken,
	}
}

// Endpoint returns progressUri?exchange_id=...
func (d *ExchangeDescriptor) Endpoint() (string, error) {
	if d.ProgressURI == "" {
		return "", errors.New("progress uri is empty")
	}

	return appendQuery(d.ProgressURI, url.Values{ParamExchangeID: []string{d.ExchangeID}})
}
