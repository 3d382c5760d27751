/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldAttempt         = "attempt"
	FieldCredentialCount = "credentialCount"
	FieldCredentialID    = "credentialID"
	FieldCredentialType  = "credentialType"
	FieldDID             = "did"
	FieldErrorCode       = "errorCode"
	FieldExchangeID      = "exchangeID"
	FieldKID             = "kid"
	FieldMethod          = "method"
	FieldOfferCount      = "offerCount"
	FieldSchemaID        = "schemaID"
	FieldSubmissionID    = "submissionID"
	FieldUserLogLevel    = "userLogLevel"
)

// WithAttempt sets the Attempt field.
func WithAttempt(attempt int) zap.Field {
	return zap.Int(FieldAttempt, attempt)
}

// WithCredentialCount sets the CredentialCount field.
func WithCredentialCount(count int) zap.Field {
	return zap.Int(FieldCredentialCount, count)
}

// WithCredentialID sets the CredentialID field.
func WithCredentialID(id string) zap.Field {
	return zap.String(FieldCredentialID, id)
}

// WithCredentialType sets the CredentialType field.
func WithCredentialType(credentialType string) zap.Field {
	return zap.String(FieldCredentialType, credentialType)
}

// WithDID sets the DID field.
func WithDID(did string) zap.Field {
	return zap.String(FieldDID, did)
}

// WithErrorCode sets the ErrorCode field.
func WithErrorCode(code string) zap.Field {
	return zap.String(FieldErrorCode, code)
}

// WithExchangeID sets the ExchangeID field.
func WithExchangeID(id string) zap.Field {
	return zap.String(FieldExchangeID, id)
}

// WithKID sets the KID field.
func WithKID(kid string) zap.Field {
	return zap.String(FieldKID, kid)
}

// WithMethod sets the Method field.
func WithMethod(method string) zap.Field {
	return zap.String(FieldMethod, method)
}

// WithOfferCount sets the OfferCount field.
func WithOfferCount(count int) zap.Field {
	return zap.Int(FieldOfferCount, count)
}

// WithSchemaID sets the SchemaID field.
func WithSchemaID(id string) zap.Field {
	return zap.String(FieldSchemaID, id)
}

// WithSubmissionID sets the SubmissionID field.
func WithSubmissionID(id string) zap.Field {
	return zap.String(FieldSubmissionID, id)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}
