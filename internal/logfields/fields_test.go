/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trustbloc/logutil-go/pkg/log"
)

func TestStandardFields(t *testing.T) {
	const module = "test_module"

	t.Run("json fields", func(t *testing.T) {
		stdOut := newMockWriter()

		logger := log.New(module, log.WithStdOut(stdOut), log.WithEncoding(log.JSON))

		logger.Info("Some message",
			WithAttempt(1),
			WithCredentialCount(3),
			WithCredentialID("jti-1"),
			WithCredentialType("EmailV1.0"),
			WithDID("did:example:abc"),
			WithErrorCode("signature_invalid"),
			WithExchangeID("exchange-1"),
			WithKID("did:example:abc#key-1"),
			WithMethod("GET"),
			WithOfferCount(2),
			WithSchemaID("https://example.com/did.schema.json"),
			WithSubmissionID("submission-1"),
			WithUserLogLevel("INFO"),
		)

		l := unmarshalLogData(t, stdOut.Bytes())

		require.Equal(t, module, l.Logger)
		require.Equal(t, "Some message", l.Msg)
		require.Equal(t, 1, l.Attempt)
		require.Equal(t, 3, l.CredentialCount)
		require.Equal(t, "jti-1", l.CredentialID)
		require.Equal(t, "EmailV1.0", l.CredentialType)
		require.Equal(t, "did:example:abc", l.DID)
		require.Equal(t, "signature_invalid", l.ErrorCode)
		require.Equal(t, "exchange-1", l.ExchangeID)
		require.Equal(t, "did:example:abc#key-1", l.KID)
		require.Equal(t, "GET", l.Method)
		require.Equal(t, 2, l.OfferCount)
		require.Equal(t, "https://example.com/did.schema.json", l.SchemaID)
		require.Equal(t, "submission-1", l.SubmissionID)
		require.Equal(t, "INFO", l.UserLogLevel)
	})
}

type logData struct {
	Level  string `json:"level"`
	Logger string `json:"logger"`
	Msg    string `json:"msg"`

	Attempt         int    `json:"attempt"`
	CredentialCount int    `json:"credentialCount"`
	CredentialID    string `json:"credentialID"`
	CredentialType  string `json:"credentialType"`
	DID             string `json:"did"`
	ErrorCode       string `json:"errorCode"`
	ExchangeID      string `json:"exchangeID"`
	KID             string `json:"kid"`
	Method          string `json:"method"`
	OfferCount      int    `json:"offerCount"`
	SchemaID        string `json:"schemaID"`
	SubmissionID    string `json:"submissionID"`
	UserLogLevel    string `json:"userLogLevel"`
}

func unmarshalLogData(t *testing.T, b []byte) *logData {
	t.Helper()

	l := &logData{}

	require.NoError(t, json.Unmarshal(b, l))

	return l
}

type mockWriter struct {
	*bytes.Buffer
}

func (m *mockWriter) Sync() error {
	return nil
}

func newMockWriter() *mockWriter {
	return &mockWriter{Buffer: bytes.NewBuffer(nil)}
}
