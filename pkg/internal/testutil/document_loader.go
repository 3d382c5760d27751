/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"bytes"
	_ "embed" //nolint:gci // required for go:embed
	"fmt"
	"sync"
	"testing"

	"github.com/piprate/json-gold/ld"
	"github.com/stretchr/testify/require"
)

// JSON-LD contexts served by DocumentLoader.
const (
	Layer1ContextURL = "https://lib.velocitynetwork.foundation/layer1-v1.1.jsonld"
	EmailContextURL  = "https://lib.velocitynetwork.foundation/email-v1.0.jsonld"
)

// nolint:gochecknoglobals // embedded test contexts
var (
	//go:embed contexts/layer1-v1.1.jsonld
	layer1 []byte
	//go:embed contexts/email-v1.0.jsonld
	email []byte
)

// MemoryLoader is an in-memory ld.DocumentLoader counting loads.
type MemoryLoader struct {
	mu    sync.Mutex
	docs  map[string]interface{}
	loads int
}

// DocumentLoader returns a document loader with preloaded Velocity test contexts.
func DocumentLoader(t *testing.T, extraContexts map[string][]byte) *MemoryLoader {
	t.Helper()

	l := &MemoryLoader{docs: map[string]interface{}{}}

	contexts := map[string][]byte{Layer1ContextURL: layer1, EmailContextURL: email}
	for u, content := range extraContexts {
		contexts[u] = content
	}

	for u, content := range contexts {
		doc, err := ld.DocumentFromReader(bytes.NewReader(content))
		require.NoError(t, err)

		l.docs[u] = doc
	}

	return l
}

func (l *MemoryLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loads++

	doc, ok := l.docs[u]
	if !ok {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, fmt.Errorf("context %s not found", u))
	}

	return &ld.RemoteDocument{DocumentURL: u, Document: doc}, nil
}

// Loads returns the number of LoadDocument calls.
func (l *MemoryLoader) Loads() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.loads
}
