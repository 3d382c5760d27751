/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verification implements the trust checks applied to everything the wallet receives:
// JWT signatures against resolved DID keys, deep link binding of manifests, requests, offers and
// credentials, and issuer accreditation of issued credentials.
//
// Every verifier returns (true, nil) on success and (false, *sdkerr.Error) on failure, the error
// code naming the reason of the rejection.
package verification

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/doc/did"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

var logger = log.New("verification")

// bind checks that doc lists both the claimed DID and the deep link's DID as its identity or aliases.
func bind(
	op string,
	code sdkerr.Code,
	claimed string,
	dl *deeplink.DeepLink,
	doc *did.Document,
) (bool, error) {
	linkDID, ok := dl.DID()
	if !ok {
		logger.Warn("deep link carries no DID", log.WithURL(dl.RequestURI()))

		return false, sdkerr.Newf(sdkerr.MissingDidInDeepLink, "deep link carries no DID").
			WithComponent(sdkerr.VerificationComponent).
			WithOperation(op).
			With(sdkerr.KeyURL, dl.RequestURI())
	}

	if doc != nil && doc.Matches(claimed) && doc.Matches(linkDID) {
		return true, nil
	}

	documentID := ""
	if doc != nil {
		documentID = doc.ID
	}

	logger.Warn("deep link DID mismatch",
		logfields.WithDID(claimed), logfields.WithErrorCode(string(code)), log.WithURL(dl.RequestURI()))

	return false, sdkerr.Newf(code, "%s and %s are not identities of the same DID document", claimed, linkDID).
		WithComponent(sdkerr.VerificationComponent).
		WithOperation(op).
		With(sdkerr.KeyDID, linkDID).
		With(sdkerr.KeyClaimedDID, claimed).
		With(sdkerr.KeyDocumentID, documentID)
}
