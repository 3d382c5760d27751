/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/model"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

// ProfileServiceTypeVerifier checks that an organization is accredited for one of the expected
// service categories.
type ProfileServiceTypeVerifier struct{}

func (ProfileServiceTypeVerifier) Verify(
	_ context.Context,
	profile *model.VerifiedProfile,
	expected []model.ServiceType,
) (bool, error) {
	if profile != nil && profile.HasAnyServiceType(expected...) {
		return true, nil
	}

	id := ""
	var actual []model.ServiceType

	if profile != nil {
		id = profile.ID()
		actual = profile.ServiceTypes()
	}

	logger.Warn("unexpected profile service type", logfields.WithDID(id))

	names := lo.Map(expected, func(t model.ServiceType, _ int) string { return string(t) })

	return false, sdkerr.New(sdkerr.InvalidProfileServiceType,
		fmt.Errorf("profile service types %v match none of %s", actual, strings.Join(names, ", "))).
		WithComponent(sdkerr.VerificationComponent).
		WithOperation("verify profile service type").
		With(sdkerr.KeyDID, id).
		With(sdkerr.KeyServiceType, strings.Join(names, ","))
}
