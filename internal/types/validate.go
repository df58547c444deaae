// Package types provides the JSON documents exchanged by the keyprofiles
// CLI and store: exported profiles, selections and evolved candidates.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("major_profile", func(fl validator.FieldLevel) bool {
		return profiles.IsValidName(profiles.Major, profiles.Name(fl.Field().String()))
	})
	_ = v.RegisterValidation("minor_profile", func(fl validator.FieldLevel) bool {
		return profiles.IsValidName(profiles.Minor, profiles.Name(fl.Field().String()))
	})
	return v
}
