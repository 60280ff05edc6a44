// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package rpc

import "decred.org/xmrrpc/dex"

// RequireString checks that a required string argument is non-empty.
func RequireString(name, v string) error {
	if v == "" {
		return dex.NewError(ErrMissingArgument, name)
	}
	return nil
}

// RequireSlice checks that a required list argument has at least one
// element.
func RequireSlice[T any](name string, v []T) error {
	if len(v) == 0 {
		return dex.NewError(ErrMissingArgument, name)
	}
	return nil
}

// RequireNonNil checks that a required pointer argument is set.
func RequireNonNil[T any](name string, v *T) error {
	if v == nil {
		return dex.NewError(ErrMissingArgument, name)
	}
	return nil
}

// Require returns the first non-nil error. It is used to combine the
// argument checks of a method.
func Require(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
