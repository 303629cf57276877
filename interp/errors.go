// SPDX-License-Identifier: EPL-2.0

package interp

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid interpolator configuration")
)
