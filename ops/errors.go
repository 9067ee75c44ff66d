// SPDX-License-Identifier: MIT

package ops

import "errors"

// ErrUnknownOp is returned by the Parse functions for names outside the catalogue.
var ErrUnknownOp = errors.New("ops: unknown operation")
