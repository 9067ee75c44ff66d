// SPDX-License-Identifier: MIT

package dispatch_test

import "github.com/katalvlaran/lvnum/scalar"

func boxInt(v int64) scalar.Boxed { return scalar.NewBoxed(scalar.NewInt(v)) }
