// SPDX-License-Identifier: MIT

package dtype

// upcastTable is computed once at package init and never written again.
var upcastTable = buildUpcastTable()

// Upcast returns the single kind that two differently-kinded operands are
// promoted to. The function is total and symmetric. Invalid kinds promote to
// Boxed, the only kind able to represent anything.
//
// Rules, in priority order:
//   - boxed with anything is boxed;
//   - complex with complex is the wider complex kind; complex with a real kind
//     is complex128 when either side is complex128 or the real side is
//     float64, otherwise complex64;
//   - among native kinds, the narrowest kind holding both operands without
//     loss, else the widest float.
func Upcast(a, b Kind) Kind {
	if !a.Valid() || !b.Valid() {
		return Boxed
	}

	return upcastTable[a][b]
}

// UpcastTable returns a copy of the full promotion table.
func UpcastTable() [NumKinds][NumKinds]Kind { return upcastTable }

func buildUpcastTable() [NumKinds][NumKinds]Kind {
	var t [NumKinds][NumKinds]Kind
	for i := 0; i < NumKinds; i++ {
		for j := i; j < NumKinds; j++ {
			k := promote(Kind(i), Kind(j))
			t[i][j] = k
			t[j][i] = k
		}
	}

	return t
}

// promote applies the promotion rules to one unordered pair.
func promote(a, b Kind) Kind {
	switch {
	case a == b:
		return a
	case a.IsBoxed() || b.IsBoxed():
		return Boxed
	case a.IsComplex() && b.IsComplex():
		return Complex128
	case a.IsComplex():
		return promoteComplex(a, b)
	case b.IsComplex():
		return promoteComplex(b, a)
	}

	return promoteNative(a, b)
}

func promoteComplex(c, r Kind) Kind {
	if c == Complex128 || r == Float64 {
		return Complex128
	}

	return Complex64
}

func promoteNative(a, b Kind) Kind {
	switch {
	case a.IsFloat() && b.IsFloat():
		return Float64
	case a.IsFloat():
		return floatFor(a, b)
	case b.IsFloat():
		return floatFor(b, a)
	}

	// Both integers. Signedness differs only when one side is uint8.
	if a.IsUnsigned() != b.IsUnsigned() {
		signed := a
		if a.IsUnsigned() {
			signed = b
		}
		if signed.bits() > 8 {
			return signed
		}

		return Int16
	}
	if a.bits() >= b.bits() {
		return a
	}

	return b
}

// floatFor picks the narrowest float holding every value of integer kind i
// exactly: float32 carries a 24-bit mantissa, float64 a 53-bit one.
func floatFor(f, i Kind) Kind {
	if f == Float32 && i.bits() <= 16 {
		return Float32
	}

	return Float64
}
