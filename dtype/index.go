// SPDX-License-Identifier: MIT

package dtype

import (
	"fmt"
	"strings"
	"unsafe"
)

// IndexKind identifies the unsigned integer type used to store positions in
// compressed (sparse) layouts. It is a separate enumeration from Kind so that
// complex and boxed kinds can never be used as indices.
type IndexKind uint8

// Index kinds, in ordinal order.
const (
	IndexUint8 IndexKind = iota
	IndexUint16
	IndexUint32
	IndexUint64
)

// NumIndexKinds is the number of index kinds.
const NumIndexKinds = int(IndexUint64) + 1

var indexNames = [NumIndexKinds]string{"uint8", "uint16", "uint32", "uint64"}

var indexSizes = [NumIndexKinds]uintptr{
	unsafe.Sizeof(uint8(0)),
	unsafe.Sizeof(uint16(0)),
	unsafe.Sizeof(uint32(0)),
	unsafe.Sizeof(uint64(0)),
}

// IndexKinds returns all index kinds in ordinal order.
func IndexKinds() []IndexKind {
	out := make([]IndexKind, NumIndexKinds)
	for i := range out {
		out[i] = IndexKind(i)
	}

	return out
}

// Valid reports whether ik is a member of the index catalogue.
func (ik IndexKind) Valid() bool { return int(ik) < NumIndexKinds }

// String returns the canonical name of ik.
func (ik IndexKind) String() string {
	if !ik.Valid() {
		return fmt.Sprintf("index(%d)", uint8(ik))
	}

	return indexNames[ik]
}

// Size returns the byte size of one stored index.
func (ik IndexKind) Size() uintptr {
	if !ik.Valid() {
		return 0
	}

	return indexSizes[ik]
}

// MaxIndex returns the largest position ik can store; a vector indexed by ik
// holds at most MaxIndex()+1 positions.
func (ik IndexKind) MaxIndex() uint64 {
	switch ik {
	case IndexUint8:
		return 1<<8 - 1
	case IndexUint16:
		return 1<<16 - 1
	case IndexUint32:
		return 1<<32 - 1
	default:
		return 1<<64 - 1
	}
}

// ParseIndex returns the IndexKind named by s.
func ParseIndex(s string) (IndexKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range indexNames {
		if n == name {
			return IndexKind(i), nil
		}
	}

	return 0, fmt.Errorf("ParseIndex(%q): %w", s, ErrUnknownKind)
}

// AsIndex maps a catalogue kind onto an index kind. Only unsigned native
// integer kinds qualify.
func AsIndex(k Kind) (IndexKind, error) {
	if k == Uint8 {
		return IndexUint8, nil
	}

	return 0, fmt.Errorf("AsIndex(%s): %w", k, ErrNotIndexKind)
}

// IndexFor returns the narrowest index kind able to address n positions,
// that is positions 0 through n-1.
func IndexFor(n uint64) IndexKind {
	if n == 0 {
		return IndexUint8
	}
	for _, ik := range IndexKinds() {
		if n-1 <= ik.MaxIndex() {
			return ik
		}
	}

	return IndexUint64
}
