// SPDX-License-Identifier: MIT

package matrix

import (
	"sync"

	"github.com/katalvlaran/lvnum/dispatch"
)

// Tables are shared per numeric policy. The first caller with a given policy
// creates the table; Resolve builds it on first use.

type tableKey struct {
	eps    float64
	epsSet bool
}

var (
	elementwiseTables sync.Map // tableKey → *dispatch.ElementwiseTable
	indexTables       sync.Map // tableKey → *dispatch.IndexTable
)

func (o Options) tableKey() tableKey { return tableKey{eps: o.eps, epsSet: o.epsSet} }

func elementwiseTable(o Options) *dispatch.ElementwiseTable {
	key := o.tableKey()
	if t, ok := elementwiseTables.Load(key); ok {
		return t.(*dispatch.ElementwiseTable)
	}
	t, _ := elementwiseTables.LoadOrStore(key, dispatch.NewElementwiseTable(o.dispatchOptions()...))

	return t.(*dispatch.ElementwiseTable)
}

func indexTable(o Options) *dispatch.IndexTable {
	key := o.tableKey()
	if t, ok := indexTables.Load(key); ok {
		return t.(*dispatch.IndexTable)
	}
	t, _ := indexTables.LoadOrStore(key, dispatch.NewIndexTable(o.dispatchOptions()...))

	return t.(*dispatch.IndexTable)
}
