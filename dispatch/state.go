// SPDX-License-Identifier: MIT

package dispatch

import (
	"sync"
	"sync/atomic"
)

// State is the status of one table cell.
type State uint8

// Cell states. The zero State is Unbuilt.
const (
	Unbuilt State = iota
	Ready
	Unsupported
	NotImplemented
)

var stateNames = [...]string{"unbuilt", "ready", "unsupported", "not-implemented"}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "invalid"
	}

	return stateNames[s]
}

// Stats counts the cells of a table by state.
type Stats struct {
	Unbuilt        int `yaml:"unbuilt"`
	Ready          int `yaml:"ready"`
	Unsupported    int `yaml:"unsupported"`
	NotImplemented int `yaml:"not_implemented"`
}

func (s *Stats) add(st State) {
	switch st {
	case Ready:
		s.Ready++
	case Unsupported:
		s.Unsupported++
	case NotImplemented:
		s.NotImplemented++
	default:
		s.Unbuilt++
	}
}

// Total is the number of cells counted.
func (s Stats) Total() int { return s.Unbuilt + s.Ready + s.Unsupported + s.NotImplemented }

type cell[H any] struct {
	state  State
	handle H
}

// lazy runs a table's population once and publishes completion. Readers that
// observe built==true also observe every cell write made by the population.
type lazy struct {
	once  sync.Once
	built atomic.Bool
}

func (l *lazy) build(populate func()) {
	l.once.Do(func() {
		populate()
		l.built.Store(true)
	})
}

// Built reports whether the table has been populated.
func (l *lazy) Built() bool { return l.built.Load() }
