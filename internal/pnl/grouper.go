package pnl

import "strings"

type blockState int

const (
	noActiveBlock blockState = iota
	accumulatingBlock
)

func (s blockState) String() string {
	switch s {
	case noActiveBlock:
		return "NoActiveBlock"
	case accumulatingBlock:
		return "AccumulatingBlock"
	default:
		return "Unknown"
	}
}

// sourceLine is a raw line with its 1-based position in the message.
type sourceLine struct {
	no   int
	text string
}

// grouper assembles passenger blocks from body lines. feed returns a block
// each time one is complete: when the next passenger header arrives or on
// ENDPNL. After ENDPNL, done is set and further input must not be fed.
type grouper struct {
	state blockState
	buf   []sourceLine
	done  bool
}

func (g *grouper) feed(line sourceLine) []sourceLine {
	switch {
	case strings.HasPrefix(line.text, passengerTag):
		var complete []sourceLine
		if g.state == accumulatingBlock {
			complete = g.buf
		}
		g.buf = []sourceLine{line}
		g.state = accumulatingBlock
		return complete

	case strings.HasPrefix(line.text, endTag):
		complete := g.buf
		g.buf = nil
		g.state = noActiveBlock
		g.done = true
		return complete

	default:
		if g.state == accumulatingBlock {
			g.buf = append(g.buf, line)
		}
		return nil
	}
}
