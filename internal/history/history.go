//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var printer = message.NewPrinter(language.English)

// colors lists the two sides whose history tables a single from/to cell
// reports, in display order.
var colors = [2]Color{White, Black}

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting: how often a
// from/to pair has produced a beta cutoff (HistoryCount), and which move
// most recently refuted a given move at this ply (CounterMoves).
type History struct {
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move
}

// NewHistory creates a new, zeroed History instance.
func NewHistory() *History {
	return &History{}
}

// cellString renders one from/to cell: the per-color cutoff counts
// followed by the stored counter move, if any.
func (h History) cellString(from, to Square) string {
	var sb strings.Builder
	sb.WriteString(printer.Sprintf("Move=%s%s: ", from.String(), to.String()))
	for _, c := range colors {
		sb.WriteString(printer.Sprintf("%s=%-7d ", c.String(), h.HistoryCount[c][from][to]))
	}
	sb.WriteString(printer.Sprintf("cm=%s\n", h.CounterMoves[from][to].StringUci()))
	return sb.String()
}

func (h History) String() string {
	var sb strings.Builder
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			sb.WriteString(h.cellString(from, to))
		}
	}
	return sb.String()
}
