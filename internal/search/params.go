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

package search

import (
	"math"

	"github.com/corvidchess/corvid/internal/types"
)

// This file contain data structures and functions to support the search with
// static or pre-computed parameters. Mostly for params too complex to be
// part of the search configuration

// lmrMaxIndex is the largest depth/moves-searched index the lmr table
// is precomputed for; callers clamp both dimensions to this bound.
const lmrMaxIndex = 63

// lmr is a lookup table for late move reductions in the dimensions
// depth and moves searched: lmr[depth][movesSearched].
var lmr [lmrMaxIndex + 1][lmrMaxIndex + 1]int

// LmrReduction returns the search depth reduction for LMR depending on
// depth and moves searched: clamp(1 + 0.5*ln(depth)*ln(movesSearched), 0, 64),
// with depth 0, depth 1 and moves-searched 0 forced to a reduction of 0.
func LmrReduction(depth int, movesSearched int) int {
	if depth > lmrMaxIndex {
		depth = lmrMaxIndex
	}
	if movesSearched > lmrMaxIndex {
		movesSearched = lmrMaxIndex
	}
	return lmr[depth][movesSearched]
}

// prepare the pre-computed values.
func init() {
	for i := 0; i <= lmrMaxIndex; i++ {
		for j := 0; j <= lmrMaxIndex; j++ {
			switch {
			case i <= 1:
				lmr[i][j] = 0
			case j == 0:
				lmr[i][j] = 0
			default:
				r := math.Round(1.0 + 0.5*math.Log(float64(i))*math.Log(float64(j)))
				switch {
				case r < 0:
					r = 0
				case r > 64:
					r = 64
				}
				lmr[i][j] = int(r)
			}
		}
	}
}

// LmpMovesSearched returns the late-move-pruning move-count threshold for
// a given remaining depth: 3 + 8*depth. Once the number of moves already
// searched in a node reaches this threshold, further moves that pass the
// forward pruning conditions are skipped.
func LmpMovesSearched(depth int) int {
	return 3 + 8*depth
}

// futility pruning - array with margins per depth left.
var fp = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// Crafty values: {  0, 100, 150, 200,  250,  300,  400,  500, 600, 700, 800, 900, 1000, 1100, 1200, 1300 }

// RfpMargin returns the reverse-futility (static null move) margin for a
// given remaining depth: 10 + 75*depth.
func RfpMargin(depth int) types.Value {
	return types.Value(10 + 75*depth)
}
