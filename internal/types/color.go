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

package types

import "fmt"

// Color represents constants for each chess color White and Black
type Color uint8

// Constants for each color
const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color. White and Black differ in a single bit,
// so flipping is an XOR rather than a branch.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is one of the two defined colors.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String renders c the way FEN does: "w" or "b".
func (c Color) String() string {
	if !c.IsValid() {
		panic(fmt.Sprintf("invalid color %d", c))
	}
	return [ColorLength]string{"w", "b"}[c]
}

// perColor holds the four color-relative facts move generation and
// evaluation need: which way pawns march, their double-push start rank,
// their promotion rank, and the scalar sign used to orient evaluation
// scores to white's perspective.
type perColor struct {
	pawnPush      Direction
	doublePushRow Bitboard
	promotionRow  Bitboard
	sign          int
}

var colorFacts = [ColorLength]perColor{
	White: {pawnPush: North, doublePushRow: Rank3_Bb, promotionRow: Rank8_Bb, sign: 1},
	Black: {pawnPush: South, doublePushRow: Rank6_Bb, promotionRow: Rank1_Bb, sign: -1},
}

// Direction returns +1 for White and -1 for Black, for orienting
// evaluation terms to a white-relative sign.
func (c Color) Direction() int {
	return colorFacts[c].sign
}

// MoveDirection returns the compass direction a pawn of this color
// advances in: North for White, South for Black.
func (c Color) MoveDirection() Direction {
	return colorFacts[c].pawnPush
}

// PromotionRankBb returns the rank bitboard on which this color's pawns
// promote.
func (c Color) PromotionRankBb() Bitboard {
	return colorFacts[c].promotionRow
}

// PawnDoubleRank returns the rank a pawn of this color lands on after a
// single push from its start rank, i.e. the rank from which the second
// step of a two-square opening push is made.
func (c Color) PawnDoubleRank() Bitboard {
	return colorFacts[c].doublePushRow
}
