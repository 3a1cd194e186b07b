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

// PieceType is a set of constants for piece types in chess
//  test for non sliding pt & 0b0100 == 0 (must also be none zero)
//  test for sliding pt & 0b0100 == 1 (must also be < 7)
//  PtNone   = 0b0000
//  King     = 0b0001 // non sliding
//  Pawn     = 0b0010 // non sliding
//  Knight   = 0b0011 // non sliding
//  Bishop   = 0b0100 // sliding
//  Rook     = 0b0101 // sliding
//  Queen    = 0b0110 // sliding
//  PtLength = 0b0111
type PieceType uint8

// PieceType is a set of constants for piece types in chess
const (
	PtNone   PieceType = 0b0000
	King     PieceType = 0b0001
	Pawn     PieceType = 0b0010
	Knight   PieceType = 0b0011
	Bishop   PieceType = 0b0100
	Rook     PieceType = 0b0101
	Queen    PieceType = 0b0110
	PtLength PieceType = 0b0111
)

// IsValid reports whether pt names one of the six real piece types (or
// PtNone, since movegen and SEE compare against it as a sentinel).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// pieceTypeFacts bundles the per-piece-type constants that used to live in
// three parallel tables: the tapered-eval phase weight, the static
// material value SEE and the evaluator fall back on, and the name/letter
// pair used for logging and FEN rendering.
var pieceTypeFacts = [PtLength]struct {
	phaseWeight int
	value       Value
	name        string
	letter      byte
}{
	PtNone: {0, 0, "NOPIECE", '-'},
	King:   {0, 2000, "King", 'K'},
	Pawn:   {0, 100, "Pawn", 'P'},
	Knight: {1, 320, "Knight", 'N'},
	Bishop: {1, 330, "Bishop", 'B'},
	Rook:   {2, 500, "Rook", 'R'},
	Queen:  {4, 900, "Queen", 'Q'},
}

// GamePhaseValue returns pt's contribution to the tapered-eval game-phase
// counter; summing this across the board interpolates between middlegame
// and endgame piece-square tables.
func (pt PieceType) GamePhaseValue() int {
	return pieceTypeFacts[pt].phaseWeight
}

// ValueOf returns the static material value of pt, as consumed by SEE and
// the material term of the default evaluator.
func (pt PieceType) ValueOf() Value {
	return pieceTypeFacts[pt].value
}

// String returns the full piece type name, e.g. "Knight".
func (pt PieceType) String() string {
	return pieceTypeFacts[pt].name
}

// Char returns the single uppercase FEN letter for pt ('-' for PtNone).
func (pt PieceType) Char() string {
	return string(pieceTypeFacts[pt].letter)
}
