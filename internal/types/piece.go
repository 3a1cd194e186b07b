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

// Piece is a set of constants for pieces in chess
// Can be used with masks:
//  No Piece = 0
//  White Piece is a non zero value with piece & 0b1000 == 0
//  Black Piece is a non zero value with piece & 0b1000 == 1
//  PieceNone  = 0b0000
//  WhiteKing  = 0b0001
//  WhitePawn  = 0b0010
//  WhiteKnight= 0b0011
//  WhiteBishop= 0b0100
//  WhiteRook  = 0b0101
//  WhiteQueen = 0b0110
//  BlackKing  = 0b1001
//  BlackPawn  = 0b1010
//  BlackKnight= 0b1011
//  BlackBishop= 0b1100
//  BlackRook  = 0b1101
//  BlackQueen = 0b1110
//  PieceLength= 0b10000
type Piece int8

// Pieces are a set of constants to represent the different pieces
// of a chess game.
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// colorShift splits the 4-bit piece encoding into a 1-bit color above a
// 3-bit piece type: MakePiece/ColorOf/TypeOf all pivot on this one constant.
const colorShift = 3

// MakePiece packs a color and piece type into their combined encoding.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<colorShift | int(pt))
}

// ColorOf extracts the color half of the piece encoding.
func (p Piece) ColorOf() Color {
	return Color(p >> colorShift)
}

// TypeOf extracts the piece-type half of the piece encoding.
func (p Piece) TypeOf() PieceType {
	return PieceType(p) & 7
}

// ValueOf returns the static material value of the piece's type
// (see PieceType.ValueOf).
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// pieceLabels holds, per Piece index, the single-letter FEN symbol, the
// alternate "O/*"-for-pawn letter, and the unicode glyph. Keeping the three
// representations side by side in one table (rather than three separate
// parallel slices) makes it obvious at a glance that they must stay in
// sync across all 16 encoded values.
var pieceLabels = [PieceLength]struct {
	fen     byte
	letter  byte
	unicode string
}{
	PieceNone:   {' ', ' ', " "},
	WhiteKing:   {'K', 'K', "♔"},
	WhitePawn:   {'P', 'O', "♙"},
	WhiteKnight: {'N', 'N', "♘"},
	WhiteBishop: {'B', 'B', "♗"},
	WhiteRook:   {'R', 'R', "♖"},
	WhiteQueen:  {'Q', 'Q', "♕"},
	7:           {'-', '-', "-"},
	8:           {' ', ' ', " "},
	BlackKing:   {'k', 'k', "♚"},
	BlackPawn:   {'p', '*', "♟"},
	BlackKnight: {'n', 'n', "♞"},
	BlackBishop: {'b', 'b', "♝"},
	BlackRook:   {'r', 'r', "♜"},
	BlackQueen:  {'q', 'q', "♛"},
	15:          {'-', '-', "-"},
}

// PieceFromChar returns the Piece whose FEN symbol is s. It returns
// PieceNone if s is not exactly one recognized character.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	for i, label := range pieceLabels {
		if label.fen == s[0] {
			return Piece(i)
		}
	}
	return PieceNone
}

// String returns the FEN symbol for the piece (upper case for white).
func (p Piece) String() string {
	return string(pieceLabels[p].fen)
}

// Char is String but with pawns rendered as 'O'/'*' instead of 'P'/'p'.
func (p Piece) Char() string {
	return string(pieceLabels[p].letter)
}

// UniChar returns a unicode chess-glyph representation of the piece.
func (p Piece) UniChar() string {
	return pieceLabels[p].unicode
}
