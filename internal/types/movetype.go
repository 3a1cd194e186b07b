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

// MoveType encodes the kind of a move in the 2-bit move type field of a Move.
//  Normal    = 0b00
//  Promotion = 0b01
//  EnPassant = 0b10
//  Castling  = 0b11
type MoveType uint8

// Constants for MoveType
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// IsValid checks if the move type is one of the four defined types
func (mt MoveType) IsValid() bool {
	return mt <= Castling
}

// array of string labels for move types
var moveTypeToString = [4]string{"n", "p", "e", "c"}

// String returns a single char string representation of the move type
func (mt MoveType) String() string {
	return moveTypeToString[mt]
}
