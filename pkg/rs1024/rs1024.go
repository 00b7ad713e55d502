/*
 * papershare: SLIP-0039 share mnemonics for paper backups
 * Copyright (C) 2018 Aleksa Sarai <cyphar@cyphar.com>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package rs1024 implements the 30-bit polynomial checksum used by SLIP-0039
// mnemonics. The checksum is computed over GF(1024) (so each input value is a
// 10-bit word index) and is customised with the string "shamir", so that
// mnemonics cannot be confused with other schemes that use the same code.
//
// A sequence of words (including its trailing ChecksumWords checksum words)
// is valid iff Checksum(words) == 1.
package rs1024

// ChecksumWords is the number of 10-bit words used to store a checksum.
const ChecksumWords = 3

// wordBits is the size (in bits) of each value in the checksummed sequence.
const wordBits = 10

// generator contains the generator constants of the checksum polynomial.
var generator = [wordBits]uint32{
	0x00e0e040,
	0x01c1c080,
	0x03838100,
	0x07070200,
	0x0e0e0009,
	0x1c0c2412,
	0x38086c24,
	0x3090fc48,
	0x21b1f890,
	0x03f3f120,
}

// customization is the domain separation string prepended to every sequence.
var customization = [...]uint16{'s', 'h', 'a', 'm', 'i', 'r'}

func polymod(chk uint32, values []uint16) uint32 {
	for _, v := range values {
		b := chk >> 20
		chk = (chk&0xfffff)<<wordBits ^ uint32(v)
		for i := uint(0); i < wordBits; i++ {
			if (b>>i)&1 != 0 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// Checksum computes the checksum of the given sequence of 10-bit values. Each
// value is expected to be less than 1024.
func Checksum(values []uint16) uint32 {
	return polymod(polymod(1, customization[:]), values)
}

// Verify returns whether the sequence of values, whose last ChecksumWords
// values are the checksum, is valid.
func Verify(values []uint16) bool {
	return Checksum(values) == 1
}

// Generate returns the checksum words for the given data. Appending the
// returned words to data produces a sequence for which Verify is true.
func Generate(data []uint16) [ChecksumWords]uint16 {
	padded := make([]uint16, len(data)+ChecksumWords)
	copy(padded, data)
	target := Checksum(padded) ^ 1

	var words [ChecksumWords]uint16
	for i := range words {
		shift := wordBits * uint(ChecksumWords-1-i)
		words[i] = uint16((target >> shift) & (1<<wordBits - 1))
	}
	return words
}

// Append returns data with its checksum words appended.
func Append(data []uint16) []uint16 {
	checksum := Generate(data)
	return append(data[:len(data):len(data)], checksum[:]...)
}
