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

// Package slip39 converts a single SLIP-0039[1] share between its structured
// form (Share) and its mnemonic form: a sequence of words from the SLIP-0039
// wordlist, protected by a 30-bit RS1024 checksum.
//
// The layout of a mnemonic is as follows (each word is 10 bits):
//
//	id (15) | iteration exponent (5) | group index (4) | group threshold-1 (4) |
//	group count-1 (4) | member index (4) | member threshold-1 (4) |
//	padding + value (10*k) | checksum (30)
//
// The value is left-padded with zero bits up to a multiple of 10 bits, and its
// length is implied by the number of words in the mnemonic.
//
// This package only handles the encoding of individual shares. Splitting a
// secret into shares, combining shares and decrypting the master secret are
// all left to the caller.
//
// [1]: https://github.com/satoshilabs/slips/blob/master/slip-0039.md
package slip39

import (
	"github.com/cyphar/papershare/pkg/wordlist"
	"github.com/pkg/errors"
)

// Set of errors returned by this package.
var (
	// ErrUnknownWord is returned when a mnemonic contains a word which is not
	// in the SLIP-0039 wordlist. This usually indicates a typo, and the user
	// should be asked to correct the word.
	ErrUnknownWord = wordlist.ErrUnknownWord

	// ErrChecksumMismatch is returned when every word in the mnemonic is
	// valid but the checksum doesn't match. This indicates either a
	// transcription error (such as swapped words) or tampering.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrInvalidMnemonic is returned when a mnemonic has a valid checksum but
	// is otherwise malformed (too short, or with non-zero padding).
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidShare is returned when a Share has a field which cannot be
	// represented in a mnemonic.
	ErrInvalidShare = errors.New("invalid share")
)

// IsInvalidMnemonic returns whether err is the result of rejecting a
// mnemonic, for any of the reasons a mnemonic can be rejected.
func IsInvalidMnemonic(err error) bool {
	return errors.Is(err, ErrUnknownWord) ||
		errors.Is(err, ErrChecksumMismatch) ||
		errors.Is(err, ErrInvalidMnemonic)
}
