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

// Package wordlist implements the SLIP-0039 wordlist, which maps each 10-bit
// word index to a word (and back). The ordering of the list is a protocol
// constant: any other ordering produces mnemonics which no other SLIP-0039
// implementation can read.
package wordlist

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// You can re-generate the Go wordlist source from the SLIP-0039 wordlist file
// using 'go generate'. You can also verify that the wordlist is the actual
// SLIP-0039 wordlist by re-downloading it from the SLIPs repo.
//go:generate ./wordlist_generate.sh data/wordlist_slip39.txt wordlist_slip39.go

// BitsPerWord is the number of bits represented by each word. This is directly
// dependent on the size of the wordlist.
var BitsPerWord = uint(bits.Len(wordlistSize - 1))

// Size is the number of words in the wordlist.
const Size = wordlistSize

// UniquePrefixLength is the length of the prefix which uniquely identifies
// every word in the wordlist.
const UniquePrefixLength = 4

// ErrUnknownWord is returned when a word is not present in the wordlist.
var ErrUnknownWord = errors.New("word is not in the slip39 wordlist")

// Word returns the word with the given index. Only the lower BitsPerWord bits
// of idx are used, so every uint16 maps to some word.
func Word(idx uint16) string {
	return wordlist[idx&(Size-1)]
}

// Index returns the index of the given word. The wordlist is sorted, so we
// can binary search it rather than building a reverse-lookup table at init.
func Index(word string) (uint16, error) {
	idx := sort.SearchStrings(wordlist[:], word)
	if idx >= Size || wordlist[idx] != word {
		return 0, errors.Wrapf(ErrUnknownWord, "lookup %q", word)
	}
	return uint16(idx), nil
}

// Normalize returns the canonical form of a user-provided word (NFKD, lower
// case, no surrounding whitespace), which is the form used in the wordlist.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKD.String(word)))
}

// Complete returns the first word in the wordlist which has the given prefix.
// The returned bool indicates whether that word is the only match (which is
// always true for prefixes of at least UniquePrefixLength letters that match
// at all). If no word matches, ErrUnknownWord is returned.
func Complete(prefix string) (string, bool, error) {
	prefix = Normalize(prefix)
	if prefix == "" {
		return "", false, errors.Wrap(ErrUnknownWord, "complete empty prefix")
	}
	idx := sort.SearchStrings(wordlist[:], prefix)
	if idx >= Size || !strings.HasPrefix(wordlist[idx], prefix) {
		return "", false, errors.Wrapf(ErrUnknownWord, "complete %q", prefix)
	}
	unique := idx+1 >= Size || !strings.HasPrefix(wordlist[idx+1], prefix)
	return wordlist[idx], unique, nil
}
