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

package wordlist

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWordlistShape makes sure the generated table is usable for binary
// search and that every word is uniquely identified by its prefix.
func TestWordlistShape(t *testing.T) {
	assert.Equal(t, uint(10), BitsPerWord, "bits per word")
	assert.True(t, sort.StringsAreSorted(wordlist[:]), "wordlist must be sorted")

	seen := map[string]struct{}{}
	prefixes := map[string]struct{}{}
	for _, word := range wordlist {
		seen[word] = struct{}{}
		prefixes[word[:UniquePrefixLength]] = struct{}{}
	}
	assert.Len(t, seen, Size, "wordlist has duplicate words")
	assert.Len(t, prefixes, Size, "wordlist has duplicate prefixes")
}

func TestWordlistKnownIndices(t *testing.T) {
	for _, test := range []struct {
		idx  uint16
		word string
	}{
		{0, "academic"},
		{1, "acid"},
		{255, "easel"},
		{512, "leader"},
		{1021, "yield"},
		{1022, "yoga"},
		{1023, "zero"},
	} {
		assert.Equalf(t, test.word, Word(test.idx), "Word(%d)", test.idx)
		idx, err := Index(test.word)
		require.NoErrorf(t, err, "Index(%q)", test.word)
		assert.Equalf(t, test.idx, idx, "Index(%q)", test.word)
	}
}

func TestWordIndexRoundTrip(t *testing.T) {
	for idx := uint16(0); idx < Size; idx++ {
		got, err := Index(Word(idx))
		require.NoError(t, err)
		require.Equal(t, idx, got)
	}
}

func TestWordMasksIndex(t *testing.T) {
	assert.Equal(t, Word(3), Word(Size+3))
}

func TestIndexUnknownWord(t *testing.T) {
	for _, word := range []string{"", "bitcoin", "Academic", "academi", "academics", "zzzz", "aaaa"} {
		_, err := Index(word)
		assert.Errorf(t, err, "Index(%q) should fail", word)
		assert.Truef(t, errors.Is(err, ErrUnknownWord), "Index(%q) error should be ErrUnknownWord: %v", word, err)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "academic", Normalize("  AcAdEmIc\t"))
	assert.Equal(t, "zero", Normalize("ZERO"))
}

func TestComplete(t *testing.T) {
	for _, test := range []struct {
		prefix string
		word   string
		unique bool
	}{
		{"acad", "academic", true},
		{"academic", "academic", true},
		{"DUCK", "duckling", true},
		{"ac", "academic", false},
		{"z", "zero", true},
		{"y", "year", false},
	} {
		word, unique, err := Complete(test.prefix)
		require.NoErrorf(t, err, "Complete(%q)", test.prefix)
		assert.Equalf(t, test.word, word, "Complete(%q)", test.prefix)
		assert.Equalf(t, test.unique, unique, "Complete(%q) uniqueness", test.prefix)
	}
}

func TestCompleteUniquePrefixes(t *testing.T) {
	for _, word := range wordlist {
		got, unique, err := Complete(word[:UniquePrefixLength])
		require.NoError(t, err)
		assert.Equal(t, word, got)
		assert.True(t, unique, "prefix of %q should be unique", word)
	}
}

func TestCompleteUnknown(t *testing.T) {
	for _, prefix := range []string{"", "  ", "zzz", "qx", "academicx"} {
		_, _, err := Complete(prefix)
		assert.Truef(t, errors.Is(err, ErrUnknownWord), "Complete(%q) should fail with ErrUnknownWord: %v", prefix, err)
	}
}
