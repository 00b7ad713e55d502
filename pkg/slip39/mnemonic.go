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

package slip39

import (
	"fmt"
	"strings"

	"github.com/cyphar/papershare/internal/bitstream"
	"github.com/cyphar/papershare/pkg/rs1024"
	"github.com/cyphar/papershare/pkg/wordlist"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// radixBits is the number of bits stored in each word.
	radixBits = 10

	// prefixWords is the number of words taken up by the share metadata
	// (15+5+4+4+4+4+4 = 40 bits).
	prefixWords = 4

	// MinWords is the length of the shortest possible mnemonic (one with an
	// empty value).
	MinWords = prefixWords + rs1024.ChecksumWords
)

// prefixField describes one of the fixed-width fields at the start of every
// mnemonic. Thresholds and counts are stored as (value-1).
type prefixField struct {
	name  string
	bits  uint
	minus uint8
	ptr   func(*Share) *uint8
}

var prefixFields = []prefixField{
	{name: "iteration exponent", bits: iterationExponentBits, ptr: func(s *Share) *uint8 { return &s.IterationExponent }},
	{name: "group index", bits: indexBits, ptr: func(s *Share) *uint8 { return &s.GroupIndex }},
	{name: "group threshold", bits: indexBits, minus: 1, ptr: func(s *Share) *uint8 { return &s.GroupThreshold }},
	{name: "group count", bits: indexBits, minus: 1, ptr: func(s *Share) *uint8 { return &s.GroupCount }},
	{name: "member index", bits: indexBits, ptr: func(s *Share) *uint8 { return &s.MemberIndex }},
	{name: "member threshold", bits: indexBits, minus: 1, ptr: func(s *Share) *uint8 { return &s.MemberThreshold }},
}

// readWords re-reads the given packed data as a sequence of words, stopping
// once there are fewer than radixBits bits left.
func readWords(data []byte) ([]uint16, error) {
	var words []uint16
	r := bitstream.NewReader(data)
	for r.Remaining() >= radixBits {
		w, err := r.Read(radixBits)
		if err != nil {
			return nil, err
		}
		words = append(words, uint16(w))
	}
	return words, nil
}

// prefixWordIndices packs the share metadata into its prefixWords words.
func (s Share) prefixWordIndices() ([]uint16, error) {
	w := bitstream.NewWriter()
	if err := w.Write(uint64(s.ID), idBits); err != nil {
		return nil, errors.Wrap(err, "pack id")
	}
	for _, field := range prefixFields {
		value := *field.ptr(&s) - field.minus
		if err := w.Write(uint64(value), field.bits); err != nil {
			return nil, errors.Wrapf(err, "pack %s", field.name)
		}
	}
	data, err := w.Flush()
	if err != nil {
		return nil, errors.Wrap(err, "pack prefix")
	}
	return readWords(data)
}

// valueWordIndices packs the (left-padded) share value into words.
func (s Share) valueWordIndices() ([]uint16, error) {
	w := bitstream.NewWriter()
	if padding := valuePaddingBits(len(s.Value)); padding > 0 {
		if err := w.Write(0, padding); err != nil {
			return nil, errors.Wrap(err, "pack value padding")
		}
	}
	for _, b := range s.Value {
		if err := w.Write(uint64(b), 8); err != nil {
			return nil, errors.Wrap(err, "pack value")
		}
	}
	data, err := w.Flush()
	if err != nil {
		return nil, errors.Wrap(err, "pack value")
	}
	return readWords(data)
}

// WordIndices returns the share encoded as a sequence of word indices,
// including the trailing checksum words.
func (s Share) WordIndices() ([]uint16, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	prefix, err := s.prefixWordIndices()
	if err != nil {
		return nil, err
	}
	value, err := s.valueWordIndices()
	if err != nil {
		return nil, err
	}
	return rs1024.Append(append(prefix, value...)), nil
}

// Mnemonic returns the mnemonic encoding of the share, as a space-separated
// string of words. An error is only returned if the share is not valid.
func (s Share) Mnemonic() (string, error) {
	indices, err := s.WordIndices()
	if err != nil {
		return "", err
	}
	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wordlist.Word(idx)
	}
	return strings.Join(words, " "), nil
}

// rejectf logs why a mnemonic was rejected and returns the corresponding
// error. Only the reason and the formatted detail are logged, so format must
// not include any of the words.
func rejectf(cause error, format string, args ...interface{}) error {
	err := errors.Wrapf(cause, format, args...)
	Logger().Debug("rejected mnemonic",
		zap.String("reason", errors.Cause(err).Error()),
		zap.String("detail", fmt.Sprintf(format, args...)))
	return err
}

// ParseWordIndices takes a mnemonic and returns the word index of each word.
// The mnemonic is normalised (NFKD and lower-case) and split on whitespace.
// No checksum verification is done.
func ParseWordIndices(mnemonic string) ([]uint16, error) {
	tokens := strings.Fields(wordlist.Normalize(mnemonic))
	indices := make([]uint16, len(tokens))
	for i, token := range tokens {
		idx, err := wordlist.Index(token)
		if err != nil {
			return nil, rejectf(err, "word %d", i+1)
		}
		indices[i] = idx
	}
	return indices, nil
}

// FromWordIndices decodes a share from its word indices (including the
// trailing checksum words). If the checksum does not match,
// ErrChecksumMismatch is returned. The value is read after the leading
// (10*k mod 8) padding bits of the value words, which must be zero, so for
// values that aren't a multiple of 10 bits long the value does not start at
// byte 5 of the packed words.
func FromWordIndices(indices []uint16) (Share, error) {
	if len(indices) < MinWords {
		return Share{}, rejectf(ErrInvalidMnemonic, "mnemonic has %d words, need at least %d", len(indices), MinWords)
	}
	for i, idx := range indices {
		if idx >= wordlist.Size {
			return Share{}, rejectf(ErrInvalidMnemonic, "word %d has index %d", i+1, idx)
		}
	}
	if !rs1024.Verify(indices) {
		return Share{}, rejectf(ErrChecksumMismatch, "verify %d-word mnemonic", len(indices))
	}

	// Re-pack the words so we can read the fields back at byte granularity.
	w := bitstream.NewWriter()
	for i, idx := range indices {
		if err := w.Write(uint64(idx), radixBits); err != nil {
			return Share{}, rejectf(ErrInvalidMnemonic, "pack word %d: %v", i+1, err)
		}
	}
	data, err := w.Flush()
	if err != nil {
		return Share{}, rejectf(ErrInvalidMnemonic, "pack words: %v", err)
	}
	r := bitstream.NewReader(data)

	var s Share
	id, err := r.Read(idBits)
	if err != nil {
		return Share{}, rejectf(ErrInvalidMnemonic, "read id: %v", err)
	}
	s.ID = uint16(id)
	for _, field := range prefixFields {
		value, err := r.Read(field.bits)
		if err != nil {
			return Share{}, rejectf(ErrInvalidMnemonic, "read %s: %v", field.name, err)
		}
		*field.ptr(&s) = uint8(value) + field.minus
	}

	// The value is left-padded up to a whole number of words. The padding is
	// always less than a byte, and must be zero.
	valueBits := uint(len(indices)-MinWords) * radixBits
	if padding := valueBits % 8; padding > 0 {
		bits, err := r.Read(padding)
		if err != nil {
			return Share{}, rejectf(ErrInvalidMnemonic, "read value padding: %v", err)
		}
		if bits != 0 {
			return Share{}, rejectf(ErrInvalidMnemonic, "value padding is non-zero")
		}
	}
	s.Value = make([]byte, valueBits/8)
	for i := range s.Value {
		b, err := r.Read(8)
		if err != nil {
			return Share{}, rejectf(ErrInvalidMnemonic, "read value byte %d: %v", i, err)
		}
		s.Value[i] = byte(b)
	}
	return s, nil
}

// FromMnemonic decodes a share from its mnemonic. Words are separated by any
// amount of whitespace. If a word is not in the wordlist, ErrUnknownWord is
// returned. If the checksum does not match, ErrChecksumMismatch is returned.
// Any other malformed mnemonic results in ErrInvalidMnemonic.
func FromMnemonic(mnemonic string) (Share, error) {
	indices, err := ParseWordIndices(mnemonic)
	if err != nil {
		return Share{}, err
	}
	return FromWordIndices(indices)
}
