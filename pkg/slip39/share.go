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
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Bit widths of the share prefix fields.
const (
	idBits                = 15
	iterationExponentBits = 5
	indexBits             = 4
)

// Limits on the share prefix fields. Thresholds and counts are stored as
// (value-1), so they can range over [1, MaxThreshold].
const (
	MaxID                = 1<<idBits - 1
	MaxIterationExponent = 1<<iterationExponentBits - 1
	MaxIndex             = 1<<indexBits - 1
	MaxThreshold         = 1 << indexBits
)

// Share is a single SLIP-0039 share. Aside from Value, all of the fields are
// metadata describing which secret the share belongs to and how it can be
// combined with other shares. The zero value is not a valid Share, because all
// thresholds and counts must be at least 1.
type Share struct {
	// ID is a random identifier shared by all shares of a secret.
	ID uint16
	// IterationExponent is the exponent of the key derivation iteration
	// count used to encrypt the master secret.
	IterationExponent uint8
	// GroupIndex is the index of the group this share belongs to.
	GroupIndex uint8
	// GroupThreshold is the number of groups required to reconstruct the
	// master secret.
	GroupThreshold uint8
	// GroupCount is the total number of groups.
	GroupCount uint8
	// MemberIndex is the index of this share within its group.
	MemberIndex uint8
	// MemberThreshold is the number of member shares required to
	// reconstruct the group secret.
	MemberThreshold uint8
	// Value is the share value.
	Value []byte
}

func checkThreshold(name string, value uint8) error {
	if value < 1 || value > MaxThreshold {
		return errors.Wrapf(ErrInvalidShare, "%s %d must be in [1, %d]", name, value, MaxThreshold)
	}
	return nil
}

// Validate returns whether every field of the share can be represented in a
// mnemonic. It doesn't check the fields against each other (a group threshold
// greater than the group count is still a valid encoding).
func (s Share) Validate() error {
	if s.ID > MaxID {
		return errors.Wrapf(ErrInvalidShare, "id %d must be at most %d", s.ID, MaxID)
	}
	if s.IterationExponent > MaxIterationExponent {
		return errors.Wrapf(ErrInvalidShare, "iteration exponent %d must be at most %d", s.IterationExponent, MaxIterationExponent)
	}
	if s.GroupIndex > MaxIndex {
		return errors.Wrapf(ErrInvalidShare, "group index %d must be at most %d", s.GroupIndex, MaxIndex)
	}
	if s.MemberIndex > MaxIndex {
		return errors.Wrapf(ErrInvalidShare, "member index %d must be at most %d", s.MemberIndex, MaxIndex)
	}
	if err := checkThreshold("group threshold", s.GroupThreshold); err != nil {
		return err
	}
	if err := checkThreshold("group count", s.GroupCount); err != nil {
		return err
	}
	if err := checkThreshold("member threshold", s.MemberThreshold); err != nil {
		return err
	}
	// A value which needs a full byte of padding has the same number of
	// words as a value one byte longer, so it can't be decoded unambiguously.
	if valuePaddingBits(len(s.Value)) >= 8 {
		return errors.Wrapf(ErrInvalidShare, "value length %d bytes cannot be encoded (length must not be 4 mod 5)", len(s.Value))
	}
	return nil
}

// Equal returns whether other is equal to the given Share. A nil Value is
// equal to an empty one.
func (s Share) Equal(other Share) bool {
	return s.ID == other.ID &&
		s.IterationExponent == other.IterationExponent &&
		s.GroupIndex == other.GroupIndex &&
		s.GroupThreshold == other.GroupThreshold &&
		s.GroupCount == other.GroupCount &&
		s.MemberIndex == other.MemberIndex &&
		s.MemberThreshold == other.MemberThreshold &&
		bytes.Equal(s.Value, other.Value)
}

// Make sure that Share can be serialised and deserialised.
var _ json.Marshaler = Share{}
var _ json.Unmarshaler = &Share{}

// wireShare is the wire format for the share structure. The value is stored
// base64-encoded, and the field names match the SLIP-0039 terminology.
type wireShare struct {
	ID                uint16 `json:"id"`
	IterationExponent uint8  `json:"iteration_exponent"`
	GroupIndex        uint8  `json:"group_index"`
	GroupThreshold    uint8  `json:"group_threshold"`
	GroupCount        uint8  `json:"group_count"`
	MemberIndex       uint8  `json:"member_index"`
	MemberThreshold   uint8  `json:"member_threshold"`
	Value             string `json:"value"`
}

// toWireShare converts a Share to the wire format structure. This is lossless.
func (s Share) toWireShare() wireShare {
	return wireShare{
		ID:                s.ID,
		IterationExponent: s.IterationExponent,
		GroupIndex:        s.GroupIndex,
		GroupThreshold:    s.GroupThreshold,
		GroupCount:        s.GroupCount,
		MemberIndex:       s.MemberIndex,
		MemberThreshold:   s.MemberThreshold,
		Value:             encodeBytes(s.Value),
	}
}

// toShare converts a wireShare to the exported Share structure, and makes
// sure that the result is a valid share.
func (ws wireShare) toShare() (Share, error) {
	value, err := decodeBytes(ws.Value)
	if err != nil {
		return Share{}, err
	}
	s := Share{
		ID:                ws.ID,
		IterationExponent: ws.IterationExponent,
		GroupIndex:        ws.GroupIndex,
		GroupThreshold:    ws.GroupThreshold,
		GroupCount:        ws.GroupCount,
		MemberIndex:       ws.MemberIndex,
		MemberThreshold:   ws.MemberThreshold,
		Value:             value,
	}
	if err := s.Validate(); err != nil {
		return Share{}, err
	}
	return s, nil
}

// MarshalJSON returns the JSON encoding of the share.
func (s Share) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toWireShare())
}

// UnmarshalJSON fills the share with the given data.
func (s *Share) UnmarshalJSON(data []byte) error {
	var ws wireShare
	if err := json.Unmarshal(data, &ws); err != nil {
		return errors.Wrap(err, "unmarshal wire share")
	}
	newS, err := ws.toShare()
	if err != nil {
		return errors.Wrap(err, "convert from wire share")
	}
	*s = newS
	return nil
}
