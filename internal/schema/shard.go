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

// Package schema contains the JSON documents used by the papershare tool to
// describe shares.
package schema

import (
	"encoding/json"

	"github.com/cyphar/papershare/internal/version"
	"github.com/cyphar/papershare/pkg/slip39"
	"github.com/pkg/errors"
)

// ShardSchema is the version of the Shard document layout. It is only bumped
// when the layout changes incompatibly, unlike version.Version.
const ShardSchema = 1

// ErrUnknownSchema is returned when a document has a schema version we don't
// know how to read.
var ErrUnknownSchema = errors.New("unknown shard document schema")

// Shard is a wrapped version of slip39.Share, containing the version data for
// the current schema. We don't bother making a "deep" clone of the structure
// here, because we control the slip39 package and so won't accidentally break
// the schema.
type Shard struct {
	Schema  int          `json:"schema"`
	Version string       `json:"version"`
	Inner   slip39.Share `json:"share"`
}

// NewShard constructs a new schema.Shard from a slip39.Share, using the
// default values for all other fields. This is the recommended way of creating
// a new Shard.
func NewShard(share slip39.Share) Shard {
	return Shard{
		Schema:  ShardSchema,
		Version: version.Version,
		Inner:   share,
	}
}

// ShardFromMnemonic decodes the given mnemonic and wraps it in a Shard.
func ShardFromMnemonic(mnemonic string) (Shard, error) {
	share, err := slip39.FromMnemonic(mnemonic)
	if err != nil {
		return Shard{}, err
	}
	return NewShard(share), nil
}

// Mnemonic returns the mnemonic for the share contained in the Shard.
func (s Shard) Mnemonic() (string, error) {
	return s.Inner.Mnemonic()
}

// Marshal returns the indented JSON encoding of the Shard.
func (s Shard) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return nil, errors.Wrap(err, "marshal shard")
	}
	return data, nil
}

// ParseShard unmarshals a Shard document, making sure that we know how to
// read its schema. The share inside is validated by slip39.Share's JSON
// decoder.
func ParseShard(data []byte) (Shard, error) {
	var shard Shard
	if err := json.Unmarshal(data, &shard); err != nil {
		return Shard{}, errors.Wrap(err, "unmarshal shard")
	}
	if shard.Schema != ShardSchema {
		return Shard{}, errors.Wrapf(ErrUnknownSchema, "schema %d", shard.Schema)
	}
	return shard, nil
}
