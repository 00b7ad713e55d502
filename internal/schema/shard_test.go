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

package schema

import (
	"encoding/json"
	"testing"

	"github.com/cyphar/papershare/internal/version"
	"github.com/cyphar/papershare/pkg/slip39"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "radar station zero zero acrobat marvel firm terminal observe roster avoid"

func TestShardFromMnemonic(t *testing.T) {
	shard, err := ShardFromMnemonic(testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, ShardSchema, shard.Schema)
	assert.Equal(t, version.Version, shard.Version)
	assert.Equal(t, uint16(0x5a5a), shard.Inner.ID)

	mnemonic, err := shard.Mnemonic()
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestShardFromMnemonicInvalid(t *testing.T) {
	_, err := ShardFromMnemonic("radar station zero zero acrobat marvel firm terminal observe roster roster")
	assert.True(t, errors.Is(err, slip39.ErrChecksumMismatch), "unexpected error: %v", err)
}

func TestShardRoundTrip(t *testing.T) {
	shard, err := ShardFromMnemonic(testMnemonic)
	require.NoError(t, err)

	data, err := shard.Marshal()
	require.NoError(t, err)

	newShard, err := ParseShard(data)
	require.NoError(t, err)
	assert.Equal(t, shard.Schema, newShard.Schema)
	assert.Equal(t, shard.Version, newShard.Version)
	assert.True(t, shard.Inner.Equal(newShard.Inner))
}

func TestParseShardUnknownSchema(t *testing.T) {
	shard, err := ShardFromMnemonic(testMnemonic)
	require.NoError(t, err)
	shard.Schema = ShardSchema + 1

	data, err := json.Marshal(shard)
	require.NoError(t, err)
	_, err = ParseShard(data)
	assert.True(t, errors.Is(err, ErrUnknownSchema), "unexpected error: %v", err)
}

func TestParseShardInvalidShare(t *testing.T) {
	data := []byte(`{"schema":1,"version":"x","share":{"id":1,"group_threshold":0,"group_count":1,"member_threshold":1,"value":""}}`)
	_, err := ParseShard(data)
	assert.True(t, errors.Is(err, slip39.ErrInvalidShare), "unexpected error: %v", err)
}
