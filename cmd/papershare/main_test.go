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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyphar/papershare/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const (
	testMnemonic     = "duckling enlarge academic academic agency result length solution fridge kidney coal piece deal husband erode duke ajar critical decision keyboard"
	tamperedMnemonic = "duckling enlarge academic academic agency result length solution fridge kidney coal piece deal husband erode duke ajar critical decision kidney"
)

// runApp runs papershare with the given arguments and stdin, returning stdout
// and the error returned by the app.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"papershare"}, args...))
	return stdout.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	exitErr, ok := err.(cli.ExitCoder)
	require.Truef(t, ok, "expected exit error, got %v", err)
	return exitErr.ExitCode()
}

func TestDecodeArgs(t *testing.T) {
	out, err := runApp(t, "", append([]string{"decode"}, strings.Fields(testMnemonic)...)...)
	require.NoError(t, err)

	shard, err := schema.ParseShard([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, uint16(7945), shard.Inner.ID)
	assert.Len(t, shard.Inner.Value, 16)
}

func TestDecodeStdin(t *testing.T) {
	out, err := runApp(t, testMnemonic+"\n", "decode")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 7945`)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := runApp(t, tamperedMnemonic, "decode")
	assert.Error(t, err)
}

func TestEncodeFlags(t *testing.T) {
	out, err := runApp(t, "", "encode",
		"--id", "7945",
		"--value", "11bc609d21747c49ba78c0701293e417")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic+"\n", out)
}

func TestEncodeAllFlags(t *testing.T) {
	out, err := runApp(t, "", "encode",
		"--id", "23130",
		"--iteration-exponent", "31",
		"--group-index", "15",
		"--group-threshold", "16",
		"--group-count", "16",
		"--member-index", "15",
		"--member-threshold", "16",
		"--value", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "radar station zero zero acrobat marvel firm terminal observe roster avoid\n", out)
}

func TestEncodeFlagsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--group-threshold", "0"},
		{"--group-count", "17"},
		{"--member-index", "300"},
		{"--id", "70000"},
		{"--value", "not-hex"},
		{"--value", "00000000"},
	} {
		_, err := runApp(t, "", append([]string{"encode"}, args...)...)
		assert.Errorf(t, err, "encode %v should fail", args)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	decoded, err := runApp(t, testMnemonic, "decode")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "share.json")
	require.NoError(t, os.WriteFile(path, []byte(decoded), 0o600))

	out, err := runApp(t, "", "encode", "--json", path)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic+"\n", out)

	out, err = runApp(t, decoded, "encode", "--json", "-")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic+"\n", out)
}

func TestEncodeJSONMissing(t *testing.T) {
	_, err := runApp(t, "", "encode", "--json", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := runApp(t, testMnemonic, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = runApp(t, tamperedMnemonic, "check")
	assert.Equal(t, exitChecksumMismatch, exitCode(t, err))

	_, err = runApp(t, strings.Replace(testMnemonic, "fridge", "fridgee", 1), "check")
	assert.Equal(t, exitUnknownWord, exitCode(t, err))

	_, err = runApp(t, "academic academic", "check")
	assert.Equal(t, exitInvalidMnemonic, exitCode(t, err))
}

func TestComplete(t *testing.T) {
	out, err := runApp(t, "", "complete", "duck", "enla", "ACAD", "keyb")
	require.NoError(t, err)
	assert.Equal(t, "duckling enlarge academic keyboard\n", out)

	_, err = runApp(t, "", "complete", "ac")
	assert.Error(t, err, "ambiguous prefix")

	_, err = runApp(t, "", "complete", "qqqq")
	assert.Error(t, err, "unknown prefix")

	_, err = runApp(t, "", "complete")
	assert.Error(t, err, "no prefixes")
}

func TestLoggingFlags(t *testing.T) {
	out, err := runApp(t, testMnemonic, "--log-debug", "--log-json", "--log-uid", "check")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}
