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
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/cyphar/papershare/internal/schema"
	"github.com/cyphar/papershare/pkg/slip39"
	"github.com/cyphar/papershare/pkg/wordlist"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Exit codes used by "papershare check", so scripts can tell why a mnemonic
// was rejected.
const (
	exitUnknownWord      = 2
	exitChecksumMismatch = 3
	exitInvalidMnemonic  = 4
)

// readInput returns the command arguments joined with spaces, or the contents
// of stdin if there are no arguments.
func readInput(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() > 0 {
		return strings.Join(cCtx.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(cCtx.App.Reader)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(data), nil
}

// readFile reads the given path, with "-" meaning stdin.
func readFile(cCtx *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cCtx.App.Reader)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}

// uintField fetches a uint flag, making sure it fits in max. The share itself
// is validated later, this only makes sure we don't silently truncate.
func uintField(cCtx *cli.Context, name string, max uint) (uint, error) {
	value := cCtx.Uint(name)
	if value > max {
		return 0, errors.Errorf("--%s %d is too large", name, value)
	}
	return value, nil
}

func shareFromFlags(cCtx *cli.Context) (slip39.Share, error) {
	var share slip39.Share

	id, err := uintField(cCtx, "id", math.MaxUint16)
	if err != nil {
		return share, err
	}
	share.ID = uint16(id)

	for _, field := range []struct {
		name string
		ptr  *uint8
	}{
		{"iteration-exponent", &share.IterationExponent},
		{"group-index", &share.GroupIndex},
		{"group-threshold", &share.GroupThreshold},
		{"group-count", &share.GroupCount},
		{"member-index", &share.MemberIndex},
		{"member-threshold", &share.MemberThreshold},
	} {
		value, err := uintField(cCtx, field.name, math.MaxUint8)
		if err != nil {
			return share, err
		}
		*field.ptr = uint8(value)
	}

	share.Value, err = hex.DecodeString(strings.TrimSpace(cCtx.String("value")))
	if err != nil {
		return share, errors.Wrap(err, "decode --value")
	}
	return share, nil
}

var encodeCommand = &cli.Command{
	Name:  "encode",
	Usage: "encode a share as a mnemonic",
	Description: `Encodes a share as a SLIP-0039 mnemonic. The share is either given with the
field flags, or as a JSON document (as produced by "papershare decode") with
--json.`,
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "json", Usage: "read the share from a JSON document (- for stdin)"},
		&cli.UintFlag{Name: "id", Usage: "random identifier of the share set (15 bits)"},
		&cli.UintFlag{Name: "iteration-exponent", Usage: "key derivation iteration exponent (5 bits)"},
		&cli.UintFlag{Name: "group-index", Usage: "index of the share's group (0-15)"},
		&cli.UintFlag{Name: "group-threshold", Value: 1, Usage: "number of groups needed (1-16)"},
		&cli.UintFlag{Name: "group-count", Value: 1, Usage: "total number of groups (1-16)"},
		&cli.UintFlag{Name: "member-index", Usage: "index of the share within its group (0-15)"},
		&cli.UintFlag{Name: "member-threshold", Value: 1, Usage: "number of members needed (1-16)"},
		&cli.StringFlag{Name: "value", Usage: "hex-encoded share value"},
	},
	Action: func(cCtx *cli.Context) error {
		log := getLogger(cCtx)

		var share slip39.Share
		if path := cCtx.String("json"); path != "" {
			data, err := readFile(cCtx, path)
			if err != nil {
				return err
			}
			shard, err := schema.ParseShard(data)
			if err != nil {
				return err
			}
			log.Debug("read shard document",
				zap.String("path", path),
				zap.String("version", shard.Version))
			share = shard.Inner
		} else {
			var err error
			share, err = shareFromFlags(cCtx)
			if err != nil {
				return err
			}
		}

		mnemonic, err := share.Mnemonic()
		if err != nil {
			return errors.Wrap(err, "encode share")
		}
		log.Debug("encoded share",
			zap.Uint16("id", share.ID),
			zap.Uint8("group_index", share.GroupIndex),
			zap.Uint8("member_index", share.MemberIndex),
			zap.Int("words", len(strings.Fields(mnemonic))))
		fmt.Fprintln(cCtx.App.Writer, mnemonic)
		return nil
	},
}

var decodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "decode a mnemonic into a JSON share document",
	ArgsUsage: "[WORD...]",
	Description: `Decodes a SLIP-0039 mnemonic (given as arguments, or read from stdin) and
prints the share as a JSON document.`,
	Action: func(cCtx *cli.Context) error {
		mnemonic, err := readInput(cCtx)
		if err != nil {
			return err
		}
		shard, err := schema.ShardFromMnemonic(mnemonic)
		if err != nil {
			return errors.Wrap(err, "decode mnemonic")
		}
		data, err := shard.Marshal()
		if err != nil {
			return err
		}
		getLogger(cCtx).Debug("decoded share",
			zap.Uint16("id", shard.Inner.ID),
			zap.Int("value_size", len(shard.Inner.Value)))
		fmt.Fprintln(cCtx.App.Writer, string(data))
		return nil
	},
}

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "check whether a mnemonic is valid",
	ArgsUsage: "[WORD...]",
	Description: `Checks a SLIP-0039 mnemonic (given as arguments, or read from stdin). The exit
code says why the mnemonic was rejected: 2 for a word which isn't in the
wordlist (a typo), 3 for a checksum mismatch (transcription error or
tampering), and 4 for any other malformed mnemonic.`,
	Action: func(cCtx *cli.Context) error {
		mnemonic, err := readInput(cCtx)
		if err != nil {
			return err
		}
		_, err = slip39.FromMnemonic(mnemonic)
		switch {
		case err == nil:
			fmt.Fprintln(cCtx.App.Writer, "ok")
			return nil
		case errors.Is(err, slip39.ErrUnknownWord):
			return cli.Exit(fmt.Sprintf("unknown word, check the spelling: %v", err), exitUnknownWord)
		case errors.Is(err, slip39.ErrChecksumMismatch):
			return cli.Exit("checksum mismatch: the mnemonic was transcribed incorrectly or has been tampered with", exitChecksumMismatch)
		case errors.Is(err, slip39.ErrInvalidMnemonic):
			return cli.Exit(fmt.Sprintf("invalid mnemonic: %v", err), exitInvalidMnemonic)
		default:
			return err
		}
	},
}

var completeCommand = &cli.Command{
	Name:      "complete",
	Usage:     "complete word prefixes to full wordlist words",
	ArgsUsage: "PREFIX...",
	Description: fmt.Sprintf(`Prints the wordlist word for each prefix given. Every word is uniquely
identified by its first %d letters, so this can be used to expand
abbreviated mnemonics.`, wordlist.UniquePrefixLength),
	Action: func(cCtx *cli.Context) error {
		if cCtx.NArg() == 0 {
			return errors.New("no prefixes given")
		}
		words := make([]string, 0, cCtx.NArg())
		for _, prefix := range cCtx.Args().Slice() {
			word, unique, err := wordlist.Complete(prefix)
			if err != nil {
				return err
			}
			if !unique {
				return errors.Errorf("prefix %q is ambiguous (could be %q)", prefix, word)
			}
			words = append(words, word)
		}
		fmt.Fprintln(cCtx.App.Writer, strings.Join(words, " "))
		return nil
	},
}
