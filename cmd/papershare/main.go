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
	"fmt"
	"os"

	"github.com/cyphar/papershare/internal/version"
	"github.com/cyphar/papershare/pkg/slip39"
	"github.com/urfave/cli/v2"
)

const usage = `encode and decode SLIP-0039 share mnemonics

papershare converts a single SLIP-0039 share between its fields (as a JSON
document or command-line flags) and the word mnemonic which is written down on
paper. Mnemonics are protected by a checksum, so transcription errors are
detected when a share is read back.`

func newApp() *cli.App {
	return &cli.App{
		Name:     "papershare",
		Usage:    usage,
		Version:  version.Version,
		Flags:    commonFlags,
		Metadata: map[string]interface{}{},
		Before: func(cCtx *cli.Context) error {
			logger, err := setupLogger(cCtx)
			if err != nil {
				return err
			}
			cCtx.App.Metadata[loggerKey] = logger
			slip39.SetLogger(logger.Named("slip39"))
			return nil
		},
		After: func(cCtx *cli.Context) error {
			// Syncing stderr fails on some platforms, which isn't worth
			// reporting.
			_ = getLogger(cCtx).Sync()
			return nil
		},
		Commands: []*cli.Command{
			encodeCommand,
			decodeCommand,
			checkCommand,
			completeCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "papershare: %v\n", err)
		os.Exit(1)
	}
}
