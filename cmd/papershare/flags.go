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
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var logJSONFlag = &cli.BoolFlag{
	Name:    "log-json",
	Value:   false,
	Usage:   "log in JSON format",
	EnvVars: []string{"PAPERSHARE_LOG_JSON"},
}

var logDebugFlag = &cli.BoolFlag{
	Name:    "log-debug",
	Value:   false,
	Usage:   "log debug messages",
	EnvVars: []string{"PAPERSHARE_LOG_DEBUG"},
}

var logUIDFlag = &cli.BoolFlag{
	Name:    "log-uid",
	Value:   false,
	Usage:   "generate a uuid and add to all log messages",
	EnvVars: []string{"PAPERSHARE_LOG_UID"},
}

var commonFlags = []cli.Flag{
	logJSONFlag,
	logDebugFlag,
	logUIDFlag,
}

// loggerKey is the App.Metadata key holding the *zap.Logger.
const loggerKey = "logger"

// setupLogger builds the logger described by the logging flags. Logs always
// go to stderr, so they never get mixed up with mnemonics on stdout.
func setupLogger(cCtx *cli.Context) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !cCtx.Bool(logJSONFlag.Name) {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if cCtx.Bool(logDebugFlag.Name) {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	if cCtx.Bool(logUIDFlag.Name) {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With(zap.String("uid", id.String()))
	}
	return logger, nil
}

// getLogger returns the logger configured by the app's Before hook.
func getLogger(cCtx *cli.Context) *zap.Logger {
	if logger, ok := cCtx.App.Metadata[loggerKey].(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
