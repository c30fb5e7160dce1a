// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// newLogger returns text logger writing to w with minimum level parsed from level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// errAttr returns error as log attribute.
func errAttr(err error) slog.Attr {
	return slog.String("error", err.Error())
}
