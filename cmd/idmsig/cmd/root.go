// Copyright (C) 2025 SAGE-X Project
//
// This file is part of idm-signatures.
//
// idm-signatures is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// idm-signatures is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with idm-signatures.  If not, see <https://www.gnu.org/licenses/>.

// Package cmd implements the idmsig CLI commands.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	idmsignatures "github.com/sage-x-project/idm-signatures"
	"github.com/sage-x-project/idm-signatures/pkg/encoder"
)

// ErrSignatureInvalid is returned by verify when the verdict is invalid.
// The verdict itself has already been printed.
var ErrSignatureInvalid = errors.New("signature is invalid")

// stdinPath selects standard input for --data.
const stdinPath = "-"

type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand builds the idmsig command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "idmsig",
		Short: "Sign and verify data with DID-bound secp256k1 keys",
		Long: `idmsig signs data with a secp256k1 key bound to a DID URL and verifies
signature envelopes against DID Documents.

Envelopes are JSON objects {didUrl, keyPath, value, createdAt}. Data is
signed as raw bytes unless --json is given, in which case it is decoded
and canonically re-encoded first.`,
		Version:       idmsignatures.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newSignCmd(opts),
		newVerifyCmd(opts),
		newDeriveCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// readData loads the data to sign or verify from a file or stdin.
func readData(cmd *cobra.Command, path string, asJSON bool) (encoder.Data, error) {
	var (
		raw []byte
		err error
	)
	if path == stdinPath {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return encoder.Data{}, fmt.Errorf("failed to read data: %w", err)
	}

	if !asJSON {
		return encoder.Raw(raw), nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return encoder.Data{}, fmt.Errorf("failed to parse data as JSON: %w", err)
	}
	return encoder.Value(value), nil
}
