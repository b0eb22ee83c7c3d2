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

package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/signer"
)

func newSignCmd(root *rootOptions) *cobra.Command {
	var (
		didURL   string
		keyFile  string
		xprv     string
		keyPath  string
		dataPath string
		asJSON   bool
		header   bool
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign data and print the signature envelope",
		Long: `Sign data with a secp256k1 private key and print the envelope.

The key is either a PEM or DER file (--key) whose key path is only recorded,
or an extended private key (--xprv) from which the key at --key-path is
derived.

Examples:
  idmsig sign --did-url did:example:123#key-1 --key key.pem --data body.json
  echo -n hello | idmsig sign --did-url did:example:123#key-1 --xprv xprv9s21... --key-path m/0/1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *signer.DefaultSigner
				err error
			)
			if xprv != "" {
				s, err = signer.NewHDSigner(didURL, xprv, keyPath)
			} else {
				material, readErr := os.ReadFile(keyFile)
				if readErr != nil {
					return fmt.Errorf("failed to read key file: %w", readErr)
				}
				s, err = signer.NewSigner(didURL, material, signer.WithKeyPath(keyPath))
			}
			if err != nil {
				return err
			}

			data, err := readData(cmd, dataPath, asJSON)
			if err != nil {
				return err
			}

			env, err := s.Sign(cmd.Context(), data)
			if err != nil {
				return err
			}
			root.logger.Debug("data signed",
				slog.String("didUrl", env.DIDURL),
				slog.String("keyPath", env.KeyPath),
				slog.Int64("createdAt", env.CreatedAt))

			out := cmd.OutOrStdout()
			if header {
				encoded, err := signature.EncodeHeader(env)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, encoded)
				return nil
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		},
	}

	cmd.Flags().StringVar(&didURL, "did-url", "", "DID URL of the signing key, including the fragment")
	cmd.Flags().StringVar(&keyFile, "key", "", "Private key file (SEC1 or PKCS#8, PEM or DER)")
	cmd.Flags().StringVar(&xprv, "xprv", "", "Extended private key to derive the signing key from")
	cmd.Flags().StringVar(&keyPath, "key-path", signer.DefaultKeyPath, "Key path to record (and derive with --xprv)")
	cmd.Flags().StringVar(&dataPath, "data", stdinPath, "File to sign, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Decode data as JSON and sign its canonical encoding")
	cmd.Flags().BoolVar(&header, "header", false, "Print the envelope in Idm-Signature header form")

	_ = cmd.MarkFlagRequired("did-url")
	cmd.MarkFlagsOneRequired("key", "xprv")
	cmd.MarkFlagsMutuallyExclusive("key", "xprv")

	return cmd
}
