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
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/verifier"
)

var (
	validFmt   = color.New(color.FgGreen, color.Bold).SprintFunc()
	invalidFmt = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var (
		documentsPath string
		signaturePath string
		dataPath      string
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature envelope against DID Documents",
		Long: `Verify a signature envelope over data.

DID Documents are read from a YAML or JSON file:

  documents:
    did:example:123:
      publicKey:
        - id: did:example:123#key-1
          publicExtendedKeyBase58: xpub661MyMwAqRbc...

The signature file holds the JSON envelope or its Idm-Signature header form.
Exits with status 1 when the signature is invalid.

Examples:
  idmsig verify --documents docs.yaml --signature sig.json --data body.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := did.LoadStaticResolver(documentsPath)
			if err != nil {
				return err
			}

			raw, err := readSignature(signaturePath)
			if err != nil {
				return err
			}

			data, err := readData(cmd, dataPath, asJSON)
			if err != nil {
				return err
			}

			v := verifier.NewVerifier(resolver, verifier.WithLogger(root.logger))
			result, err := v.VerifyJSON(cmd.Context(), data, raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Valid {
				fmt.Fprintf(out, "%s: %s\n", invalidFmt("INVALID"), result.Err.Message)
				root.logger.Debug("verification failed",
					slog.String("code", string(result.Err.Code)),
					slog.Any("cause", result.Err.Unwrap()))
				return ErrSignatureInvalid
			}

			fmt.Fprintln(out, validFmt("VALID"))
			return nil
		},
	}

	cmd.Flags().StringVar(&documentsPath, "documents", "", "YAML or JSON file with DID Documents")
	cmd.Flags().StringVar(&signaturePath, "signature", "", "File with the signature envelope")
	cmd.Flags().StringVar(&dataPath, "data", stdinPath, "File with the signed data, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Decode data as JSON and verify its canonical encoding")

	_ = cmd.MarkFlagRequired("documents")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}

// readSignature returns the JSON envelope from a file holding either the
// JSON itself or the header encoding.
func readSignature(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file: %w", err)
	}

	content = bytes.TrimSpace(content)
	if bytes.HasPrefix(content, []byte("{")) {
		return content, nil
	}
	return signature.DecodeHeader(string(content))
}
