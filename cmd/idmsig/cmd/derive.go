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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/keys"
)

func newDeriveCmd(root *rootOptions) *cobra.Command {
	var (
		xkey    string
		path    string
		asPEM   bool
		public  bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a child key from an extended key",
		Long: `Derive the child of an extended key at a BIP32 path.

Prints the child extended key. With --public the extended public key is
printed instead; with --pem the child private key is printed as SEC1 PEM,
ready for "idmsig sign --key".

Examples:
  idmsig derive --xkey xprv9s21... --path m/0/1 --pem > key.pem
  idmsig derive --xkey xprv9s21... --public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			child, err := hdkey.Derive(xkey, path)
			if err != nil {
				return err
			}
			root.logger.Debug("key derived",
				slog.String("path", path),
				slog.Int("depth", child.Depth()),
				slog.Bool("private", child.IsPrivate()))

			out := cmd.OutOrStdout()
			switch {
			case asPEM:
				priv, err := child.PrivateKey()
				if err != nil {
					return err
				}
				pemBytes, err := keys.MarshalSEC1PEM(priv)
				if err != nil {
					return err
				}
				_, err = out.Write(pemBytes)
				return err
			case public:
				fmt.Fprintln(out, child.Neuter().String())
			default:
				fmt.Fprintln(out, child.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xkey, "xkey", "", "Extended private or public key")
	cmd.Flags().StringVar(&path, "path", "m", "Derivation path, e.g. m/0/1")
	cmd.Flags().BoolVar(&asPEM, "pem", false, "Print the child private key as SEC1 PEM")
	cmd.Flags().BoolVar(&public, "public", false, "Print the child extended public key")

	_ = cmd.MarkFlagRequired("xkey")
	cmd.MarkFlagsMutuallyExclusive("pem", "public")

	return cmd
}
