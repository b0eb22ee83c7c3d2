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

	"github.com/spf13/cobra"

	idmsignatures "github.com/sage-x-project/idm-signatures"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := idmsignatures.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "idmsig %s\n", info.Version)
			fmt.Fprintf(out, "Envelope format: %s\n", info.EnvelopeFormatVersion)
			fmt.Fprintf(out, "Signature algorithm: %s\n", info.SignatureAlgorithm)
			fmt.Fprintf(out, "Data encoding: %s\n", info.DataEncoding)
		},
	}
}
