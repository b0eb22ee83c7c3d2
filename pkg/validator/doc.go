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

// Package validator holds the structural and semantic checks applied to
// DID URLs, signature envelopes and key algorithm descriptors.
//
// Every function is pure and reports failures as *signature.Error values:
//
//   - ValidateSignatureShape / ParseSignature: CodeInvalidSignatureShape
//   - ValidateDIDURL: CodeInvalidDIDURL
//   - ValidateKeyAlgorithm: CodeInvalidPrivateKey
package validator
