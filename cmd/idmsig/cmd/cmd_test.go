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
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sage-x-project/idm-signatures/internal/testfixtures"
	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func writeDocuments(t *testing.T, dir string) string {
	t.Helper()
	content, err := yaml.Marshal(map[string]any{
		"documents": map[string]*did.Document{testfixtures.DID: testfixtures.Document(t)},
	})
	require.NoError(t, err)
	return writeFile(t, dir, "documents.yaml", content)
}

func TestRootCmd_HelpShowsSubcommands(t *testing.T) {
	result := run(t, "", "--help")

	require.NoError(t, result.err)
	for _, name := range []string{"sign", "verify", "derive", "version"} {
		assert.Contains(t, result.stdout, name)
	}
}

func TestSignVerify_KeyFile(t *testing.T) {
	// Setup
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "key.pem", testfixtures.PrivateKeyPEM(t, "m"))
	dataFile := writeFile(t, dir, "data.txt", []byte("hello"))
	docs := writeDocuments(t, dir)

	// Execute
	signed := run(t, "", "sign", "--did-url", testfixtures.KeyID, "--key", keyFile, "--data", dataFile)
	require.NoError(t, signed.err)
	sigFile := writeFile(t, dir, "sig.json", []byte(signed.stdout))

	valid := run(t, "", "verify", "--documents", docs, "--signature", sigFile, "--data", dataFile)
	invalid := run(t, "goodbye", "verify", "--documents", docs, "--signature", sigFile)

	// Assert
	var env signature.Envelope
	require.NoError(t, json.Unmarshal([]byte(signed.stdout), &env))
	assert.Equal(t, testfixtures.KeyID, env.DIDURL)
	assert.Equal(t, "m", env.KeyPath)

	require.NoError(t, valid.err)
	assert.Contains(t, valid.stdout, "VALID")

	assert.True(t, errors.Is(invalid.err, ErrSignatureInvalid))
	assert.Contains(t, invalid.stdout, "INVALID: Signature mismatch")
}

func TestSignVerify_XprvHeaderStdin(t *testing.T) {
	// Setup
	dir := t.TempDir()
	docs := writeDocuments(t, dir)

	// Execute
	signed := run(t, `{"b":2,"a":1}`, "sign",
		"--did-url", testfixtures.KeyID,
		"--xprv", testfixtures.Xprv(t),
		"--key-path", "m/0/1",
		"--json", "--header")
	require.NoError(t, signed.err)
	sigFile := writeFile(t, dir, "sig.txt", []byte(signed.stdout))

	// Key order differs but the canonical encoding does not
	result := run(t, `{"a":1,"b":2}`, "verify", "--documents", docs, "--signature", sigFile, "--json")

	// Assert
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "VALID")
}

func TestSign_FlagValidation(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "key.pem", testfixtures.PrivateKeyPEM(t, "m"))

	tests := []struct {
		name string
		args []string
	}{
		{"Missing did-url", []string{"sign", "--key", keyFile}},
		{"Missing key", []string{"sign", "--did-url", testfixtures.KeyID}},
		{"Both key and xprv", []string{"sign", "--did-url", testfixtures.KeyID, "--key", keyFile, "--xprv", "xprv"}},
		{"Missing key file", []string{"sign", "--did-url", testfixtures.KeyID, "--key", filepath.Join(dir, "nope.pem")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, "data", tt.args...)
			assert.Error(t, result.err)
		})
	}
}

func TestSign_InvalidDIDURL(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "key.pem", testfixtures.PrivateKeyPEM(t, "m"))

	result := run(t, "data", "sign", "--did-url", testfixtures.DID, "--key", keyFile)

	assert.True(t, errors.Is(result.err, signature.ErrInvalidDIDURL))
}

func TestVerify_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "key.pem", testfixtures.PrivateKeyPEM(t, "m"))
	docs := writeDocuments(t, dir)

	signed := run(t, "hello", "sign", "--did-url", "did:example:123#other", "--key", keyFile)
	require.NoError(t, signed.err)
	sigFile := writeFile(t, dir, "sig.json", []byte(signed.stdout))

	result := run(t, "hello", "verify", "--documents", docs, "--signature", sigFile)

	assert.True(t, errors.Is(result.err, ErrSignatureInvalid))
	assert.Contains(t, result.stdout, "was not found within the DID Document")
}

func TestVerify_UnknownDID(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "key.pem", testfixtures.PrivateKeyPEM(t, "m"))
	docs := writeDocuments(t, dir)

	signed := run(t, "hello", "sign", "--did-url", "did:example:999#key-1", "--key", keyFile)
	require.NoError(t, signed.err)
	sigFile := writeFile(t, dir, "sig.json", []byte(signed.stdout))

	result := run(t, "hello", "verify", "--documents", docs, "--signature", sigFile)

	assert.True(t, errors.Is(result.err, did.ErrNotFound))
}

func TestVerify_VerboseLogsRejection(t *testing.T) {
	dir := t.TempDir()
	docs := writeDocuments(t, dir)
	sigFile := writeFile(t, dir, "sig.json", []byte(`{"didUrl":"did:example:123#key-1","keyPath":"m","value":"AA==","createdAt":1}`))

	result := run(t, "hello", "verify", "--verbose", "--documents", docs, "--signature", sigFile)

	assert.True(t, errors.Is(result.err, ErrSignatureInvalid))
	assert.Contains(t, result.stderr, "signature rejected")
}

func TestDerive(t *testing.T) {
	xprv := testfixtures.Xprv(t)

	child, err := testfixtures.Master(t).Derive("m/0/1")
	require.NoError(t, err)

	t.Run("Extended private key", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", xprv, "--path", "m/0/1")

		require.NoError(t, result.err)
		assert.Equal(t, child.String()+"\n", result.stdout)
	})

	t.Run("Extended public key", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", xprv, "--path", "m/0/1", "--public")

		require.NoError(t, result.err)
		assert.Equal(t, child.Neuter().String()+"\n", result.stdout)
	})

	t.Run("Public derivation from xpub", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", testfixtures.Xpub(t), "--path", "m/0/1")

		require.NoError(t, result.err)
		assert.Equal(t, child.Neuter().String()+"\n", result.stdout)
	})

	t.Run("PEM", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", xprv, "--path", "m/0/1", "--pem")

		require.NoError(t, result.err)
		assert.Equal(t, string(testfixtures.PrivateKeyPEM(t, "m/0/1")), result.stdout)
	})

	t.Run("PEM from xpub fails", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", testfixtures.Xpub(t), "--pem")
		assert.Error(t, result.err)
	})

	t.Run("Hardened from xpub fails", func(t *testing.T) {
		result := run(t, "", "derive", "--xkey", testfixtures.Xpub(t), "--path", "m/0'")
		assert.Error(t, result.err)
	})
}

func TestVersionCmd(t *testing.T) {
	result := run(t, "", "version")

	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "idmsig ")
	assert.Contains(t, result.stdout, "ES256K")
}
