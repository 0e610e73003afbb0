// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package crypt seals and unseals dataset files. A sealed file (.enc) is a
// JSON envelope holding PBKDF2-SHA512 key parameters and an AES-256-GCM
// payload. Seal writes the envelope, Unseal reads it, and Passphrase
// resolves the passphrase from the --passphrase flag, PLSSCTL_PASSPHRASE,
// or an interactive prompt.
package crypt
