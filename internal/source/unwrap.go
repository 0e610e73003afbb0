// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/urfave/cli/v3"

	"github.com/plssctl/plssctl/internal/crypt"
)

// Unwrap peels ref's wrap layers off data, outermost first. The enc layer
// resolves its passphrase through crypt.Passphrase, so cmd must carry the
// --passphrase flag.
func Unwrap(cmd *cli.Command, ref Ref, data []byte) ([]byte, error) {
	for _, wrap := range ref.Wraps {
		var err error
		switch wrap {
		case "enc":
			var passphrase string
			passphrase, err = crypt.Passphrase(cmd)
			if err == nil {
				data, err = crypt.Unseal(data, passphrase)
			}
		case "gz":
			data, err = ungzip(data)
		case "xz":
			data, err = unxz(data)
		default:
			err = fmt.Errorf("unknown wrap %q", wrap)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap %s layer of %s: %w", wrap, ref.Raw, err)
		}
	}

	return data, nil
}

func ungzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

func unxz(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}
