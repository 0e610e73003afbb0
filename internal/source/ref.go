// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"path/filepath"
	"strings"
)

// Known payload formats. Text is the fallback for anything the extension
// map doesn't recognize.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatText = "text"
)

// overrideFormats maps @suffix spellings to formats.
var overrideFormats = map[string]string{
	"csv":  FormatCSV,
	"json": FormatJSON,
	"xml":  FormatXML,
	"txt":  FormatText,
	"text": FormatText,
}

// Ref is a classified dataset argument: where the document lives, what
// layers wrap it, and what format the payload is.
type Ref struct {
	Raw    string   // argument as given
	Path   string   // fetch path or URI, @override stripped
	Scheme string   // stdin, s3 or local
	Format string   // csv, json, xml or text
	Wraps  []string // unwrap order, outermost first: enc, gz, xz
}

// ParseRef classifies a dataset argument. A trailing @csv/@json/@xml/@txt
// pins the format regardless of extension (data.bin@csv). Wrap extensions
// peel right to left, so leases.csv.gz.enc unseals, then gunzips, then
// reads CSV.
func ParseRef(raw string) Ref {
	ref := Ref{Raw: raw, Path: raw}

	var override string
	if at := strings.LastIndex(raw, "@"); at >= 0 {
		if f, ok := overrideFormats[strings.ToLower(raw[at+1:])]; ok {
			override = f
			ref.Path = raw[:at]
		}
	}

	switch {
	case ref.Path == "-":
		ref.Scheme = "stdin"
	case strings.HasPrefix(ref.Path, "s3://"):
		ref.Scheme = "s3"
	default:
		ref.Scheme = "local"
	}

	name := ref.Path
	for {
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".enc" && ext != ".gz" && ext != ".xz" {
			break
		}
		ref.Wraps = append(ref.Wraps, ext[1:])
		name = name[:len(name)-len(ext)]
	}

	if override != "" {
		ref.Format = override
		return ref
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		ref.Format = FormatCSV
	case ".json":
		ref.Format = FormatJSON
	case ".xml":
		ref.Format = FormatXML
	default:
		ref.Format = FormatText
	}

	return ref
}
