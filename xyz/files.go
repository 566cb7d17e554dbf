/*
 * files.go, part of chemrec.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package xyz

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/chemrec"
	"go.uber.org/zap"
)

// The compression is chosen from the extension of the file name.
const (
	extGzip  = ".gz"
	extZstd  = ".zst"
	extFlate = ".flate"
)

// nopWriteCloser is used for plain files, where closing the file is enough.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// zstd.Decoder's Close doesn't return an error, so it isn't an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case extGzip:
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case extZstd:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case extFlate:
		return flate.NewWriter(f, flate.BestCompression)
	default:
		return nopWriteCloser{f}, nil
	}
}

func newReader(name string, f io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case extGzip:
		return gzip.NewReader(f)
	case extZstd:
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case extFlate:
		return flate.NewReader(f), nil
	default:
		return io.NopCloser(f), nil
	}
}

// WriteFile writes mol to the XYZ file name, creating or truncating it.
// Names ending in .gz, .zst or .flate are compressed accordingly.
func WriteFile(name string, mol chem.Atomer, comment string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w, err := newWriter(name, f)
	if err != nil {
		return err
	}
	if err = Write(w, mol, comment); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// ReadFile reads the XYZ file name, decompressing it if its extension asks for it.
func ReadFile(name string, b chem.Builder, logger ...*zap.Logger) (chem.Atoms, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	r, err := newReader(name, f)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()
	return Read(r, b, logger...)
}
