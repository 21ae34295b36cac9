/*
 * tables.go, part of molmass.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Package tables reads and writes reference tables of atomic weights.
//
// A table file has one element per line: weight, symbol and name, separated
// by whitespace. Blank lines and lines starting with '#' are ignored.
// Files ending in .gz are gzip-compressed, files ending in .zst are zstd-compressed,
// anything else is plain text.
package tables

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/rmera/molmass"
)

type options struct {
	logger  *zap.Logger
	lenient bool
	name    string
}

// Option changes how a table is read.
type Option func(*options)

// WithLogger sets the logger used to report skipped lines. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Lenient makes the reader skip malformed lines (with a warning) instead of failing.
func Lenient() Option {
	return func(o *options) { o.lenient = true }
}

// WithName sets the name used for the source in errors and logs.
// Open sets it to the file name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func getOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop(), name: "<input>"}
	for _, f := range opts {
		f(o)
	}
	return o
}

// Open reads the table in the file name, decompressing it if needed.
func Open(name string, opts ...Option) ([]molmass.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"decompressor", "Open"}, true}
	}
	defer r.Close()
	recs, err := Read(r, append([]Option{WithName(name)}, opts...)...)
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	return recs, nil
}

// Read reads a plain-text table from r.
func Read(r io.Reader, opts ...Option) ([]molmass.Record, error) {
	o := getOptions(opts)
	var recs []molmass.Record
	sc := bufio.NewScanner(r)
	lineno := 0
	skipped := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			if !o.lenient {
				return nil, &Error{fmt.Sprintf("%s line %d: %s", MalformedLine, lineno, err.Error()), o.name, []string{"Read"}, true}
			}
			skipped++
			o.logger.Warn("Skipping malformed line", zap.String("table", o.name), zap.Int("line", lineno), zap.Error(err))
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{ReadError + ": " + err.Error(), o.name, []string{"Read"}, true}
	}
	o.logger.Debug("Read table", zap.String("table", o.name), zap.Int("records", len(recs)), zap.Int("skipped", skipped))
	if len(recs) == 0 {
		return nil, &molmass.EmptyTableError{Source: o.name}
	}
	return recs, nil
}

// ParseLine parses one "weight symbol name" line. Anything after
// the name is ignored, the same as with the plain "%f %s %s" format.
func ParseLine(line string) (molmass.Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return molmass.Record{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	w, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return molmass.Record{}, fmt.Errorf("bad weight %q: %w", fields[0], err)
	}
	if !(w > 0) || math.IsInf(w, 1) {
		return molmass.Record{}, fmt.Errorf("weight must be positive, got %v", w)
	}
	if !ValidSymbol(fields[1]) {
		return molmass.Record{}, fmt.Errorf("bad symbol %q", fields[1])
	}
	return molmass.Record{Weight: w, Symbol: fields[1], Name: fields[2]}, nil
}

// ValidSymbol returns true if s is an uppercase ASCII letter, optionally
// followed by a lowercase one. Only such symbols can ever come out of
// molmass.Tokenize.
func ValidSymbol(s string) bool {
	switch len(s) {
	case 1:
		return s[0] >= 'A' && s[0] <= 'Z'
	case 2:
		return s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'a' && s[1] <= 'z'
	}
	return false
}

// Write writes records to the file name, compressed according
// to its extension.
func Write(name string, records []molmass.Record) error {
	f, err := os.Create(name)
	if err != nil {
		return &Error{UnableToOpen + ": " + err.Error(), name, []string{"Write"}, true}
	}
	w, err := compressor(name, f)
	if err != nil {
		f.Close()
		return &Error{err.Error(), name, []string{"compressor", "Write"}, true}
	}
	if err := WriteTo(w, records); err != nil {
		w.Close()
		f.Close()
		return &Error{err.Error(), name, []string{"WriteTo", "Write"}, true}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return &Error{err.Error(), name, []string{"Write"}, true}
	}
	return f.Close()
}

// WriteTo writes records as plain text to w.
func WriteTo(w io.Writer, records []molmass.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%-10s %-3s %s\n", strconv.FormatFloat(r.Weight, 'f', -1, 64), r.Symbol, r.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// zstd.Decoder's Close returns nothing, so it is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case strings.HasSuffix(name, ".zst"):
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopCloser{w}, nil
}

//Errors

// Error is the error type for problems reading or writing table files.
// It implements molmass.Error.
type Error struct {
	message  string
	filename string //the file with problems, or empty if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("table file %s error: %s", err.filename, err.message)
}

// Decorate adds dec to the error's call trail and returns the trail.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// FileName returns the file the error refers to.
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the table could not be read at all.
func (err *Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	ReadError     = "Error reading table"
	MalformedLine = "malformed"
)

func errDecorate(err error, caller string) error {
	if err2, ok := err.(molmass.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
