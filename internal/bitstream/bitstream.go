/*
 * papershare: SLIP-0039 share mnemonics for paper backups
 * Copyright (C) 2018 Aleksa Sarai <cyphar@cyphar.com>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package bitstream provides MSB-first bit writers and readers over byte
// buffers. It is a thin wrapper around github.com/icza/bitio which tracks how
// many bits are left, so that short reads are reported as ErrStreamExhausted
// rather than whatever the underlying io.Reader decides to return.
package bitstream

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// MaxBits is the largest number of bits that can be written or read by a
// single call.
const MaxBits = 64

// Set of errors returned by this package.
var (
	// ErrStreamExhausted is returned when a read requests more bits than are
	// left unconsumed in the stream.
	ErrStreamExhausted = errors.New("bit stream exhausted")

	// ErrBadBitCount is returned when a read or write is requested for zero
	// bits, or more than MaxBits bits.
	ErrBadBitCount = errors.New("bit count must be between 1 and 64")

	// ErrWriterFlushed is returned when writing to a Writer after Flush.
	ErrWriterFlushed = errors.New("bit stream already flushed")
)

func checkBitCount(n uint) error {
	if n < 1 || n > MaxBits {
		return errors.Wrapf(ErrBadBitCount, "got %d bits", n)
	}
	return nil
}

// Writer appends values MSB-first to an in-memory byte buffer. Partial bytes
// are buffered across calls to Write, and padded with zero bits by Flush.
type Writer struct {
	buf     *bytes.Buffer
	bw      *bitio.Writer
	bits    uint
	flushed bool
}

// NewWriter creates a new empty Writer.
func NewWriter() *Writer {
	buf := new(bytes.Buffer)
	return &Writer{
		buf: buf,
		bw:  bitio.NewWriter(buf),
	}
}

// Write appends the low n bits of value to the stream. Any higher bits of
// value are ignored.
func (w *Writer) Write(value uint64, n uint) error {
	if err := checkBitCount(n); err != nil {
		return err
	}
	if w.flushed {
		return ErrWriterFlushed
	}
	if n < MaxBits {
		value &= 1<<n - 1
	}
	if err := w.bw.WriteBits(value, uint8(n)); err != nil {
		return errors.Wrapf(err, "write %d bits", n)
	}
	w.bits += n
	return nil
}

// Len returns the number of bits written so far (not including padding).
func (w *Writer) Len() uint {
	return w.bits
}

// Flush pads the final partial byte with zero bits and returns the buffer
// contents. The Writer cannot be written to after it has been flushed, but
// Flush may be called again to get the same bytes.
func (w *Writer) Flush() ([]byte, error) {
	if !w.flushed {
		if err := w.bw.Close(); err != nil {
			return nil, errors.Wrap(err, "flush bit stream")
		}
		w.flushed = true
	}
	return w.buf.Bytes(), nil
}

// Reader consumes values MSB-first from a byte buffer.
type Reader struct {
	br        *bitio.Reader
	remaining uint
}

// NewReader creates a Reader over the given bytes. The slice is not copied,
// and must not be modified while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{
		br:        bitio.NewReader(bytes.NewReader(data)),
		remaining: 8 * uint(len(data)),
	}
}

// Remaining returns the number of bits which have not yet been consumed.
func (r *Reader) Remaining() uint {
	return r.remaining
}

// Read consumes and returns the next n bits. If fewer than n bits remain,
// ErrStreamExhausted is returned and nothing is consumed.
func (r *Reader) Read(n uint) (uint64, error) {
	if err := checkBitCount(n); err != nil {
		return 0, err
	}
	if n > r.remaining {
		return 0, errors.Wrapf(ErrStreamExhausted, "read %d bits with %d left", n, r.remaining)
	}
	value, err := r.br.ReadBits(uint8(n))
	if err != nil {
		return 0, errors.Wrapf(err, "read %d bits", n)
	}
	r.remaining -= n
	return value, nil
}
