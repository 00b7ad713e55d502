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

package slip39

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// encodeBytes returns a JSON-safe string encoding of the given bytes.
func encodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// decodeBytes returns the bytes associated with the encoded value given,
// matching the format given by encodeBytes.
func decodeBytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode bytes")
	}
	return b, nil
}

// valuePaddingBits returns the number of zero bits prepended to a value of the
// given byte length so that it fills a whole number of words.
func valuePaddingBits(size int) uint {
	bits := 8 * uint(size)
	return (radixBits - bits%radixBits) % radixBits
}
