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
	"encoding/hex"
	"io"
	"math/rand"
	"time"
)

// rng is the global random number generator used for all non-important RNG
// operations in our tests.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// mustRandomBytes returns a slice of random bytes of the given size.
func mustRandomBytes(size uint) []byte {
	bytes := make([]byte, size)
	if _, err := io.ReadFull(rng, bytes); err != nil {
		panic(err)
	}
	return bytes
}

// mustHex decodes a hex string, panicking on failure.
func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// randomShare returns a random share with a value of the given size.
func randomShare(valueSize uint) Share {
	return Share{
		ID:                uint16(rng.Intn(MaxID + 1)),
		IterationExponent: uint8(rng.Intn(MaxIterationExponent + 1)),
		GroupIndex:        uint8(rng.Intn(MaxIndex + 1)),
		GroupThreshold:    uint8(1 + rng.Intn(MaxThreshold)),
		GroupCount:        uint8(1 + rng.Intn(MaxThreshold)),
		MemberIndex:       uint8(rng.Intn(MaxIndex + 1)),
		MemberThreshold:   uint8(1 + rng.Intn(MaxThreshold)),
		Value:             mustRandomBytes(valueSize),
	}
}

// shareVector is a share along with its expected mnemonic.
type shareVector struct {
	name     string
	share    Share
	mnemonic string
}

// shareVectors is the set of known-good share encodings.
var shareVectors = []shareVector{
	{
		name: "slip39-128bit",
		share: Share{
			ID:              7945,
			GroupThreshold:  1,
			GroupCount:      1,
			MemberThreshold: 1,
			Value:           mustHex("11bc609d21747c49ba78c0701293e417"),
		},
		mnemonic: "duckling enlarge academic academic agency result length solution fridge kidney coal piece deal husband erode duke ajar critical decision keyboard",
	},
	{
		name: "max-fields",
		share: Share{
			ID:                0x5a5a,
			IterationExponent: 31,
			GroupIndex:        15,
			GroupThreshold:    16,
			GroupCount:        16,
			MemberIndex:       15,
			MemberThreshold:   16,
			Value:             mustHex("0123456789"),
		},
		mnemonic: "radar station zero zero acrobat marvel firm terminal observe roster avoid",
	},
	{
		name: "mixed-fields",
		share: Share{
			ID:                21219,
			IterationExponent: 4,
			GroupIndex:        2,
			GroupThreshold:    3,
			GroupCount:        5,
			MemberIndex:       7,
			MemberThreshold:   9,
			Value:             mustHex("00ff00ff00ff00ff00ff"),
		},
		mnemonic: "phantom broken chemical capital acquire wisdom award romp yelp afraid upgrade easel increase rescue depend",
	},
	{
		name: "empty-min",
		share: Share{
			GroupThreshold:  1,
			GroupCount:      1,
			MemberThreshold: 1,
			Value:           []byte{},
		},
		mnemonic: "academic academic academic academic inmate engage cleanup",
	},
	{
		name: "empty-max",
		share: Share{
			ID:                MaxID,
			IterationExponent: MaxIterationExponent,
			GroupIndex:        MaxIndex,
			GroupThreshold:    MaxThreshold,
			GroupCount:        MaxThreshold,
			MemberIndex:       MaxIndex,
			MemberThreshold:   MaxThreshold,
			Value:             []byte{},
		},
		mnemonic: "zero zero zero zero sunlight vocal practice",
	},
}
