// SPDX-License-Identifier: Apache-2.0

package interval

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a digest of the endpoints of i. Equal intervals hash equally,
// and the value is stable across processes.
func (i Interval) Hash() uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(i.start))
	binary.BigEndian.PutUint64(buf[8:], uint64(i.end))
	return xxhash.Sum64(buf[:])
}
