// Copyright (c) 2025 The fatlens authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package disk

import (
	"errors"
	"fmt"
	"io"

	"github.com/okaidia/fatlens/internal/logger"
)

// DirScanner reassembles logical directory entries from a region of raw
// 32-byte slots. Long-name fragments are accumulated until the short entry
// terminating the group is seen, then flushed as one LogicalDirEntry.
// The accumulator is local to one Scan call.
type DirScanner struct {
	log *logger.Logger
}

// NewDirScanner returns a scanner reporting recoverable anomalies through
// log. A nil logger disables the warnings.
func NewDirScanner(log *logger.Logger) *DirScanner {
	return &DirScanner{log: log}
}

// Scan reads up to maxEntries slots from r and returns the logical entries
// found. A slot whose first byte is 0x00 ends the directory and stops the
// scan without emitting an entry for that slot. A region shorter than
// maxEntries*DirEntrySize surfaces ErrTruncatedInput together with the
// complete entries decoded before the short read; trailing fragments with
// no terminating short entry are discarded.
func (s *DirScanner) Scan(r io.Reader, maxEntries int) ([]LogicalDirEntry, error) {
	entries := []LogicalDirEntry{}
	var frags []LongNameFragment

	var slot [DirEntrySize]byte
	for i := 0; i < maxEntries; i++ {
		if _, err := io.ReadFull(r, slot[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return entries, fmt.Errorf("%w: directory region ended at slot %d of %d",
					ErrTruncatedInput, i, maxEntries)
			}
			return entries, fmt.Errorf("reading directory slot %d: %w", i, err)
		}

		if slot[0] == endOfDirectory {
			break
		}

		if IsLongNameSlot(slot[:]) {
			frag, _ := DecodeLongNameFragment(slot[:])
			s.checkOrder(&frag, frags, i)
			// Disk order is descending, so prepending keeps the
			// assembled fragment list in left-to-right name order.
			frags = append([]LongNameFragment{frag}, frags...)
			continue
		}

		short, _ := DecodeShortDirEntry(slot[:])
		entries = append(entries, LogicalDirEntry{
			Fragments: frags,
			Short:     short,
			Deleted:   slot[0] == DeletedFlag,
		})
		frags = nil
	}
	return entries, nil
}

// checkOrder warns about fragment sequences that do not descend towards 1.
// The group is still kept: the 8.3 name remains usable as a fallback.
func (s *DirScanner) checkOrder(frag *LongNameFragment, pending []LongNameFragment, slot int) {
	if s.log == nil {
		return
	}
	if len(pending) == 0 {
		if !frag.IsLast() {
			s.log.Warnf("slot %d: first long-name fragment (seq %d) lacks the end-of-sequence flag",
				slot, frag.Seq())
		}
		return
	}
	if prev := &pending[0]; frag.Seq() != prev.Seq()-1 {
		s.log.Warnf("slot %d: long-name fragment seq %d follows seq %d, expected %d",
			slot, frag.Seq(), prev.Seq(), prev.Seq()-1)
	}
}
