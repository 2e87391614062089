package buffer

import (
	"github.com/wafula/bufcache/util"
)

// newClockReplacer shares the manager's descriptor slice and page
// table. The hand starts on the last frame so the first advance lands
// on frame 0.
func newClockReplacer(frames []frameDesc, table pageTable) *clockReplacer {
	return &clockReplacer{
		frames: frames,
		table:  table,
		hand:   len(frames) - 1,
	}
}

func (c *clockReplacer) advance() {
	if c.hand == len(c.frames)-1 {
		c.hand = 0
	} else {
		c.hand++
	}
}

// selectVictim scans for a frame that can hold a new page. An invalid
// frame is usable immediately. A set reference bit buys the frame one
// more sweep; a pinned frame is skipped. A dirty victim is handed to
// writeBack before its page table entry is removed and its descriptor
// cleared.
//
// The scan is bounded at two sweeps: the first may only clear
// reference bits, the second then guarantees progress, and if even
// that finds nothing every frame is pinned.
func (c *clockReplacer) selectVictim(writeBack func(frame int) error) (int, error) {
	limit := 2 * len(c.frames)
	for count := 0; count < limit; count++ {
		c.advance()

		fd := &c.frames[c.hand]
		if !fd.valid {
			fd.clear()
			return c.hand, nil
		}
		if fd.referenced {
			fd.referenced = false
			continue
		}
		if fd.pinCount != 0 {
			continue
		}

		if fd.dirty {
			if err := writeBack(c.hand); err != nil {
				return -1, err
			}
		}
		c.table.remove(fd.file, fd.pageNo)
		fd.clear()
		return c.hand, nil
	}

	return -1, util.NewBufferError(util.PoolExhausted, "", -1, -1)
}

type clockReplacer struct {
	frames []frameDesc
	table  pageTable
	hand   int
}
