package buffer

import (
	"github.com/wafula/bufcache/storage/disk"
)

// set installs a page into the descriptor with first-access semantics:
// the caller holds the only pin and the reference bit starts set.
func (f *frameDesc) set(file disk.File, pageNo disk.PageID) {
	f.file = file
	f.pageNo = pageNo
	f.pinCount = 1
	f.dirty = false
	f.referenced = true
	f.valid = true
}

// clear resets the descriptor to the free state.
func (f *frameDesc) clear() {
	f.file = nil
	f.pageNo = disk.INVALID_PAGE_ID
	f.pinCount = 0
	f.dirty = false
	f.referenced = false
	f.valid = false
}

// frameDesc is the bookkeeping record for one frame. It owns no page
// data; the pool slot with the same index does.
type frameDesc struct {
	file       disk.File
	pageNo     disk.PageID
	pinCount   int
	dirty      bool
	referenced bool
	valid      bool
}
