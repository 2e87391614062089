package buffer

import (
	"github.com/wafula/bufcache/storage/disk"
)

func newPageTable() pageTable {
	return make(pageTable)
}

// get reports where a page is resident. A miss is ordinary control
// flow, not an error; callers redirect to the load path.
func (t pageTable) get(file disk.File, pageNo disk.PageID) (int, bool) {
	frame, ok := t[pageKey{file, pageNo}]
	return frame, ok
}

func (t pageTable) put(file disk.File, pageNo disk.PageID, frame int) {
	t[pageKey{file, pageNo}] = frame
}

func (t pageTable) remove(file disk.File, pageNo disk.PageID) {
	delete(t, pageKey{file, pageNo})
}

// pageKey names a resident page. Files are compared by identity, not
// by name.
type pageKey struct {
	file   disk.File
	pageNo disk.PageID
}

// pageTable maps a page's on-disk identity to its frame index. An
// entry lives exactly as long as the page is resident.
type pageTable map[pageKey]int
