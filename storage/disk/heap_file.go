package disk

import (
	"fmt"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/wafula/bufcache/util"
)

const HEAP_FILE_MAGIC = uint32(0x62756663) // "bufc"

// NewHeapFile wraps an opened database file. Slot 0 holds the header;
// data page n lives at slot n+1. An empty file is initialized in place,
// otherwise the header is restored from disk.
func NewHeapFile(file *os.File) (*HeapFile, error) {
	hf := &HeapFile{
		file:       file,
		nextPageId: 0,
		freePages:  mapset.NewThreadUnsafeSet[PageID](),
	}

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("error reading file info for %s: %v", file.Name(), err)
	}

	if info.Size() == 0 {
		if err := hf.writeHeader(); err != nil {
			return nil, err
		}
		return hf, nil
	}

	if err := hf.readHeader(); err != nil {
		return nil, err
	}
	return hf, nil
}

func (hf *HeapFile) Name() string {
	return hf.file.Name()
}

func (hf *HeapFile) ReadPage(pageNo PageID) (*Page, error) {
	if !hf.allocated(pageNo) {
		return nil, fmt.Errorf("page %d is not allocated in %s", pageNo, hf.Name())
	}

	pg := NewPage(pageNo)
	if _, err := hf.file.ReadAt(pg.Data(), hf.offset(pageNo)); err != nil {
		return nil, fmt.Errorf("error reading page %d: %v", pageNo, err)
	}

	return pg, nil
}

func (hf *HeapFile) WritePage(pg *Page) error {
	if !hf.allocated(pg.ID()) {
		return fmt.Errorf("page %d is not allocated in %s", pg.ID(), hf.Name())
	}

	if _, err := hf.file.WriteAt(pg.Data(), hf.offset(pg.ID())); err != nil {
		return fmt.Errorf("error writing page %d: %v", pg.ID(), err)
	}

	return hf.file.Sync()
}

// AllocatePage hands out a fresh zeroed page, reusing a deleted page's
// number before growing the file.
func (hf *HeapFile) AllocatePage() (*Page, error) {
	id, ok := hf.freePages.Pop()
	if !ok {
		id = hf.nextPageId
		hf.nextPageId++
	}

	pg := NewPage(id)
	if _, err := hf.file.WriteAt(pg.Data(), hf.offset(id)); err != nil {
		return nil, fmt.Errorf("error allocating page %d: %v", id, err)
	}

	if err := hf.writeHeader(); err != nil {
		return nil, err
	}
	return pg, nil
}

func (hf *HeapFile) DeletePage(pageNo PageID) error {
	if !hf.allocated(pageNo) {
		return fmt.Errorf("page %d is not allocated in %s", pageNo, hf.Name())
	}

	hf.freePages.Add(pageNo)
	return hf.writeHeader()
}

func (hf *HeapFile) Close() error {
	if err := hf.writeHeader(); err != nil {
		return err
	}
	return hf.file.Close()
}

func (hf *HeapFile) allocated(pageNo PageID) bool {
	return pageNo >= 0 && pageNo < hf.nextPageId && !hf.freePages.Contains(pageNo)
}

func (hf *HeapFile) offset(pageNo PageID) int64 {
	return int64(pageNo+1) * PAGE_SIZE
}

func (hf *HeapFile) writeHeader() error {
	free := hf.freePages.ToSlice()
	slices.Sort(free)

	hdr := fileHeader{
		Magic:     HEAP_FILE_MAGIC,
		NextPage:  int64(hf.nextPageId),
		FreePages: free,
	}

	buf, err := util.ToByteSlice(hdr, PAGE_SIZE)
	if err != nil {
		return fmt.Errorf("error encoding header for %s: %v", hf.Name(), err)
	}

	if _, err := hf.file.WriteAt(buf, 0); err != nil {
		return fmt.Errorf("error writing header for %s: %v", hf.Name(), err)
	}
	return nil
}

func (hf *HeapFile) readHeader() error {
	buf := make([]byte, PAGE_SIZE)
	if _, err := hf.file.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("error reading header for %s: %v", hf.Name(), err)
	}

	hdr, err := util.ToStruct[fileHeader](buf)
	if err != nil {
		return fmt.Errorf("error decoding header for %s: %v", hf.Name(), err)
	}
	if hdr.Magic != HEAP_FILE_MAGIC {
		return fmt.Errorf("%s is not a heap file", hf.Name())
	}

	hf.nextPageId = PageID(hdr.NextPage)
	hf.freePages = mapset.NewThreadUnsafeSet(hdr.FreePages...)
	return nil
}

type fileHeader struct {
	Magic     uint32
	NextPage  int64
	FreePages []PageID
}

type HeapFile struct {
	file       *os.File
	nextPageId PageID
	freePages  mapset.Set[PageID]
}
