package disk

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dsnet/golib/memfile"
)

// NewMemFile returns a memory-backed File. It exists for tests and for
// throwaway databases; nothing survives the process.
func NewMemFile(name string) *MemFile {
	return &MemFile{
		name:      name,
		buf:       memfile.New(make([]byte, 0)),
		freePages: mapset.NewThreadUnsafeSet[PageID](),
	}
}

func (mf *MemFile) Name() string {
	return mf.name
}

func (mf *MemFile) ReadPage(pageNo PageID) (*Page, error) {
	if !mf.allocated(pageNo) {
		return nil, fmt.Errorf("page %d is not allocated in %s", pageNo, mf.name)
	}

	pg := NewPage(pageNo)
	if _, err := mf.buf.ReadAt(pg.Data(), int64(pageNo)*PAGE_SIZE); err != nil {
		return nil, fmt.Errorf("error reading page %d: %v", pageNo, err)
	}

	mf.readCount++
	return pg, nil
}

func (mf *MemFile) WritePage(pg *Page) error {
	if !mf.allocated(pg.ID()) {
		return fmt.Errorf("page %d is not allocated in %s", pg.ID(), mf.name)
	}

	if _, err := mf.buf.WriteAt(pg.Data(), int64(pg.ID())*PAGE_SIZE); err != nil {
		return fmt.Errorf("error writing page %d: %v", pg.ID(), err)
	}

	mf.writeCount++
	return nil
}

func (mf *MemFile) AllocatePage() (*Page, error) {
	id, ok := mf.freePages.Pop()
	if !ok {
		id = mf.nextPageId
		mf.nextPageId++
	}

	pg := NewPage(id)
	if _, err := mf.buf.WriteAt(pg.Data(), int64(id)*PAGE_SIZE); err != nil {
		return nil, fmt.Errorf("error allocating page %d: %v", id, err)
	}

	return pg, nil
}

func (mf *MemFile) DeletePage(pageNo PageID) error {
	if !mf.allocated(pageNo) {
		return fmt.Errorf("page %d is not allocated in %s", pageNo, mf.name)
	}

	mf.freePages.Add(pageNo)
	mf.deleteCount++
	return nil
}

// ReadCount reports the number of page reads served.
func (mf *MemFile) ReadCount() int {
	return mf.readCount
}

// WriteCount reports the number of page writes, i.e. write-backs the
// buffer manager issued against this file.
func (mf *MemFile) WriteCount() int {
	return mf.writeCount
}

func (mf *MemFile) DeleteCount() int {
	return mf.deleteCount
}

func (mf *MemFile) allocated(pageNo PageID) bool {
	return pageNo >= 0 && pageNo < mf.nextPageId && !mf.freePages.Contains(pageNo)
}

type MemFile struct {
	name        string
	buf         *memfile.File
	nextPageId  PageID
	freePages   mapset.Set[PageID]
	readCount   int
	writeCount  int
	deleteCount int
}
