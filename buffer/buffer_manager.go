package buffer

import (
	"github.com/wafula/bufcache/storage/disk"
	"github.com/wafula/bufcache/util"
)

// NewManager allocates a pool of numFrames page-sized frames together
// with its descriptor table and page table. The manager serializes
// nothing itself; callers are expected to serialize access.
func NewManager(numFrames int) (*Manager, error) {
	if numFrames <= 0 {
		return nil, util.ErrInvalidPoolSize
	}

	frames := make([]frameDesc, numFrames)
	pool := make([][]byte, numFrames)
	for i := 0; i < numFrames; i++ {
		frames[i].clear()
		pool[i] = make([]byte, disk.PAGE_SIZE)
	}

	table := newPageTable()
	return &Manager{
		frames: frames,
		pool:   pool,
		table:  table,
		clock:  newClockReplacer(frames, table),
	}, nil
}

// ReadPage returns the requested page's frame data, pinned. Every
// successful read must be balanced by exactly one UnpinPage.
func (m *Manager) ReadPage(file disk.File, pageNo disk.PageID) ([]byte, error) {
	if frame, ok := m.table.get(file, pageNo); ok {
		fd := &m.frames[frame]
		fd.referenced = true
		fd.pinCount++
		return m.pool[frame], nil
	}

	frame, err := m.clock.selectVictim(m.writeBack)
	if err != nil {
		return nil, err
	}

	pg, err := file.ReadPage(pageNo)
	if err != nil {
		return nil, err
	}
	copy(m.pool[frame], pg.Data())

	m.table.put(file, pageNo, frame)
	m.frames[frame].set(file, pageNo)

	return m.pool[frame], nil
}

// UnpinPage releases one pin. Unpinning a page that is not resident is
// a no-op; unpinning a resident page whose pin count is already zero
// is a caller bug. The dirty flag is sticky: only a write-back clears
// it.
func (m *Manager) UnpinPage(file disk.File, pageNo disk.PageID, dirty bool) error {
	frame, ok := m.table.get(file, pageNo)
	if !ok {
		return nil
	}

	fd := &m.frames[frame]
	if fd.pinCount == 0 {
		return util.NewBufferError(util.NotPinned, file.Name(), int64(pageNo), frame)
	}

	fd.pinCount--
	if dirty {
		fd.dirty = true
	}
	return nil
}

// AllocatePage grows the file by one page and installs it, pinned.
func (m *Manager) AllocatePage(file disk.File) (disk.PageID, []byte, error) {
	pg, err := file.AllocatePage()
	if err != nil {
		return disk.INVALID_PAGE_ID, nil, err
	}

	frame, err := m.clock.selectVictim(m.writeBack)
	if err != nil {
		return disk.INVALID_PAGE_ID, nil, err
	}

	m.table.put(file, pg.ID(), frame)
	m.frames[frame].set(file, pg.ID())
	copy(m.pool[frame], pg.Data())

	return pg.ID(), m.pool[frame], nil
}

// DisposePage deletes the page from its file. A resident copy is
// dropped without write-back; its on-disk storage no longer exists.
func (m *Manager) DisposePage(file disk.File, pageNo disk.PageID) error {
	if err := file.DeletePage(pageNo); err != nil {
		return err
	}

	if frame, ok := m.table.get(file, pageNo); ok {
		m.table.remove(file, pageNo)
		m.frames[frame].clear()
	}
	return nil
}

// FlushFile writes back and releases every frame owned by file. All of
// the file's pages must be quiescent; the first offending frame aborts
// the sweep, leaving the frames already processed fully resolved.
func (m *Manager) FlushFile(file disk.File) error {
	for frame := range m.frames {
		fd := &m.frames[frame]
		if fd.file != file {
			continue
		}
		if !fd.valid {
			return util.NewBufferError(util.InconsistentState, file.Name(), int64(fd.pageNo), frame)
		}
		if fd.pinCount != 0 {
			return util.NewBufferError(util.StillPinned, file.Name(), int64(fd.pageNo), frame)
		}

		if fd.dirty {
			if err := m.writeBack(frame); err != nil {
				return err
			}
		}
		m.table.remove(file, fd.pageNo)
		fd.clear()
	}
	return nil
}

// Shutdown writes back every dirty frame and releases the pool. A
// still-pinned frame aborts the sweep: some caller never unpinned, and
// evicting under it would lose the pin's guarantee.
func (m *Manager) Shutdown() error {
	for frame := range m.frames {
		fd := &m.frames[frame]
		if !fd.valid {
			continue
		}
		if fd.pinCount != 0 {
			return util.NewBufferError(util.StillPinned, fd.file.Name(), int64(fd.pageNo), frame)
		}
		if fd.dirty {
			if err := m.writeBack(frame); err != nil {
				return err
			}
		}
	}

	m.frames = nil
	m.pool = nil
	m.table = nil
	m.clock = nil
	return nil
}

// writeBack persists a frame through its owning file. It must complete
// before the frame is reused.
func (m *Manager) writeBack(frame int) error {
	fd := &m.frames[frame]
	if err := fd.file.WritePage(disk.NewPageFrom(fd.pageNo, m.pool[frame])); err != nil {
		return err
	}
	fd.dirty = false
	return nil
}

// Manager coordinates the frame pool, descriptor table, page table and
// clock replacer to keep a bounded set of pages resident in memory.
type Manager struct {
	frames []frameDesc
	pool   [][]byte
	table  pageTable
	clock  *clockReplacer
}
