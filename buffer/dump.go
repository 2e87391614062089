package buffer

import (
	"fmt"
	"strings"

	"github.com/wafula/bufcache/storage/disk"
)

// DumpState snapshots every frame descriptor for debugging. Read-only;
// no part of the functional contract depends on it.
func (m *Manager) DumpState() PoolState {
	state := PoolState{Frames: make([]FrameState, len(m.frames))}
	for i := range m.frames {
		fd := &m.frames[i]
		fs := FrameState{
			Frame:      i,
			PageNum:    fd.pageNo,
			PinCount:   fd.pinCount,
			Dirty:      fd.dirty,
			Referenced: fd.referenced,
			Valid:      fd.valid,
		}
		if fd.file != nil {
			fs.File = fd.file.Name()
		}

		state.Frames[i] = fs
		if fd.valid {
			state.ValidFrames++
		}
	}
	return state
}

func (s PoolState) String() string {
	var sb strings.Builder
	for _, f := range s.Frames {
		fmt.Fprintf(&sb, "frame:%d file:%s page:%d pin:%d dirty:%v ref:%v valid:%v\n",
			f.Frame, f.File, f.PageNum, f.PinCount, f.Dirty, f.Referenced, f.Valid)
	}
	fmt.Fprintf(&sb, "valid frames: %d\n", s.ValidFrames)
	return sb.String()
}

type FrameState struct {
	Frame      int
	File       string
	PageNum    disk.PageID
	PinCount   int
	Dirty      bool
	Referenced bool
	Valid      bool
}

type PoolState struct {
	Frames      []FrameState
	ValidFrames int
}
