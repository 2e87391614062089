package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wafula/bufcache/storage/disk"
)

func TestFrameDesc(t *testing.T) {
	t.Run("install sets first-access state", func(t *testing.T) {
		file := disk.NewMemFile("frames.db")

		var fd frameDesc
		fd.set(file, 7)

		assert.Equal(t, file, fd.file)
		assert.Equal(t, disk.PageID(7), fd.pageNo)
		assert.Equal(t, 1, fd.pinCount)
		assert.True(t, fd.referenced)
		assert.False(t, fd.dirty)
		assert.True(t, fd.valid)
	})

	t.Run("clear returns the frame to the free state", func(t *testing.T) {
		file := disk.NewMemFile("frames.db")

		var fd frameDesc
		fd.set(file, 7)
		fd.pinCount = 0
		fd.dirty = true
		fd.clear()

		assert.Nil(t, fd.file)
		assert.Equal(t, disk.INVALID_PAGE_ID, fd.pageNo)
		assert.Equal(t, 0, fd.pinCount)
		assert.False(t, fd.referenced)
		assert.False(t, fd.dirty)
		assert.False(t, fd.valid)
	})
}
