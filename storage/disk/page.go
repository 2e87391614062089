package disk

const (
	PAGE_SIZE       = 4096
	INVALID_PAGE_ID = PageID(-1)
)

func NewPage(id PageID) *Page {
	return &Page{
		id:   id,
		data: make([]byte, PAGE_SIZE),
	}
}

// NewPageFrom builds a page holding a copy of data. Pages are values;
// they never alias a caller's buffer.
func NewPageFrom(id PageID, data []byte) *Page {
	pg := NewPage(id)
	copy(pg.data, data)
	return pg
}

func (p *Page) ID() PageID {
	return p.id
}

func (p *Page) Data() []byte {
	return p.data
}

type PageID int64

// Page is an opaque fixed-size block identified by its page number.
// Its contents are never interpreted by this module.
type Page struct {
	id   PageID
	data []byte
}
