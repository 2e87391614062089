package disk

// File abstracts persisted storage of fixed-size, numbered pages. The
// buffer manager treats implementations as externally owned: a file
// must outlive every pinned page read from it.
type File interface {
	Name() string
	ReadPage(pageNo PageID) (*Page, error)
	WritePage(pg *Page) error
	AllocatePage() (*Page, error)
	DeletePage(pageNo PageID) error
}
