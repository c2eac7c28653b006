package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type Name string

func (vo Name) String() string {
	return string(vo)
}

type Description string

// Kind names a resource kind in errors, events and reports.
type Kind string

const (
	KindCrop          Kind = "crop"
	KindInventoryItem Kind = "inventory_item"
)

func (k Kind) String() string {
	return string(k)
}
