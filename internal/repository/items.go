package repository

// ItemRecord is one entry of the mock item list.
type ItemRecord struct {
	ItemName string `json:"item_name"`
}

// ItemRepository serves the fixed mock list. It holds no mutable state,
// so it is safe to share across concurrent requests without locking.
type ItemRepository struct {
	items []ItemRecord
}

// NewItemRepository constructs the repository with its fixed contents.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: []ItemRecord{
			{ItemName: "Foo"},
			{ItemName: "Bar"},
			{ItemName: "Thirt"},
		},
	}
}

// List returns the [skip : skip+limit) window of the mock list.
//
// The window is clamped to the list bounds: asking past the end returns
// however many items remain (possibly none), never an error. The result
// is never nil so it serializes as a JSON array.
func (r *ItemRepository) List(skip, limit int) []ItemRecord {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(r.items) || limit <= 0 {
		return []ItemRecord{}
	}

	end := skip + limit
	if end > len(r.items) {
		end = len(r.items)
	}

	out := make([]ItemRecord, end-skip)
	copy(out, r.items[skip:end])
	return out
}

// Len reports the size of the mock list.
func (r *ItemRepository) Len() int {
	return len(r.items)
}
