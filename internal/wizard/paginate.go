package wizard

// PageView is one window into a large option set.
type PageView struct {
	Items      []string
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// paginate slices items into fixed-size pages and clamps page into range.
// pageSize <= 0 disables paging and returns everything on a single page.
func paginate(items []string, pageSize, page int) PageView {
	if pageSize <= 0 || len(items) <= pageSize {
		return PageView{Items: items, Page: 0, TotalPages: 1}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return PageView{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 0,
		HasNext:    page < totalPages-1,
	}
}
