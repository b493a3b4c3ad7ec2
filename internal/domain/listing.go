package domain

// ListConfig declares, per endpoint, which columns a list query may search and
// order by, and the order applied when the caller does not request one.
type ListConfig struct {
	SearchFields []string
	OrderFields  []string
	DefaultOrder string
}

// ListOptions carries the caller's search and ordering choices after they have
// been checked against a ListConfig.
type ListOptions struct {
	Search  string
	OrderBy string
	Desc    bool
}

// Resolve validates the requested ordering field against the config and
// returns the options to apply. An empty or unknown field falls back to the
// config's default order. A leading '-' requests descending order.
func (c ListConfig) Resolve(search, ordering string) ListOptions {
	opts := ListOptions{Search: search, OrderBy: c.DefaultOrder}
	field := ordering
	desc := false
	if len(field) > 0 && field[0] == '-' {
		field = field[1:]
		desc = true
	}
	for _, f := range c.OrderFields {
		if f == field {
			opts.OrderBy = field
			opts.Desc = desc
			break
		}
	}
	return opts
}
