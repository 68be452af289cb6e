package repo

// ListParams is the shared pagination/sort envelope. Handlers normalize query
// parameters into it; OrderClause values are allowlisted upstream so they can
// be interpolated into ORDER BY safely.
type ListParams struct {
	Limit       int
	Offset      int
	OrderClause string
}

func (p ListParams) normalized(defaultOrder string) ListParams {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.OrderClause == "" {
		p.OrderClause = defaultOrder
	}
	return p
}
