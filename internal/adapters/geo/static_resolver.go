package geo

import (
	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/refdata"
)

// StaticResolver implements the GeoResolver port against the in-process
// reference table. Pure lookup: no network access, no computation.
type StaticResolver struct {
	table refdata.Locations
}

func NewStaticResolver(table refdata.Locations) *StaticResolver {
	return &StaticResolver{table: table}
}

func (r *StaticResolver) Resolve(loc domain.Location) (domain.Coordinate, bool) {
	return r.table.Coordinate(loc)
}
