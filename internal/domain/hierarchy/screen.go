package hierarchy

import "github.com/bnema/tagwm/internal/domain/entity"

// Screen is a physical output showing one TagSet.
type Screen struct {
	Name     string
	Geometry entity.Geometry
	TagSet   TagSetID
}

// ClientInfo is the bookkeeping kept for every managed client.
type ClientInfo struct {
	Tags   []string
	Mapped bool
}
