package roles

import (
	"github.com/renohub/backend/pkg/logger"
)

// Source is one lookup in the role precedence chain. It returns the role
// on a hit and "" on a miss. Sources are ordered from cheapest to most
// authoritative; later sources cover eventual-consistency gaps in earlier
// ones.
type Source struct {
	Name   string
	Lookup func() (string, error)
}

// Resolver resolves a user's role from an ordered list of sources,
// first match wins. A source that errors is logged and treated as a miss
// rather than aborting the chain, so a flaky source can never turn a
// denial into a grant or vice versa.
type Resolver struct {
	sources []Source
}

func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve walks the chain and returns the first role found, or "" if
// every source misses or errors.
func (r *Resolver) Resolve() string {
	for _, src := range r.sources {
		role, err := src.Lookup()
		if err != nil {
			logger.Warn().Err(err).Str("source", src.Name).Msg("role source failed, treating as miss")
			continue
		}
		if role != "" {
			return role
		}
	}
	return ""
}
