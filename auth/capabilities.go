package auth

import (
	"context"
	"forum-feed/domain"
	"forum-feed/errors"
	"strings"

	"github.com/samber/lo"
)

// StaticCapabilityProvider answers capability lookups from a fixed list of
// communities the viewer manages. It stands in for the real authorization
// service when the feed is rendered offline.
type StaticCapabilityProvider struct {
	managed map[string]struct{}
	named   map[string]bool
}

func NewStaticCapabilityProvider(managedCommunities []string, named map[string]bool) *StaticCapabilityProvider {
	return &StaticCapabilityProvider{
		managed: lo.SliceToMap(managedCommunities, func(id string) (string, struct{}) {
			return strings.TrimSpace(id), struct{}{}
		}),
		named: named,
	}
}

func (p *StaticCapabilityProvider) Capabilities(ctx context.Context, communityID string) (domain.Capabilities, error) {
	if err := ctx.Err(); err != nil {
		return domain.Capabilities{}, err
	}
	if strings.TrimSpace(communityID) == "" {
		return domain.Capabilities{}, errors.ErrEmptyCommunityID
	}
	_, manage := p.managed[communityID]
	return domain.Capabilities{
		Manage: manage,
		Named:  lo.Assign(p.named),
	}, nil
}
