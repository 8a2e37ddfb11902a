package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"school-health-records/internal/domain/campaigns"
)

type campaignRepo struct {
	mu   sync.RWMutex
	byID map[string]campaigns.Campaign
}

func NewCampaignRepo() campaigns.Repository {
	return &campaignRepo{
		byID: make(map[string]campaigns.Campaign),
	}
}

func (r *campaignRepo) Create(ctx context.Context, c campaigns.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("campaign id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("campaign already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, nil
}

func (r *campaignRepo) List(ctx context.Context, filter campaigns.ListFilter) ([]campaigns.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaigns.Campaign, 0)
	for _, c := range r.byID {
		if filter.Kind != "" && c.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}

	// Próximas primero; las sin fecha (draft) al final, por creación.
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].ScheduledDate, out[j].ScheduledDate
		switch {
		case di != nil && dj != nil:
			return di.Before(*dj)
		case di != nil:
			return true
		case dj != nil:
			return false
		default:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
	})

	return out, nil
}

func (r *campaignRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return campaigns.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}
