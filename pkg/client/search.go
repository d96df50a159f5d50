package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velourhq/velour/pkg/domain"
)

// serviceRecord is the wire shape of a search/filter result. The backend
// nests the owning salon's profile under salon_profile; normalize flattens
// it into the Salon summary and drops the raw nesting.
type serviceRecord struct {
	ID              uuid.UUID           `json:"id"`
	SalonID         uuid.UUID           `json:"salon_id"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Description     string              `json:"description"`
	Price           float64             `json:"price"`
	DurationMinutes int                 `json:"duration_minutes"`
	Image           domain.ImageRef     `json:"image"`
	SalonProfile    *salonProfileRecord `json:"salon_profile"`
	CreatedAt       time.Time           `json:"created_at"`
}

type salonProfileRecord struct {
	SalonName string `json:"salon_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
}

func (r serviceRecord) normalize() domain.Service {
	s := domain.Service{
		ID:              r.ID,
		SalonID:         r.SalonID,
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Image:           r.Image,
		CreatedAt:       r.CreatedAt,
	}
	if r.SalonProfile != nil {
		s.Salon = &domain.SalonSummary{
			Name:    r.SalonProfile.SalonName,
			Address: r.SalonProfile.Address,
			City:    r.SalonProfile.City,
			Phone:   r.SalonProfile.Phone,
			Website: r.SalonProfile.Website,
		}
	}
	return s
}

func normalizeRecords(records []serviceRecord) []domain.Service {
	services := make([]domain.Service, len(records))
	for i, r := range records {
		services[i] = r.normalize()
	}
	return services
}

// Filter queries service listings matching the given constraints.
func (c *Client) Filter(ctx context.Context, params domain.FilterParams) ([]domain.Service, error) {
	var records []serviceRecord
	if err := c.post(ctx, "/services/filter", params, &records); err != nil {
		return nil, fmt.Errorf("client.Filter: %w", err)
	}
	return normalizeRecords(records), nil
}

// Search queries service listings by keyword. An empty or whitespace-only
// keyword short-circuits to an empty result without a network call.
func (c *Client) Search(ctx context.Context, keyword string) ([]domain.Service, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	var records []serviceRecord
	if err := c.post(ctx, "/services/search", map[string]string{"keyword": keyword}, &records); err != nil {
		return nil, fmt.Errorf("client.Search: %w", err)
	}
	return normalizeRecords(records), nil
}
