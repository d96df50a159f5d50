package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/velourhq/velour/pkg/domain"
)

// ServiceRequest is the payload for creating or updating a service listing.
type ServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

func (r ServiceRequest) multipartFields() map[string]string {
	fields := map[string]string{
		"name":        r.Name,
		"category":    r.Category,
		"description": r.Description,
		"price":       strconv.FormatFloat(r.Price, 'f', -1, 64),
	}
	if r.DurationMinutes > 0 {
		fields["duration_minutes"] = strconv.Itoa(r.DurationMinutes)
	}
	return fields
}

// ListServices fetches the authenticated salon's service listings.
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var services []domain.Service
	if err := c.get(ctx, "/salon-profile/services", &services); err != nil {
		return nil, fmt.Errorf("client.ListServices: %w", err)
	}
	return services, nil
}

// CreateService adds a service listing, attaching an image as a multipart
// part when present.
func (c *Client) CreateService(ctx context.Context, req ServiceRequest, image *FileAttachment) (*domain.Service, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var created domain.Service
	if image != nil {
		if err := c.doMultipart(ctx, http.MethodPost, "/salon-profile/services", req.multipartFields(), image, &created); err != nil {
			return nil, fmt.Errorf("client.CreateService: %w", err)
		}
		return &created, nil
	}
	if err := c.post(ctx, "/salon-profile/services", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateService: %w", err)
	}
	return &created, nil
}

// UpdateService updates a service listing by ID.
func (c *Client) UpdateService(ctx context.Context, id string, req ServiceRequest, image *FileAttachment) (*domain.Service, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	path := "/salon-profile/services/" + url.PathEscape(id)
	var updated domain.Service
	if image != nil {
		if err := c.doMultipart(ctx, http.MethodPut, path, req.multipartFields(), image, &updated); err != nil {
			return nil, fmt.Errorf("client.UpdateService: %w", err)
		}
		return &updated, nil
	}
	if err := c.put(ctx, path, req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateService: %w", err)
	}
	return &updated, nil
}

// DeleteService removes a service listing by ID.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	if err := c.doRequest(ctx, http.MethodDelete, "/salon-profile/services/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteService: %w", err)
	}
	return nil
}
