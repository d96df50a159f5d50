package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/velourhq/velour/pkg/domain"
)

// ConsumerProfileRequest is the mutable part of a consumer profile.
type ConsumerProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
}

// SalonProfileRequest is the mutable part of a salon profile.
type SalonProfileRequest struct {
	SalonName string `json:"salon_name"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	About     string `json:"about,omitempty"`
}

// GetConsumerProfile fetches the authenticated consumer's profile.
func (c *Client) GetConsumerProfile(ctx context.Context) (*domain.ConsumerProfile, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var p domain.ConsumerProfile
	if err := c.get(ctx, "/user-profile", &p); err != nil {
		return nil, fmt.Errorf("client.GetConsumerProfile: %w", err)
	}
	return &p, nil
}

// CreateConsumerProfile creates the consumer profile, attaching a photo as a
// multipart part when present.
func (c *Client) CreateConsumerProfile(ctx context.Context, req ConsumerProfileRequest, photo *FileAttachment) (*domain.ConsumerProfile, error) {
	return c.writeConsumerProfile(ctx, http.MethodPost, req, photo)
}

// UpdateConsumerProfile updates the consumer profile.
func (c *Client) UpdateConsumerProfile(ctx context.Context, req ConsumerProfileRequest, photo *FileAttachment) (*domain.ConsumerProfile, error) {
	return c.writeConsumerProfile(ctx, http.MethodPut, req, photo)
}

func (c *Client) writeConsumerProfile(ctx context.Context, method string, req ConsumerProfileRequest, photo *FileAttachment) (*domain.ConsumerProfile, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var p domain.ConsumerProfile
	if photo != nil {
		fields := map[string]string{
			"full_name": req.FullName,
			"phone":     req.Phone,
			"city":      req.City,
		}
		if err := c.doMultipart(ctx, method, "/user-profile", fields, photo, &p); err != nil {
			return nil, fmt.Errorf("client.writeConsumerProfile: %w", err)
		}
		return &p, nil
	}
	if err := c.doRequest(ctx, method, "/user-profile", req, &p); err != nil {
		return nil, fmt.Errorf("client.writeConsumerProfile: %w", err)
	}
	return &p, nil
}

// DeleteConsumerProfile deletes the consumer profile.
func (c *Client) DeleteConsumerProfile(ctx context.Context) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	if err := c.doRequest(ctx, http.MethodDelete, "/user-profile", nil, nil); err != nil {
		return fmt.Errorf("client.DeleteConsumerProfile: %w", err)
	}
	return nil
}

// GetSalonProfile fetches the authenticated salon's profile.
func (c *Client) GetSalonProfile(ctx context.Context) (*domain.SalonProfile, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var p domain.SalonProfile
	if err := c.get(ctx, "/salon-profile", &p); err != nil {
		return nil, fmt.Errorf("client.GetSalonProfile: %w", err)
	}
	return &p, nil
}

// CreateSalonProfile creates the salon profile, attaching an image as a
// multipart part when present.
func (c *Client) CreateSalonProfile(ctx context.Context, req SalonProfileRequest, image *FileAttachment) (*domain.SalonProfile, error) {
	return c.writeSalonProfile(ctx, http.MethodPost, req, image)
}

// UpdateSalonProfile updates the salon profile.
func (c *Client) UpdateSalonProfile(ctx context.Context, req SalonProfileRequest, image *FileAttachment) (*domain.SalonProfile, error) {
	return c.writeSalonProfile(ctx, http.MethodPut, req, image)
}

func (c *Client) writeSalonProfile(ctx context.Context, method string, req SalonProfileRequest, image *FileAttachment) (*domain.SalonProfile, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	var p domain.SalonProfile
	if image != nil {
		fields := map[string]string{
			"salon_name": req.SalonName,
			"address":    req.Address,
			"city":       req.City,
			"phone":      req.Phone,
			"website":    req.Website,
			"about":      req.About,
		}
		if err := c.doMultipart(ctx, method, "/salon-profile", fields, image, &p); err != nil {
			return nil, fmt.Errorf("client.writeSalonProfile: %w", err)
		}
		return &p, nil
	}
	if err := c.doRequest(ctx, method, "/salon-profile", req, &p); err != nil {
		return nil, fmt.Errorf("client.writeSalonProfile: %w", err)
	}
	return &p, nil
}

// DeleteSalonProfile deletes the salon profile.
func (c *Client) DeleteSalonProfile(ctx context.Context) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	if err := c.doRequest(ctx, http.MethodDelete, "/salon-profile", nil, nil); err != nil {
		return fmt.Errorf("client.DeleteSalonProfile: %w", err)
	}
	return nil
}
