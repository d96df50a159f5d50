package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ConsumerProfile is the profile owned by a consumer account.
type ConsumerProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	Photo     ImageRef  `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SalonProfile is the profile owned by a salon account.
type SalonProfile struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	SalonName string             `json:"salon_name"`
	Address   string             `json:"address,omitempty"`
	City      string             `json:"city,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Website   string             `json:"website,omitempty"`
	About     string             `json:"about,omitempty"`
	Image     ImageRef           `json:"image,omitempty"`
	Status    RegistrationStatus `json:"status,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ImageRef is a backend image reference normalized to a plain URI string.
//
// The backend returns images in several shapes depending on which upload
// path produced them: a bare string, an object with a "url", "uri" or
// "secure_url" field, or an array of either. All of them decode to the URI
// of the first usable entry.
type ImageRef string

// URI returns the normalized image URI, empty when no image is set.
func (r ImageRef) URI() string { return string(r) }

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ImageRef(s)
		return nil
	}

	var obj imageObject
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = ImageRef(obj.uri())
		return nil
	}

	// Array of strings or objects; take the first non-empty entry.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, item := range raw {
		var ref ImageRef
		if err := ref.UnmarshalJSON(item); err == nil && ref != "" {
			*r = ref
			return nil
		}
	}
	*r = ""
	return nil
}

func (r ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

type imageObject struct {
	URL       string `json:"url"`
	URI       string `json:"uri"`
	SecureURL string `json:"secure_url"`
}

func (o imageObject) uri() string {
	switch {
	case o.SecureURL != "":
		return o.SecureURL
	case o.URL != "":
		return o.URL
	default:
		return o.URI
	}
}
