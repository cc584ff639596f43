// Package profile holds the signed-in editor's profile.
package profile

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/5w1tchy/nexus-admin/internal/form"
	"github.com/5w1tchy/nexus-admin/internal/models"
)

var ErrUploadsDisabled = errors.New("profile: avatar uploads are not configured")

// Uploader presigns direct uploads to object storage.
type Uploader interface {
	PresignUpload(ctx context.Context, objectKey, contentType string) (string, error)
}

// Patch carries the editable fields; nil leaves a field unchanged. Email is
// shown locked in the form but may still be corrected here.
type Patch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
}

type Upload struct {
	URL       string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	Method    string `json:"method"`
}

var avatarTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type Store struct {
	mu sync.RWMutex
	p  models.Profile
}

func Default() models.Profile {
	return models.Profile{
		ID:        "ed-001",
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan.perez@nexus.com",
		Role:      "Editor Jefe",
		Phone:     "+52 55 1234 5678",
		Bio:       "Experienced editor of fiction and contemporary literature. Coordinates the review teams and signs off on final manuscript quality. More than 10 years in publishing.",
		JoinedAt:  "2015-03-02",
	}
}

func NewStore(p models.Profile) *Store { return &Store{p: p} }

func (s *Store) Get() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

// DisplayName is "First Last".
func (s *Store) DisplayName() string {
	p := s.Get()
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Update applies in after validating every present field. Nothing changes
// unless all of them pass.
func (s *Store) Update(in Patch) (models.Profile, error) {
	var c form.Checker
	if in.FirstName != nil {
		c.Text("first_name", *in.FirstName, 50)
	}
	if in.LastName != nil {
		c.Text("last_name", *in.LastName, 50)
	}
	if in.Email != nil {
		c.Email("email", *in.Email, 100)
	}
	if in.Phone != nil {
		c.MaxLen("phone", *in.Phone, 30)
	}
	if in.Bio != nil {
		c.MaxLen("bio", *in.Bio, 1000)
	}
	if err := c.Err(""); err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&s.p.FirstName, in.FirstName)
	set(&s.p.LastName, in.LastName)
	set(&s.p.Email, in.Email)
	set(&s.p.Phone, in.Phone)
	set(&s.p.Bio, in.Bio)
	return s.p, nil
}

func (s *Store) SetAvatar(u string) {
	s.mu.Lock()
	s.p.Avatar = u
	s.mu.Unlock()
}

// AvatarURL is the stored avatar, or a generated one with the initials.
func AvatarURL(p models.Profile) string {
	if p.Avatar != "" {
		return p.Avatar
	}
	q := url.Values{}
	q.Set("name", p.FirstName+" "+p.LastName)
	q.Set("background", "0D8ABC")
	q.Set("color", "fff")
	q.Set("size", "128")
	return "https://ui-avatars.com/api/?" + q.Encode()
}

// PrepareAvatarUpload presigns a PUT for a new avatar image. up may be nil
// when storage is not configured.
func (s *Store) PrepareAvatarUpload(ctx context.Context, up Uploader, contentType string) (Upload, error) {
	ext, ok := avatarTypes[contentType]
	if !ok {
		var c form.Checker
		c.OneOf("content_type", contentType, "image/png", "image/jpeg", "image/webp")
		return Upload{}, c.Err("Unsupported image type.")
	}
	if up == nil {
		return Upload{}, ErrUploadsDisabled
	}
	key := "avatars/" + s.Get().ID + ext
	u, err := up.PresignUpload(ctx, key, contentType)
	if err != nil {
		return Upload{}, err
	}
	return Upload{URL: u, ObjectKey: key, Method: "PUT"}, nil
}
