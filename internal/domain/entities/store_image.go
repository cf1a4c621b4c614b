package entities

import (
	"fmt"
	"net/url"
	"strings"
)

// StoreImage is an immutable reference to an already-uploaded photo. The
// binary itself lives in object storage; the domain only keeps a validated
// https URL and the primary flag.
type StoreImage struct {
	URL       string
	IsPrimary bool
}

// NewStoreImage validates the url: non-empty, well-formed, https scheme.
func NewStoreImage(rawURL string, isPrimary bool) (StoreImage, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return StoreImage{}, fmt.Errorf("%w: empty url", ErrInvalidImageURL)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return StoreImage{}, fmt.Errorf("%w: %q", ErrInvalidImageURL, trimmed)
	}

	return StoreImage{URL: trimmed, IsPrimary: isPrimary}, nil
}

func (i StoreImage) AsPrimary() StoreImage {
	return StoreImage{URL: i.URL, IsPrimary: true}
}

func (i StoreImage) AsSecondary() StoreImage {
	return StoreImage{URL: i.URL, IsPrimary: false}
}
