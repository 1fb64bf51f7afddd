package portfolio

import (
	"errors"
	"fmt"
)

var ErrProjectLiveURL = errors.New("project live url is required")

// Project is an entity: identity is the ID, everything else may change
// between versions. A nil ImageURL means the preview image is derived
// from a live screenshot of LiveURL.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"imageUrl"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   *string  `json:"githubUrl,omitempty"`
}

func (p Project) Validate() error {
	if p.LiveURL == "" {
		return ErrProjectLiveURL
	}
	return nil
}

func (p Project) HasGithub() bool {
	return p.GithubURL != nil && *p.GithubURL != ""
}

// PreviewImageURL resolves the image shown on a project card: the explicit
// image when set, otherwise a live screenshot of the demo site.
func (p Project) PreviewImageURL() string {
	if p.ImageURL != nil && *p.ImageURL != "" {
		return *p.ImageURL
	}
	return ScreenshotURL(p.LiveURL)
}

// ScreenshotURL builds a thum.io screenshot URL for a website.
func ScreenshotURL(url string) string {
	return fmt.Sprintf("https://image.thum.io/get/width/600/crop/400/%s", url)
}

func (p Project) Clone() Project {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	if p.ImageURL != nil {
		v := *p.ImageURL
		out.ImageURL = &v
	}
	if p.GithubURL != nil {
		v := *p.GithubURL
		out.GithubURL = &v
	}
	return out
}
