package portfolio

import "fmt"

type SocialPlatform string

const (
	PlatformGithub        SocialPlatform = "github"
	PlatformLinkedin      SocialPlatform = "linkedin"
	PlatformTwitter       SocialPlatform = "twitter"
	PlatformFacebook      SocialPlatform = "facebook"
	PlatformInstagram     SocialPlatform = "instagram"
	PlatformYoutube       SocialPlatform = "youtube"
	PlatformTiktok        SocialPlatform = "tiktok"
	PlatformDiscord       SocialPlatform = "discord"
	PlatformSlack         SocialPlatform = "slack"
	PlatformMedium        SocialPlatform = "medium"
	PlatformDev           SocialPlatform = "dev"
	PlatformStackoverflow SocialPlatform = "stackoverflow"
	PlatformDribbble      SocialPlatform = "dribbble"
	PlatformBehance       SocialPlatform = "behance"
	PlatformFigma         SocialPlatform = "figma"
	PlatformCodepen       SocialPlatform = "codepen"
	PlatformWhatsapp      SocialPlatform = "whatsapp"
	PlatformTelegram      SocialPlatform = "telegram"
	PlatformScholar       SocialPlatform = "scholar"
	PlatformResearchgate  SocialPlatform = "researchgate"
	PlatformOrcid         SocialPlatform = "orcid"
	PlatformEmail         SocialPlatform = "email"
	PlatformWebsite       SocialPlatform = "website"
	PlatformCustom        SocialPlatform = "custom"
)

var knownPlatforms = map[SocialPlatform]struct{}{
	PlatformGithub: {}, PlatformLinkedin: {}, PlatformTwitter: {},
	PlatformFacebook: {}, PlatformInstagram: {}, PlatformYoutube: {},
	PlatformTiktok: {}, PlatformDiscord: {}, PlatformSlack: {},
	PlatformMedium: {}, PlatformDev: {}, PlatformStackoverflow: {},
	PlatformDribbble: {}, PlatformBehance: {}, PlatformFigma: {},
	PlatformCodepen: {}, PlatformWhatsapp: {}, PlatformTelegram: {},
	PlatformScholar: {}, PlatformResearchgate: {}, PlatformOrcid: {},
	PlatformEmail: {}, PlatformWebsite: {}, PlatformCustom: {},
}

func (p SocialPlatform) IsValid() bool {
	_, ok := knownPlatforms[p]
	return ok
}

// SocialLink points at a profile on a known platform. CustomIcon (an emoji
// glyph or an image URL) is only meaningful when Platform is "custom".
type SocialLink struct {
	Platform   SocialPlatform `json:"platform"`
	URL        string         `json:"url"`
	Label      string         `json:"label"`
	CustomIcon string         `json:"customIcon,omitempty"`
}

// NewSocialLink is the positional convenience form; build the struct
// directly when you need CustomIcon.
func NewSocialLink(platform SocialPlatform, url, label string) SocialLink {
	return SocialLink{Platform: platform, URL: url, Label: label}
}

func (l SocialLink) Validate() error {
	if !l.Platform.IsValid() {
		return fmt.Errorf("unknown social platform %q", l.Platform)
	}
	return nil
}

// ContactField is a free-form label/value row on the contact section.
type ContactField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

type ContactInfo struct {
	Email        string         `json:"email"`
	Location     string         `json:"location"`
	SocialLinks  []SocialLink   `json:"socialLinks"`
	CustomFields []ContactField `json:"customFields"`
}

// NewContactInfo is the positional convenience form.
func NewContactInfo(email, location string, links []SocialLink, fields []ContactField) ContactInfo {
	return ContactInfo{Email: email, Location: location, SocialLinks: links, CustomFields: fields}
}

func (c ContactInfo) Validate() error {
	for _, l := range c.SocialLinks {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c ContactInfo) Clone() ContactInfo {
	return ContactInfo{
		Email:        c.Email,
		Location:     c.Location,
		SocialLinks:  append([]SocialLink(nil), c.SocialLinks...),
		CustomFields: append([]ContactField(nil), c.CustomFields...),
	}
}
