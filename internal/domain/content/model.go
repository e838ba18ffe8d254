package content

import (
	"strings"
	"time"
)

// Páginas conocidas. El store acepta cualquier page_name; estas son las que usa el sitio.
const (
	PageHome        = "home"
	PageCare        = "care"
	PageAbout       = "about"
	PageSocialMedia = "social_media"
)

// Envelope es lo que se persiste y viaja por la API: el documento va serializado como string
// y el store nunca lo interpreta.
type Envelope struct {
	ID        int64
	PageName  string
	Content   string
	UpdatedAt time.Time
}

type Home struct {
	CompanyName  string   `json:"company_name" yaml:"company_name"`
	LogoURL      string   `json:"logo_url" yaml:"logo_url"`
	Tagline      string   `json:"tagline" yaml:"tagline"`
	Description  string   `json:"description" yaml:"description"`
	Affiliations []string `json:"affiliations" yaml:"affiliations"`
}

type Care struct {
	Title      string   `json:"title" yaml:"title"`
	AboutBreed string   `json:"about_breed" yaml:"about_breed"`
	ImageURL   string   `json:"image_url" yaml:"image_url"`
	CareTips   []string `json:"care_tips" yaml:"care_tips"`
}

type Contact struct {
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
}

type About struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	Contact        Contact  `json:"contact" yaml:"contact"`
	PaymentMethods []string `json:"payment_methods" yaml:"payment_methods"`
}

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// IconName es el nombre usado para buscar el ícono; si no hay icon explícito, la plataforma en minúsculas.
func (l SocialLink) IconName() string {
	if l.Icon != "" {
		return l.Icon
	}
	return strings.ToLower(strings.TrimSpace(l.Platform))
}

type SocialMedia struct {
	Links []SocialLink `json:"links" yaml:"links"`
}
