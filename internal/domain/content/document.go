package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDocument = errors.New("invalid document")

// Los documentos llegan como JSON libre: cualquier campo puede faltar. Los tipos *Partial
// distinguen "ausente" (nil) de "vacío" y ApplyDefaults completa solo lo ausente.

type HomePartial struct {
	CompanyName  *string   `json:"company_name"`
	LogoURL      *string   `json:"logo_url"`
	Tagline      *string   `json:"tagline"`
	Description  *string   `json:"description"`
	Affiliations *[]string `json:"affiliations"`
}

type CarePartial struct {
	Title      *string   `json:"title"`
	AboutBreed *string   `json:"about_breed"`
	ImageURL   *string   `json:"image_url"`
	CareTips   *[]string `json:"care_tips"`
}

type ContactPartial struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type AboutPartial struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Contact        *ContactPartial `json:"contact"`
	PaymentMethods *[]string       `json:"payment_methods"`
}

type SocialMediaPartial struct {
	Links *[]SocialLink `json:"links"`
}

func DefaultHome() Home {
	return Home{
		CompanyName:  "Royal Abyssinians",
		LogoURL:      "/images/aby_photo1.jpg",
		Affiliations: []string{},
	}
}

func DefaultCare() Care {
	return Care{
		Title:    "Caring for Your Abyssinian",
		ImageURL: "/images/aby_kitten1.jpg",
		CareTips: []string{},
	}
}

func DefaultAbout() About {
	return About{
		Title:          "About Us",
		PaymentMethods: []string{},
	}
}

func DefaultSocialMedia() SocialMedia {
	return SocialMedia{Links: []SocialLink{}}
}

func (p HomePartial) ApplyDefaults() Home {
	d := DefaultHome()
	return Home{
		CompanyName:  orString(p.CompanyName, d.CompanyName),
		LogoURL:      orString(p.LogoURL, d.LogoURL),
		Tagline:      orString(p.Tagline, d.Tagline),
		Description:  orString(p.Description, d.Description),
		Affiliations: orStrings(p.Affiliations),
	}
}

func (p CarePartial) ApplyDefaults() Care {
	d := DefaultCare()
	return Care{
		Title:      orString(p.Title, d.Title),
		AboutBreed: orString(p.AboutBreed, d.AboutBreed),
		ImageURL:   orString(p.ImageURL, d.ImageURL),
		CareTips:   orStrings(p.CareTips),
	}
}

func (p AboutPartial) ApplyDefaults() About {
	d := DefaultAbout()
	out := About{
		Title:          orString(p.Title, d.Title),
		Description:    orString(p.Description, d.Description),
		PaymentMethods: orStrings(p.PaymentMethods),
	}
	if p.Contact != nil {
		out.Contact = Contact{
			Email:   orString(p.Contact.Email, ""),
			Phone:   orString(p.Contact.Phone, ""),
			Address: orString(p.Contact.Address, ""),
		}
	}
	return out
}

func (p SocialMediaPartial) ApplyDefaults() SocialMedia {
	if p.Links == nil || *p.Links == nil {
		return DefaultSocialMedia()
	}
	links := make([]SocialLink, len(*p.Links))
	copy(links, *p.Links)
	return SocialMedia{Links: links}
}

// DecodeHome parsea el string guardado y completa defaults. Un string vacío equivale a "{}".
func DecodeHome(raw string) (Home, error) {
	var p HomePartial
	if err := decode(raw, &p); err != nil {
		return DefaultHome(), err
	}
	return p.ApplyDefaults(), nil
}

func DecodeCare(raw string) (Care, error) {
	var p CarePartial
	if err := decode(raw, &p); err != nil {
		return DefaultCare(), err
	}
	return p.ApplyDefaults(), nil
}

func DecodeAbout(raw string) (About, error) {
	var p AboutPartial
	if err := decode(raw, &p); err != nil {
		return DefaultAbout(), err
	}
	return p.ApplyDefaults(), nil
}

func DecodeSocialMedia(raw string) (SocialMedia, error) {
	var p SocialMediaPartial
	if err := decode(raw, &p); err != nil {
		return DefaultSocialMedia(), err
	}
	return p.ApplyDefaults(), nil
}

// Encode serializa el documento completo; es lo que se manda como "content" en el PUT.
func Encode(doc any) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return string(b), nil
}

func decode(raw string, into any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

func orString(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func orStrings(v *[]string) []string {
	if v == nil || *v == nil {
		return []string{}
	}
	out := make([]string, len(*v))
	copy(out, *v)
	return out
}
