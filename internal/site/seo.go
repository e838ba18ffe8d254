package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"cattery-cms/internal/domain/content"
)

const (
	markerStructuredData = "<!-- DYNAMIC_STRUCTURED_DATA -->"
	markerMetaTags       = "<!-- DYNAMIC_META_TAGS -->"
	markerNoScript       = "<!-- DYNAMIC_NOSCRIPT -->"
)

// Pages son los documentos que alimentan el SEO; ya con defaults aplicados.
type Pages struct {
	Home   content.Home
	About  content.About
	Social content.SocialMedia
}

// Blocks es el HTML que reemplaza a cada marcador del index.html.
type Blocks struct {
	StructuredData string
	MetaTags       string
	NoScript       string
}

type postalAddress struct {
	Street string
	City   string
	State  string
	Zip    string
}

// parseAddress entiende "Calle, Ciudad, ST ZIP"; lo que falte queda vacío.
func parseAddress(s string) postalAddress {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var a postalAddress
	if len(parts) > 0 {
		a.Street = parts[0]
	}
	if len(parts) > 1 {
		a.City = parts[1]
	}
	if len(parts) > 2 {
		fields := strings.Fields(parts[2])
		if len(fields) > 0 {
			a.State = fields[0]
		}
		if len(fields) > 1 {
			a.Zip = fields[1]
		}
	}
	return a
}

func absoluteURL(siteURL, u string) string {
	if strings.HasPrefix(u, "/") {
		return siteURL + u
	}
	return u
}

// BuildBlocks arma JSON-LD, meta tags y noscript a partir del contenido editable.
func BuildBlocks(siteURL string, p Pages) (Blocks, error) {
	siteURL = strings.TrimRight(siteURL, "/")
	home, about := p.Home, p.About
	company := home.CompanyName
	logo := absoluteURL(siteURL, home.LogoURL)
	addr := parseAddress(about.Contact.Address)

	sameAs := []string{}
	for _, l := range p.Social.Links {
		if l.URL != "" {
			sameAs = append(sameAs, l.URL)
		}
	}

	postal := map[string]any{
		"@type":           "PostalAddress",
		"streetAddress":   addr.Street,
		"addressLocality": addr.City,
		"addressRegion":   addr.State,
		"postalCode":      addr.Zip,
		"addressCountry":  "US",
	}

	localDesc := home.Description
	websiteDesc := company
	if home.Tagline != "" {
		localDesc = home.Tagline + ". " + home.Description
		websiteDesc = company + " - " + home.Tagline
	}

	memberOf := make([]map[string]any, 0, len(home.Affiliations))
	for _, a := range home.Affiliations {
		memberOf = append(memberOf, map[string]any{"@type": "Organization", "name": a})
	}

	docs := []map[string]any{
		{
			"@context":    "https://schema.org",
			"@type":       "Organization",
			"name":        company,
			"url":         siteURL,
			"logo":        logo,
			"image":       logo,
			"description": home.Description,
			"contactPoint": map[string]any{
				"@type":             "ContactPoint",
				"telephone":         about.Contact.Phone,
				"contactType":       "sales",
				"email":             about.Contact.Email,
				"availableLanguage": "English",
			},
			"address": postal,
			"sameAs":  sameAs,
		},
		{
			"@context":    "https://schema.org",
			"@type":       "LocalBusiness",
			"name":        company,
			"description": localDesc,
			"url":         siteURL,
			"image": []string{
				siteURL + "/images/aby_photo1.jpg",
				siteURL + "/images/aby_photo2.jpg",
				siteURL + "/images/aby_kitten1.jpg",
			},
			"telephone":          about.Contact.Phone,
			"email":              about.Contact.Email,
			"address":            postal,
			"priceRange":         "$1100 - $1300",
			"paymentAccepted":    nonNil(about.PaymentMethods),
			"currenciesAccepted": "USD",
			"hasOfferCatalog": map[string]any{
				"@type": "OfferCatalog",
				"name":  "Abyssinian Kittens",
				"itemListElement": []map[string]any{{
					"@type": "Offer",
					"itemOffered": map[string]any{
						"@type":       "Product",
						"name":        "Abyssinian Kitten",
						"description": "Purebred Abyssinian kitten, health guaranteed, raised in a loving home. Available in Ruddy, Sorrel, Blue, and Fawn colors.",
						"image":       siteURL + "/images/aby_kitten1.jpg",
						"brand":       map[string]any{"@type": "Brand", "name": company},
						"category":    "Pets > Cats > Abyssinian",
					},
					"priceCurrency": "USD",
					"price":         "1100.00",
					"availability":  "https://schema.org/InStock",
					"seller":        map[string]any{"@type": "Organization", "name": company},
				}},
			},
			"memberOf": memberOf,
		},
		{
			"@context":    "https://schema.org",
			"@type":       "WebSite",
			"name":        company,
			"url":         siteURL,
			"description": websiteDesc,
		},
		{
			"@context": "https://schema.org",
			"@type":    "BreadcrumbList",
			"itemListElement": []map[string]any{
				{"@type": "ListItem", "position": 1, "name": "Home", "item": siteURL + "/"},
				{"@type": "ListItem", "position": 2, "name": "Available Kittens", "item": siteURL + "/kittens"},
				{"@type": "ListItem", "position": 3, "name": "Care Guide", "item": siteURL + "/care"},
				{"@type": "ListItem", "position": 4, "name": "About Us", "item": siteURL + "/about"},
			},
		},
	}

	// json.Marshal escapa <, > y &, así que el contenido no puede cerrar el <script>.
	scripts := make([]string, 0, len(docs))
	for _, d := range docs {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return Blocks{}, fmt.Errorf("structured data: %w", err)
		}
		scripts = append(scripts, `<script type="application/ld+json">`+string(b)+`</script>`)
	}

	affs := home.Affiliations
	if len(affs) > 2 {
		affs = affs[:2]
	}
	view := metaView{
		Company:     company,
		Description: home.Description,
		MetaDesc: company + " is a trusted Abyssinian cat breeder offering beautiful, healthy Abyssinian kittens for sale. " +
			strings.Join(affs, ", ") + " registered. Browse available kittens and join our waiting list.",
		Logo:         logo,
		Affiliations: home.Affiliations,
		Email:        about.Contact.Email,
		Phone:        about.Contact.Phone,
		Address:      about.Contact.Address,
		Payment:      "Contact us",
	}
	if len(about.PaymentMethods) > 0 {
		view.Payment = strings.Join(about.PaymentMethods, ", ")
	}

	var meta, noscript bytes.Buffer
	if err := metaTmpl.Execute(&meta, view); err != nil {
		return Blocks{}, fmt.Errorf("meta tags: %w", err)
	}
	if err := noscriptTmpl.Execute(&noscript, view); err != nil {
		return Blocks{}, fmt.Errorf("noscript: %w", err)
	}

	return Blocks{
		StructuredData: strings.Join(scripts, "\n    "),
		MetaTags:       strings.TrimSpace(meta.String()),
		NoScript:       strings.TrimSpace(noscript.String()),
	}, nil
}

// Inject reemplaza los tres marcadores; si alguno no está, esa parte se omite.
func Inject(index []byte, b Blocks) []byte {
	out := string(index)
	out = strings.Replace(out, markerStructuredData, b.StructuredData, 1)
	out = strings.Replace(out, markerMetaTags, b.MetaTags, 1)
	out = strings.Replace(out, markerNoScript, b.NoScript, 1)
	return []byte(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type metaView struct {
	Company      string
	Description  string
	MetaDesc     string
	Logo         string
	Affiliations []string
	Email        string
	Phone        string
	Address      string
	Payment      string
}

var metaTmpl = template.Must(template.New("meta").Parse(`
<title>{{.Company}} | Abyssinian Kittens for Sale | Abyssinian Cat Breeder</title>
    <meta name="description" content="{{.MetaDesc}}" />
    <meta property="og:title" content="{{.Company}} | Abyssinian Kittens for Sale" />
    <meta property="og:description" content="{{.MetaDesc}}" />
    <meta property="og:site_name" content="{{.Company}}" />
    <meta property="og:image" content="{{.Logo}}" />
    <meta name="twitter:title" content="{{.Company}} | Abyssinian Kittens for Sale" />
    <meta name="twitter:description" content="{{.MetaDesc}}" />
    <meta name="twitter:image" content="{{.Logo}}" />
`))

var noscriptTmpl = template.Must(template.New("noscript").Parse(`
<noscript>
      <div style="max-width:800px;margin:0 auto;padding:40px 20px;font-family:sans-serif;">
        <h1>{{.Company}} - Abyssinian Kittens for Sale</h1>
        <p>{{.Description}}</p>
        <h2>Available Abyssinian Kittens</h2>
        <p>We have purebred Abyssinian kittens available in Ruddy, Sorrel, Blue, and Fawn colors. Prices range from $1,100 to $1,300. All kittens come health-checked, vaccinated, and socialized. Visit our <a href="/kittens">kittens page</a> to see currently available Abyssinian kittens for sale and join our waiting list.</p>
        <h2>Our Affiliations</h2>
        <ul>{{range .Affiliations}}<li>{{.}}</li>{{end}}</ul>
        <h2>Contact {{.Company}}</h2>
        <ul>
          <li>Email: <a href="mailto:{{.Email}}">{{.Email}}</a></li>
          <li>Phone: {{.Phone}}</li>
          <li>Address: {{.Address}}</li>
        </ul>
        <p>Payment methods accepted: {{.Payment}}</p>
        <h2>Quick Links</h2>
        <ul>
          <li><a href="/">Home</a></li>
          <li><a href="/kittens">Available Abyssinian Kittens for Sale</a></li>
          <li><a href="/care">Abyssinian Cat Care Guide</a></li>
          <li><a href="/about">About Us &amp; Contact</a></li>
        </ul>
      </div>
    </noscript>
`))
