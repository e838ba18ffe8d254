package content

import "strings"

// Las sublistas (affiliations, care_tips, payment_methods, links) se editan en memoria y
// solo se persisten cuando se guarda el documento entero. Las funciones devuelven un slice
// nuevo: nunca mutan el original.

// AppendItem agrega item al final; si item está vacío (trim) devuelve la lista sin cambios.
func AppendItem(list []string, item string) []string {
	if strings.TrimSpace(item) == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// RemoveAt quita el elemento i. Índices fuera de rango son no-op.
func RemoveAt[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// AppendLink exige platform y url no vacíos.
func AppendLink(links []SocialLink, link SocialLink) []SocialLink {
	if strings.TrimSpace(link.Platform) == "" || strings.TrimSpace(link.URL) == "" {
		return links
	}
	out := make([]SocialLink, 0, len(links)+1)
	out = append(out, links...)
	return append(out, link)
}

func (h *Home) AddAffiliation(s string)     { h.Affiliations = AppendItem(h.Affiliations, s) }
func (h *Home) RemoveAffiliation(i int)     { h.Affiliations = RemoveAt(h.Affiliations, i) }
func (c *Care) AddCareTip(s string)         { c.CareTips = AppendItem(c.CareTips, s) }
func (c *Care) RemoveCareTip(i int)         { c.CareTips = RemoveAt(c.CareTips, i) }
func (a *About) AddPaymentMethod(s string)  { a.PaymentMethods = AppendItem(a.PaymentMethods, s) }
func (a *About) RemovePaymentMethod(i int)  { a.PaymentMethods = RemoveAt(a.PaymentMethods, i) }
func (m *SocialMedia) AddLink(l SocialLink) { m.Links = AppendLink(m.Links, l) }
func (m *SocialMedia) RemoveLink(i int)     { m.Links = RemoveAt(m.Links, i) }
