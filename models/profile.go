package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type UserProfile struct {
	Onboarded       bool    `json:"onboarded"`
	FirstName       string  `json:"first_name"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phone_number"`
	EmailNewsletter bool    `json:"email_newsletter"`
	DiscountOffers  bool    `json:"discount_offers"`
	ProfileImage    *string `json:"profile_image,omitempty"`
}

// Initials returns the uppercased first letter of the first name, or "" when
// the name is blank.
func (p UserProfile) Initials() string {
	name := strings.TrimSpace(p.FirstName)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

func (p UserProfile) HasImage() bool {
	return p.ProfileImage != nil && *p.ProfileImage != ""
}
