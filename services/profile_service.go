package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/yeremiapane/little-lemon/models"
	"github.com/yeremiapane/little-lemon/utils"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidEmail = errors.New("invalid email")
)

var (
	onboardingNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	profileNameRe    = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	emailRe          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ProfileService maps the typed UserProfile onto KeyValueStore entries.
// Booleans are written as "true"/"false"; anything other than "true",
// including a missing key, reads back as false.
type ProfileService struct {
	Store KeyValueStore
}

func NewProfileService(store KeyValueStore) *ProfileService {
	return &ProfileService{Store: store}
}

func (s *ProfileService) IsOnboarded(ctx context.Context) (bool, error) {
	return s.getBool(ctx, KeyIsOnboarded)
}

// CompleteOnboarding validates and stores the onboarding form, then sets the
// onboarded flag last so a failed write leaves the user on onboarding.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, firstName, email string) error {
	if firstName == "" || !onboardingNameRe.MatchString(firstName) {
		return ErrInvalidName
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}

	if err := s.Store.Set(ctx, KeyFirstName, firstName); err != nil {
		return err
	}
	if err := s.Store.Set(ctx, KeyEmail, email); err != nil {
		return err
	}
	if err := s.setBool(ctx, KeyIsOnboarded, true); err != nil {
		return err
	}

	utils.InfoLogger.Info("Onboarding completed")
	return nil
}

func (s *ProfileService) Load(ctx context.Context) (models.UserProfile, error) {
	var p models.UserProfile
	var err error

	if p.Onboarded, err = s.getBool(ctx, KeyIsOnboarded); err != nil {
		return p, err
	}
	if p.FirstName, _, err = s.Store.Get(ctx, KeyFirstName); err != nil {
		return p, err
	}
	if p.Email, _, err = s.Store.Get(ctx, KeyEmail); err != nil {
		return p, err
	}
	if p.PhoneNumber, _, err = s.Store.Get(ctx, KeyPhoneNumber); err != nil {
		return p, err
	}
	if p.EmailNewsletter, err = s.getBool(ctx, KeyEmailNewsletter); err != nil {
		return p, err
	}
	if p.DiscountOffers, err = s.getBool(ctx, KeyDiscountOffers); err != nil {
		return p, err
	}

	img, ok, err := s.Store.Get(ctx, KeyProfileImage)
	if err != nil {
		return p, err
	}
	if ok && img != "" {
		p.ProfileImage = &img
	}

	return p, nil
}

// Save validates and writes every editable field. The image key is set when
// p carries an image and removed otherwise. Fields already written stay
// written if a later write fails.
func (s *ProfileService) Save(ctx context.Context, p models.UserProfile) error {
	if err := ValidateProfile(p); err != nil {
		return err
	}

	writes := []struct {
		key   string
		value string
	}{
		{KeyFirstName, p.FirstName},
		{KeyEmail, p.Email},
		{KeyPhoneNumber, p.PhoneNumber},
		{KeyEmailNewsletter, strconv.FormatBool(p.EmailNewsletter)},
		{KeyDiscountOffers, strconv.FormatBool(p.DiscountOffers)},
	}
	for _, w := range writes {
		if err := s.Store.Set(ctx, w.key, w.value); err != nil {
			return err
		}
	}

	if p.HasImage() {
		return s.Store.Set(ctx, KeyProfileImage, *p.ProfileImage)
	}
	return s.Store.Remove(ctx, KeyProfileImage)
}

func (s *ProfileService) SetProfileImage(ctx context.Context, ref string) error {
	if ref == "" {
		return s.RemoveProfileImage(ctx)
	}
	return s.Store.Set(ctx, KeyProfileImage, ref)
}

func (s *ProfileService) RemoveProfileImage(ctx context.Context) error {
	return s.Store.Remove(ctx, KeyProfileImage)
}

// Logout erases every stored key, which returns the app to onboarding.
func (s *ProfileService) Logout(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return err
	}
	utils.InfoLogger.Info("Profile store cleared on logout")
	return nil
}

// ValidateProfile applies the profile form rules: letters, spaces,
// apostrophes and hyphens in the name, and a basic email shape.
func ValidateProfile(p models.UserProfile) error {
	if !profileNameRe.MatchString(p.FirstName) {
		return ErrInvalidName
	}
	if !emailRe.MatchString(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func (s *ProfileService) getBool(ctx context.Context, key string) (bool, error) {
	v, _, err := s.Store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *ProfileService) setBool(ctx context.Context, key string, v bool) error {
	return s.Store.Set(ctx, key, strconv.FormatBool(v))
}
