package services

import (
	"log"

	"github.com/google/uuid"

	"github.com/kkh0343-create/campus-pairing/models"
)

// ProfileBuilder assembles a UserProfile from the setup form. The profile is
// an immutable value object once built; validation is presence-only.
type ProfileBuilder struct {
	profile models.UserProfile
}

// NewProfileBuilder starts a builder with the form's defaults.
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{profile: models.UserProfile{
		Gender:     models.GenderMale,
		University: "경북대학교",
		IsVerified: true,
		FaceType:   "강아지상",
		MBTI:       "ISFP",
	}}
}

func (b *ProfileBuilder) SetName(name string) *ProfileBuilder       { b.profile.Name = name; return b }
func (b *ProfileBuilder) SetAge(age int) *ProfileBuilder            { b.profile.Age = age; return b }
func (b *ProfileBuilder) SetGender(gender string) *ProfileBuilder   { b.profile.Gender = gender; return b }
func (b *ProfileBuilder) SetUniversity(u string) *ProfileBuilder    { b.profile.University = u; return b }
func (b *ProfileBuilder) SetMajor(major string) *ProfileBuilder     { b.profile.Major = major; return b }
func (b *ProfileBuilder) SetBio(bio string) *ProfileBuilder         { b.profile.Bio = bio; return b }
func (b *ProfileBuilder) SetMBTI(mbti string) *ProfileBuilder       { b.profile.MBTI = mbti; return b }
func (b *ProfileBuilder) SetInstaID(id string) *ProfileBuilder      { b.profile.InstaID = id; return b }
func (b *ProfileBuilder) SetFaceType(ft string) *ProfileBuilder     { b.profile.FaceType = ft; return b }
func (b *ProfileBuilder) SetIdealType(it string) *ProfileBuilder    { b.profile.IdealType = it; return b }
func (b *ProfileBuilder) SetValues(vals []string) *ProfileBuilder   { b.profile.Values = vals; return b }
func (b *ProfileBuilder) SetProfileImage(url string) *ProfileBuilder {
	b.profile.ProfileImage = url
	return b
}

// Build validates the required fields and returns the finished profile.
func (b *ProfileBuilder) Build() (models.UserProfile, error) {
	if b.profile.Name == "" || b.profile.Age == 0 || b.profile.Major == "" || b.profile.Bio == "" {
		return models.UserProfile{}, ErrMissingProfileFields
	}
	profile := b.profile
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	log.Printf("✅ Built profile for %s, %d (%s)", profile.Name, profile.Age, profile.Major)
	return profile, nil
}
