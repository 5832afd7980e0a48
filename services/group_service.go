package services

import (
	"errors"
	"fmt"

	"github.com/kkh0343-create/campus-pairing/models"
)

// Group setup errors, reported synchronously and blocking step advancement.
var (
	ErrRegionNotResolved = errors.New("city, district and neighborhood must all be selected")
	ErrNotEnoughMembers  = errors.New("not enough friends added for the group size")
	ErrGroupFull         = errors.New("the group already has enough friends")
	ErrNotFinalStep      = errors.New("the wizard has not reached its final step")
)

// MockFriends is the built-in friend roster selectable during group setup.
var MockFriends = []models.GroupMember{
	{Name: "김준호", Major: "컴퓨터공학", Age: 24, MBTI: "ISTP"},
	{Name: "박서준", Major: "경영학과", Age: 23, MBTI: "ENFJ"},
	{Name: "이민호", Major: "체육교육", Age: 24, MBTI: "ESFP"},
	{Name: "최유리", Major: "시각디자인", Age: 22, MBTI: "INFP"},
}

// GroupBuilder walks the group-setup wizard. The date flow is
// Type -> Region -> Preferences (3 steps); the group flow is
// Type -> Members -> Region -> Preferences (4 steps). Next enforces the
// per-step guards; Build yields the immutable MyGroup.
type GroupBuilder struct {
	step      int
	matchType string
	groupSize int

	city     string
	district string
	dong     string

	members []models.GroupMember

	atmosphere      string
	gamePreference  string
	preferredAgeMin int
	preferredAgeMax int
	preferredUniv   string
	preferredMajor  string
}

// NewGroupBuilder starts the wizard at step 1 with the form defaults.
func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{
		step:            1,
		matchType:       models.MatchTypeDate,
		groupSize:       2,
		city:            "서울",
		atmosphere:      models.AtmosphereRomance,
		gamePreference:  models.GamePreferenceTalk,
		preferredAgeMin: 20,
		preferredAgeMax: 25,
		preferredUniv:   "상관없음",
		preferredMajor:  models.MajorTypeAny,
	}
}

// Step returns the current wizard step (1-based).
func (b *GroupBuilder) Step() int { return b.step }

// TotalSteps is 3 for the date flow and 4 for the group flow.
func (b *GroupBuilder) TotalSteps() int {
	if b.matchType == models.MatchTypeGroup {
		return 4
	}
	return 3
}

// SetMatchType switches between the date and group flows. Choosing group
// resets the declared size to 2, like the form does.
func (b *GroupBuilder) SetMatchType(matchType string) error {
	switch matchType {
	case models.MatchTypeDate:
		b.matchType = matchType
	case models.MatchTypeGroup:
		b.matchType = matchType
		b.groupSize = 2
	default:
		return fmt.Errorf("unknown match type: %s", matchType)
	}
	return nil
}

// SetGroupSize declares the N in the N:N meeting (2-4).
func (b *GroupBuilder) SetGroupSize(size int) error {
	if size < 2 || size > 4 {
		return fmt.Errorf("group size must be between 2 and 4, got %d", size)
	}
	b.groupSize = size
	return nil
}

// AddFriend adds a member to the user's side, capped at size-1.
func (b *GroupBuilder) AddFriend(friend models.GroupMember) error {
	if len(b.members) >= b.groupSize-1 {
		return ErrGroupFull
	}
	b.members = append(b.members, friend)
	return nil
}

// RemoveFriend drops the member at an index.
func (b *GroupBuilder) RemoveFriend(idx int) {
	if idx < 0 || idx >= len(b.members) {
		return
	}
	b.members = append(b.members[:idx], b.members[idx+1:]...)
}

// Members returns the chosen friends.
func (b *GroupBuilder) Members() []models.GroupMember {
	out := make([]models.GroupMember, len(b.members))
	copy(out, b.members)
	return out
}

// SelectRegion picks the hierarchical region. Selecting a new city clears the
// levels below it; the triple must exist in the reference data.
func (b *GroupBuilder) SelectRegion(city, district, dong string) error {
	if city == "" || district == "" || dong == "" {
		return ErrRegionNotResolved
	}
	if !HasNeighborhood(city, district, dong) {
		return fmt.Errorf("unknown region: %s %s %s", city, district, dong)
	}
	b.city = city
	b.district = district
	b.dong = dong
	return nil
}

// Region returns the selected city/district/neighborhood triple.
func (b *GroupBuilder) Region() (city, district, dong string) {
	return b.city, b.district, b.dong
}

func (b *GroupBuilder) SetAtmosphere(a string)     { b.atmosphere = a }
func (b *GroupBuilder) SetGamePreference(g string) { b.gamePreference = g }

func (b *GroupBuilder) SetPreferredAges(min, max int) {
	b.preferredAgeMin = min
	b.preferredAgeMax = max
}

func (b *GroupBuilder) SetPreferredUniversity(u string) { b.preferredUniv = u }
func (b *GroupBuilder) SetPreferredMajorType(m string)  { b.preferredMajor = m }

// Next advances the wizard, enforcing the guard of the step being left:
// the Members step requires size-1 friends, the Region step a fully resolved
// city/district/neighborhood.
func (b *GroupBuilder) Next() error {
	isGroup := b.matchType == models.MatchTypeGroup
	switch b.step {
	case 1:
		b.step = 2
	case 2:
		if isGroup {
			if len(b.members) < b.groupSize-1 {
				return fmt.Errorf("%w: need %d, have %d", ErrNotEnoughMembers, b.groupSize-1, len(b.members))
			}
		} else {
			if err := b.regionResolved(); err != nil {
				return err
			}
		}
		b.step = 3
	case 3:
		if isGroup {
			if err := b.regionResolved(); err != nil {
				return err
			}
			b.step = 4
		}
		// step 3 is the final date step; Build finishes it
	case 4:
		// final group step
	}
	return nil
}

// Back steps the wizard backwards (never below step 1).
func (b *GroupBuilder) Back() {
	if b.step > 1 {
		b.step--
	}
}

func (b *GroupBuilder) regionResolved() error {
	if b.city == "" || b.district == "" || b.dong == "" {
		return ErrRegionNotResolved
	}
	return nil
}

// Build validates the final step and returns the immutable criteria object.
// The region string is "<district> <neighborhood>"; size is forced to 1 for
// the date flow.
func (b *GroupBuilder) Build() (models.MyGroup, error) {
	if b.step != b.TotalSteps() {
		return models.MyGroup{}, ErrNotFinalStep
	}
	if err := b.regionResolved(); err != nil {
		return models.MyGroup{}, err
	}

	size := b.groupSize
	if b.matchType == models.MatchTypeDate {
		size = 1
	}
	members := make([]models.GroupMember, len(b.members))
	copy(members, b.members)

	return models.MyGroup{
		MatchType:           b.matchType,
		Size:                size,
		Members:             members,
		Region:              fmt.Sprintf("%s %s", b.district, b.dong),
		Atmosphere:          b.atmosphere,
		GamePreference:      b.gamePreference,
		PreferredAgeMin:     b.preferredAgeMin,
		PreferredAgeMax:     b.preferredAgeMax,
		PreferredUniversity: b.preferredUniv,
		PreferredMajorType:  b.preferredMajor,
	}, nil
}
