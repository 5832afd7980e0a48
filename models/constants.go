package models

// App views (the state machine's `view` field)
const (
	ViewLogin        = "LOGIN"
	ViewProfileSetup = "PROFILE_SETUP"
	ViewDashboard    = "DASHBOARD"
	ViewGroupSetup   = "GROUP_SETUP"
	ViewMatchList    = "MATCH_LIST"
	ViewChatList     = "CHAT_LIST"
	ViewMyPage       = "MY_PAGE"
	ViewChat         = "CHAT"
	ViewReview       = "REVIEW"
)

// Languages
const (
	LanguageKorean  = "ko"
	LanguageEnglish = "en"
)

// Genders
const (
	GenderMale   = "남성"
	GenderFemale = "여성"
)

// Match types (1:1 date vs N:N group meeting)
const (
	MatchTypeDate  = "date"
	MatchTypeGroup = "group"
)

// Atmosphere preferences
const (
	AtmosphereRomance    = "연애 지향"
	AtmosphereFriendship = "친목 지향"
)

// Drinking-game style preferences
const (
	GamePreferenceTalk     = "대화 위주"
	GamePreferenceDrinking = "술게임 선호"
)

// Preferred major categories
const (
	MajorTypeAny     = "상관없음"
	MajorTypeMedical = "메디컬"
	MajorTypeArts    = "문과"
	MajorTypeScience = "이과"
	MajorTypeSports  = "예체능"
)

// Message senders
const (
	SenderMe      = "me"
	SenderPartner = "partner"
	SenderSystem  = "system"
)

// Booking sub-flow steps
const (
	BookingStepInput      = "input"
	BookingStepConnecting = "connecting"
	BookingStepConfirmed  = "confirmed"
)

// Appointment statuses ("confirmed" is the only reachable one)
const AppointmentStatusConfirmed = "confirmed"

// Match request statuses during the acceptance handshake
const (
	MatchStatusIdle       = "idle"
	MatchStatusRequesting = "requesting"
	MatchStatusAccepted   = "accepted"
)
