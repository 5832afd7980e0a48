package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/kkh0343-create/campus-pairing/models"
)

// DefaultModel is the Gemini model used for every generation call.
const DefaultModel = "gemini-2.5-flash"

// TextGenerator is the thin seam over the generative backend so tests can
// swap in a fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements TextGenerator on the official Gemini SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client from GEMINI_API_KEY / GEMINI_MODEL.
// A missing key is logged but not fatal; calls will fail and every consumer
// degrades to its fallback.
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("❌ GEMINI_API_KEY is missing from environment variables")
		apiKey = "dummy-key"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// ResponderService wraps the generative backend behind the app's three
// conversational entry points plus candidate generation. Every method recovers
// from provider errors with a deterministic, language-appropriate fallback and
// never returns an error to the caller.
type ResponderService struct {
	Generator TextGenerator
}

// GenerateMatches asks for 5 fictional candidate groups matching the criteria.
// On any failure it returns the built-in two-entry sample set.
func (rs *ResponderService) GenerateMatches(ctx context.Context, user models.UserProfile, criteria models.MyGroup) []models.MatchGroup {
	isDate := criteria.MatchType == models.MatchTypeDate
	matchTypeDesc := fmt.Sprintf("%d:%d group meeting team", criteria.Size, criteria.Size)
	if isDate {
		matchTypeDesc = "1:1 blind date partner (single individual)"
	}
	style := "Prefers quiet conversations"
	if criteria.GamePreference == models.GamePreferenceDrinking {
		style = "Loves drinking games"
	}
	kind := "student groups"
	if isDate {
		kind = "students"
	}

	prompt := fmt.Sprintf(`Generate 5 fictional university %s for a matching app in South Korea.

The user is a %s student (%s, %d years old, %s).
They are looking for a %s.

CRITICAL MATCHING CRITERIA:
1. Preferred Region: %s.
2. Atmosphere: %s.
3. Style: %s.
4. Preferred Age Range: %d to %d.
5. Preferred University: %s.
6. Preferred Major Type: %s.

For each member, generate:
- BASIC info: Name, Major, University, Age, Gender.
- EXTENDED info: MBTI, Face Type (e.g., Puppy, Cat), Ideal Type, Values (array of strings).
- Generate a realistic fictional 'profileImage' URL using https://ui-avatars.com/api/?name=NAME&background=random format.

Return a JSON array of objects with keys: id, university, department, avgAge,
region, atmosphere, bio, members (each member with keys: name, major,
university, age, gender, mbti, faceType, idealType, profileImage, values).`,
		kind, user.University, user.Gender, user.Age, user.Major, matchTypeDesc,
		criteria.Region, criteria.Atmosphere, style,
		criteria.PreferredAgeMin, criteria.PreferredAgeMax,
		criteria.PreferredUniversity, criteria.PreferredMajorType)

	raw, err := rs.Generator.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("❌ Gemini generation error: %v", err)
		return SampleMatches()
	}

	var matches []models.MatchGroup
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &matches); err != nil {
		log.Printf("❌ Failed to parse generated matches: %v", err)
		return SampleMatches()
	}
	if len(matches) == 0 {
		return SampleMatches()
	}
	return matches
}

// IcebreakerTopic suggests a conversation topic for a meeting.
func (rs *ResponderService) IcebreakerTopic(ctx context.Context, hint string) string {
	prompt := fmt.Sprintf("Provide a fun conversation topic for a blind date. Short (max 1 sentence). Korean. Context: %s", hint)
	text, err := rs.Generator.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return "서로의 첫인상이 어땠는지 이야기해보세요!"
	}
	return strings.TrimSpace(text)
}

// ReplySuggestion proposes one short reply to the last partner message.
// Quote characters are stripped so the text can be sent verbatim.
func (rs *ResponderService) ReplySuggestion(ctx context.Context, history []models.ChatMessage, language string) string {
	langInstruction := "in English"
	fallback := "Nice to meet you!"
	if language == models.LanguageKorean {
		langInstruction = "in Korean"
		fallback = "반가워요!"
	}

	last := ""
	if len(history) > 0 {
		lastMsg := history[len(history)-1]
		last = fmt.Sprintf("%s: %s", lastMsg.Sender, lastMsg.Text)
	}

	prompt := fmt.Sprintf("Suggest ONE short, casual reply (max 10 words) %s to the last message: %s", langInstruction, last)
	text, err := rs.Generator.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	text = strings.NewReplacer(`"`, "", "'", "").Replace(text)
	return strings.TrimSpace(text)
}

// PersonaReply roleplays the matched partner's next message from the full
// chat history.
func (rs *ResponderService) PersonaReply(ctx context.Context, history []models.ChatMessage, match models.MatchGroup, user models.UserProfile, language string) (string, error) {
	langInstruction := "English"
	if language == models.LanguageKorean {
		langInstruction = "Korean"
	}

	var chatContext strings.Builder
	for _, m := range history {
		fmt.Fprintf(&chatContext, "%s: %s\n", m.Sender, m.Text)
	}

	prompt := fmt.Sprintf(`Roleplay as a university student in a blind date app.
Partner: %s %s student.
Context:
%s
Reply shortly (1-2 sentences) in %s. Friendly tone.`,
		match.University, match.Department, chatContext.String(), langInstruction)

	text, err := rs.Generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Persona generation error: %v", err)
		return "안녕하세요! 반가워요 ㅎㅎ", nil
	}
	if strings.TrimSpace(text) == "" {
		return "안녕하세요!", nil
	}
	return strings.TrimSpace(text), nil
}

// stripCodeFence removes a ```json ... ``` wrapper some model replies carry.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// SampleMatches is the fixed fallback candidate set used whenever the
// generator is unavailable.
func SampleMatches() []models.MatchGroup {
	return []models.MatchGroup{
		{
			ID:         "mock-1",
			University: "연세대학교",
			Department: "경영학과",
			AvgAge:     23,
			Region:     "신촌/홍대",
			Atmosphere: models.AtmosphereFriendship,
			Bio:        "즐겁게 놀 사람 구해요! 술게임 좋아합니다 ㅎㅎ",
			Members: []models.GroupMember{
				{Name: "김민지", Major: "경영", University: "연세대학교", Age: 23, Gender: models.GenderFemale, MBTI: "ENFP", FaceType: "강아지상", IdealType: "유머러스한 사람", ProfileImage: "https://ui-avatars.com/api/?name=김민지&background=FF8FAB&color=fff", Values: []string{"활발함", "솔직함"}},
				{Name: "이수진", Major: "경제", University: "이화여자대학교", Age: 23, Gender: models.GenderFemale, MBTI: "ESFJ", FaceType: "고양이상", IdealType: "키 큰 사람", ProfileImage: "https://ui-avatars.com/api/?name=이수진&background=8DE3D1&color=fff", Values: []string{"배려", "센스"}},
			},
		},
		{
			ID:         "mock-2",
			University: "고려대학교",
			Department: "미디어학부",
			AvgAge:     24,
			Region:     "강남/건대",
			Atmosphere: models.AtmosphereRomance,
			Bio:        "진지하게 만나실 분 찾아요~ 매너 좋으신 분들 환영!",
			Members: []models.GroupMember{
				{Name: "박지영", Major: "미디어", University: "고려대학교", Age: 24, Gender: models.GenderFemale, MBTI: "INFJ", FaceType: "토끼상", IdealType: "다정한 사람", ProfileImage: "https://ui-avatars.com/api/?name=박지영&background=FDF6C5&color=4A4A4A", Values: []string{"차분함", "대화"}},
				{Name: "최유나", Major: "심리", University: "성신여자대학교", Age: 24, Gender: models.GenderFemale, MBTI: "ISFP", FaceType: "여우상", IdealType: "배려심 많은 사람", ProfileImage: "https://ui-avatars.com/api/?name=최유나&background=FEFBF6&color=4A4A4A", Values: []string{"감성", "예의"}},
			},
		},
	}
}
