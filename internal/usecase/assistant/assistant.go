package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"sportfields/internal/pkg/errs"
)

var ErrPlanGeneration = errs.New("training plan generation failed")

const systemPrompt = "You are a professional trainer creating personalized weekly training schedules."

// Common exercise names skip the translation API entirely.
var exerciseDictionary = map[string]string{
	"incalzire":    "warming-up",
	"sut":          "shooting",
	"genuflexiuni": "squats",
	"flotari":      "push-ups",
	"abdomen":      "core exercises",
	"alergare":     "running",
	"sarituri":     "jumping",
	"jonglerii":    "juggling",
	"pasare":       "passing",
	"pase":         "passing",
	"dribbling":    "dribbling",
}

// ChatCompleter produces the raw weekly plan text.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Translator renders exercise and sport names in English for the video
// search; query text going to the model stays Romanian.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// TutorialFinder resolves an exercise to a whitelisted tutorial URL.
// An empty URL means nothing matched.
type TutorialFinder interface {
	FindTutorial(ctx context.Context, sport, exercise, sportEnglish string) (string, error)
}

// AthleteProfile carries everything the prompt personalizes on.
type AthleteProfile struct {
	Sport             string
	Experience        string
	Age               string
	Gender            string
	LastPracticed     string
	Weight            string
	Height            string
	PhysicalLevel     string
	TrainingHours     string
	Objectives        string
	PreferredPosition string
	AvailabilityDays  string
}

// TrainingPlan maps a day name to its exercise lines, each optionally
// suffixed with a video anchor.
type TrainingPlan map[string][]string

type Service struct {
	chat      ChatCompleter
	translate Translator
	videos    TutorialFinder
}

func NewService(chat ChatCompleter, translate Translator, videos TutorialFinder) *Service {
	return &Service{
		chat:      chat,
		translate: translate,
		videos:    videos,
	}
}

// BuildPlan generates and enriches a weekly plan. The caller bounds the
// whole operation through ctx; translation or video lookups that fail
// degrade to plain exercise lines instead of failing the plan.
func (s *Service) BuildPlan(ctx context.Context, profile AthleteProfile) (TrainingPlan, error) {
	raw, err := s.chat.Complete(ctx, systemPrompt, buildPrompt(profile))
	if err != nil {
		return nil, errs.Mark(err, ErrPlanGeneration)
	}

	plan := parsePlan(raw)

	sportEnglish, err := s.translate.Translate(ctx, profile.Sport, "en")
	if err != nil {
		sportEnglish = profile.Sport
	}

	for day, exercises := range plan {
		for i, line := range exercises {
			name := extractExerciseName(line)
			if name == "" {
				continue
			}

			nameEnglish := s.exerciseInEnglish(ctx, name)

			link, err := s.videos.FindTutorial(ctx, strings.ToLower(profile.Sport), nameEnglish, sportEnglish)
			if err != nil || link == "" {
				continue
			}
			plan[day][i] = fmt.Sprintf(`%s <a href="%s" target="_blank">[Video]</a>`, line, link)
		}
	}

	return plan, nil
}

func (s *Service) exerciseInEnglish(ctx context.Context, name string) string {
	if english, ok := exerciseDictionary[strings.ToLower(strings.TrimSpace(name))]; ok {
		return english
	}
	english, err := s.translate.Translate(ctx, name, "en")
	if err != nil {
		return name
	}
	return english
}

func buildPrompt(p AthleteProfile) string {
	return fmt.Sprintf(`Creeaza un program de antrenament saptamanal personalizat. Detaliile sportivului sunt:
- Sport: %s
- Cat de des practica acest sport: %s
- Varsta: %s
- Gen: %s
- Ultima data cand a practicat sportul: %s
- Greutate: %s kg
- Inaltime: %s cm
- Nivel de pregatire fizica: %s
- Ore alocate pentru antrenament pe saptamana: %s
- Obiectivul principal al sportivului: %s
- Pozitia pe care prefera sa joace: %s
- Zile disponibile pentru antrenamente: %s

Formateaza raspunsul astfel:
1. Luni
  - Exercitii de incalzire (durata totala)
      * exercitiul 1 (durata + explicare detaliata : in ce consta exercitiul, cum se realizeaza).
      * exercitiul 2 (durata + explicare detaliata : in ce consta exercitiul, cum se realizeaza).
      * ...
  - Exercitiu 1 - denumire (durata + explicare detaliata : in ce consta exercitiul, cum se realizeaza).
  - Exercitiu 2 - denumire (durata + explicare detaliata : in ce consta exercitiul, cum se realizeaza).
  - ...

(Continua asa pentru restul zilelor selectate de sportiv. Raspunsul trebuie sa nu aiba diacritice si sa inceapa cu o propozitie scurta. Exercitiile trebuie sa fie cat mai simple.)`,
		p.Sport, p.Experience, p.Age, p.Gender, p.LastPracticed, p.Weight, p.Height,
		p.PhysicalLevel, p.TrainingHours, p.Objectives, p.PreferredPosition, p.AvailabilityDays)
}

// dayHeading matches numbered day lines like "1. Luni".
var dayHeading = regexp.MustCompile(`(?m)^\d+\.\s?\p{Lu}\p{Ll}+`)

// exerciseName pulls the bare name out of a plan line, dropping the
// "Exercitiu N -" or "*" prefixes and anything after ":" or "-".
var exerciseName = regexp.MustCompile(`^(?:Exercitiu \d+ - |\* )?([^:(\-]+)`)

var dayNumber = regexp.MustCompile(`^\d+\.\s?`)

// parsePlan splits the model output into day sections and their
// exercise lines. The intro sentence before the first day is dropped.
func parsePlan(raw string) TrainingPlan {
	plan := TrainingPlan{}

	headings := dayHeading.FindAllStringIndex(raw, -1)
	for i, heading := range headings {
		end := len(raw)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		section := strings.TrimSpace(raw[heading[0]:end])

		lines := strings.Split(section, "\n")
		dayName := strings.TrimSpace(dayNumber.ReplaceAllString(lines[0], ""))

		var exercises []string
		for _, line := range lines[1:] {
			cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
			if cleaned == "" {
				continue
			}
			exercises = append(exercises, cleaned)
		}
		plan[dayName] = exercises
	}

	return plan
}

func extractExerciseName(line string) string {
	match := exerciseName.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
