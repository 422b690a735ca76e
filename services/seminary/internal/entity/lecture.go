package entity

import (
	"strings"
	"time"

	"seminary/pkg/apperr"
)

// CategoryAll disables the category filter of a listing.
const CategoryAll = "all"

type Material struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	StorageKey string    `json:"-"`
	Position   int       `json:"-"`
	CreatedAt  time.Time `json:"-"`
}

type Lecture struct {
	ID               string     `json:"id"`
	Category         string     `json:"category"`
	Series           string     `json:"series"`
	Number           string     `json:"number"`
	Instructor       string     `json:"instructor"`
	Description      string     `json:"description"`
	Duration         string     `json:"duration,omitempty"`
	YoutubeEmbedLink string     `json:"youtubeEmbedLink,omitempty"`
	DriveEmbedLink   string     `json:"driveEmbedLink,omitempty"`
	RegisterDate     time.Time  `json:"registerDate"`
	Materials        []Material `json:"materials"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// LectureSummary is the list-view projection of a lecture.
type LectureSummary struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Series       string    `json:"series"`
	Number       string    `json:"number"`
	Instructor   string    `json:"instructor"`
	Duration     string    `json:"duration,omitempty"`
	RegisterDate time.Time `json:"registerDate"`
}

func (l *Lecture) Summary() LectureSummary {
	return LectureSummary{
		ID:           l.ID,
		Category:     l.Category,
		Series:       l.Series,
		Number:       l.Number,
		Instructor:   l.Instructor,
		Duration:     l.Duration,
		RegisterDate: l.RegisterDate,
	}
}

// StorageKeys lists the blob keys of every material.
func (l *Lecture) StorageKeys() []string {
	keys := make([]string, 0, len(l.Materials))
	for _, m := range l.Materials {
		if m.StorageKey != "" {
			keys = append(keys, m.StorageKey)
		}
	}
	return keys
}

// LectureInput carries the caller-supplied fields of a new lecture.
type LectureInput struct {
	Category         string
	Series           string
	Number           string
	Instructor       string
	Description      string
	Duration         string
	YoutubeEmbedLink string
	DriveEmbedLink   string
}

// Normalize trims every field and rewrites video links to their embed form.
func (in LectureInput) Normalize() LectureInput {
	return LectureInput{
		Category:         strings.TrimSpace(in.Category),
		Series:           strings.TrimSpace(in.Series),
		Number:           strings.TrimSpace(in.Number),
		Instructor:       strings.TrimSpace(in.Instructor),
		Description:      strings.TrimSpace(in.Description),
		Duration:         strings.TrimSpace(in.Duration),
		YoutubeEmbedLink: YoutubeEmbedLink(in.YoutubeEmbedLink),
		DriveEmbedLink:   DriveEmbedLink(in.DriveEmbedLink),
	}
}

func (in LectureInput) Validate() error {
	required := []struct{ name, value string }{
		{"category", in.Category},
		{"series", in.Series},
		{"number", in.Number},
		{"instructor", in.Instructor},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperr.InvalidInput("missing required fields: " + strings.Join(missing, ", "))
	}
	if strings.EqualFold(strings.TrimSpace(in.Category), CategoryAll) {
		return apperr.InvalidInput(`category "all" is reserved`)
	}
	return nil
}

// LecturePatch holds the fields an update replaces; nil leaves a field as is.
type LecturePatch struct {
	Category         *string
	Series           *string
	Number           *string
	Instructor       *string
	Description      *string
	Duration         *string
	YoutubeEmbedLink *string
	DriveEmbedLink   *string
}

func (p LecturePatch) Empty() bool {
	return p.Category == nil && p.Series == nil && p.Number == nil && p.Instructor == nil &&
		p.Description == nil && p.Duration == nil && p.YoutubeEmbedLink == nil && p.DriveEmbedLink == nil
}

// Apply merges the patch into l. Materials are never touched. The merged
// lecture is validated as a whole, so a required field cannot be blanked.
func (p LecturePatch) Apply(l *Lecture) error {
	in := LectureInput{
		Category:         pick(p.Category, l.Category),
		Series:           pick(p.Series, l.Series),
		Number:           pick(p.Number, l.Number),
		Instructor:       pick(p.Instructor, l.Instructor),
		Description:      pick(p.Description, l.Description),
		Duration:         pick(p.Duration, l.Duration),
		YoutubeEmbedLink: pick(p.YoutubeEmbedLink, l.YoutubeEmbedLink),
		DriveEmbedLink:   pick(p.DriveEmbedLink, l.DriveEmbedLink),
	}.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}

	l.Category = in.Category
	l.Series = in.Series
	l.Number = in.Number
	l.Instructor = in.Instructor
	l.Description = in.Description
	l.Duration = in.Duration
	l.YoutubeEmbedLink = in.YoutubeEmbedLink
	l.DriveEmbedLink = in.DriveEmbedLink
	return nil
}

func pick(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
