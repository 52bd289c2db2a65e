// Package building renders a validated resume into the supported output
// formats. Each format is a Builder produced by the Registry; all builders
// share one prepared render context so every format sees identical data.
package building

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Generator identity stamped into every output
const (
	GeneratorName    = "resume-builder"
	GeneratorVersion = "1.0.0"
)

// SkillGroup is a skill category flattened into deterministic render order
type SkillGroup struct {
	Key         string
	DisplayName string
	Priority    int
	Skills      []types.Skill
}

// Utils holds precomputed section flags and derived figures so templates
// never repeat the computation
type Utils struct {
	HasCertifications    bool
	HasProjects          bool
	HasAwards            bool
	HasPublications      bool
	HasLanguages         bool
	TotalExperienceYears int
	TotalSkillCount      int
}

// Meta identifies a single build run
type Meta struct {
	BuildID            string
	BuildDate          time.Time
	BuildDateFormatted string
	Generator          string
	GeneratorVersion   string
	ResumeVersion      string
	Format             string
	Theme              string
}

// Context is the complete input to a theme template. The resume fields are
// embedded so templates address them directly.
type Context struct {
	*types.ResumeData

	SkillGroups []SkillGroup
	Utils       Utils
	Meta        Meta
}

// PrepareContext assembles the render context for one build. Map-backed
// skill categories are sorted by priority then key so repeated builds of the
// same resume render identically.
func PrepareContext(data *types.ResumeData, format, theme string, now time.Time) *Context {
	return &Context{
		ResumeData:  data,
		SkillGroups: skillGroups(data),
		Utils: Utils{
			HasCertifications:    len(data.Certifications) > 0,
			HasProjects:          len(data.Projects) > 0,
			HasAwards:            len(data.Awards) > 0,
			HasPublications:      len(data.Publications) > 0,
			HasLanguages:         len(data.Languages) > 0,
			TotalExperienceYears: data.TotalExperienceYears(now),
			TotalSkillCount:      data.TotalSkillCount(),
		},
		Meta: Meta{
			BuildID:            uuid.NewString(),
			BuildDate:          now,
			BuildDateFormatted: now.Format("January 2, 2006"),
			Generator:          GeneratorName,
			GeneratorVersion:   GeneratorVersion,
			ResumeVersion:      data.Version,
			Format:             format,
			Theme:              theme,
		},
	}
}

func skillGroups(data *types.ResumeData) []SkillGroup {
	groups := make([]SkillGroup, 0, len(data.Skills.Categories))
	for key, category := range data.Skills.Categories {
		name := category.DisplayName
		if name == "" {
			name = key
		}
		groups = append(groups, SkillGroup{
			Key:         key,
			DisplayName: name,
			Priority:    category.Priority,
			Skills:      category.Skills,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Priority != groups[j].Priority {
			return groups[i].Priority < groups[j].Priority
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
