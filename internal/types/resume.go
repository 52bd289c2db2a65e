// Package types provides type definitions for the resume data model used
// throughout the resume-builder system.
package types

import (
	"sort"
	"time"
)

// Proficiency represents a skill proficiency level
type Proficiency string

// Proficiency levels, from strongest to weakest
const (
	ProficiencyExpert       Proficiency = "expert"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyBeginner     Proficiency = "beginner"
)

// rank orders proficiency levels for sorting; unknown levels rank lowest
func (p Proficiency) rank() int {
	switch p {
	case ProficiencyExpert:
		return 4
	case ProficiencyAdvanced:
		return 3
	case ProficiencyIntermediate:
		return 2
	case ProficiencyBeginner:
		return 1
	default:
		return 0
	}
}

// Impact represents an achievement impact level
type Impact string

// Impact levels
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

// Project status values
const (
	ProjectCompleted   ProjectStatus = "completed"
	ProjectInProgress  ProjectStatus = "in_progress"
	ProjectMaintenance ProjectStatus = "maintenance"
	ProjectArchived    ProjectStatus = "archived"
)

// LanguageProficiency represents spoken-language fluency
type LanguageProficiency string

// Language proficiency values
const (
	LanguageNative         LanguageProficiency = "native"
	LanguageFluent         LanguageProficiency = "fluent"
	LanguageConversational LanguageProficiency = "conversational"
	LanguageBasic          LanguageProficiency = "basic"
)

// Location is the geographic location block of the personal info section
type Location struct {
	City           string `json:"city" yaml:"city" validate:"required,min=2"`
	State          string `json:"state" yaml:"state" validate:"required,min=2"`
	Country        string `json:"country" yaml:"country" validate:"required,min=2"`
	RemoteFriendly bool   `json:"remote_friendly" yaml:"remote_friendly"`
}

// Links holds professional and social media URLs; all optional
type Links struct {
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty" validate:"omitempty,url"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,url"`
	Blog     string `json:"blog,omitempty" yaml:"blog,omitempty" validate:"omitempty,url"`
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty" validate:"omitempty,url"`
}

// PersonalInfo is the contact header of the resume
type PersonalInfo struct {
	Name     string   `json:"name" yaml:"name" validate:"required,min=2,max=100"`
	Title    string   `json:"title" yaml:"title" validate:"required,min=5,max=100"`
	Email    string   `json:"email" yaml:"email" validate:"required,email"`
	Phone    string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location Location `json:"location" yaml:"location" validate:"required"`
	Links    *Links   `json:"links,omitempty" yaml:"links,omitempty"`
}

// ProfessionalSummary is the headline section of the resume
type ProfessionalSummary struct {
	Headline        string   `json:"headline" yaml:"headline" validate:"required,min=10,max=200"`
	Overview        string   `json:"overview" yaml:"overview" validate:"required,min=100,max=1000"`
	KeyStrengths    []string `json:"key_strengths" yaml:"key_strengths" validate:"required,min=3,max=8"`
	YearsExperience int      `json:"years_experience,omitempty" yaml:"years_experience,omitempty" validate:"min=0,max=50"`
	AIEnhanced      bool     `json:"ai_enhanced,omitempty" yaml:"ai_enhanced,omitempty"`
}

// Metric is a quantitative measure attached to an achievement
type Metric struct {
	Value       string `json:"value" yaml:"value" validate:"required"`
	Unit        string `json:"unit" yaml:"unit" validate:"required"`
	Improvement bool   `json:"improvement" yaml:"improvement"`
}

// Achievement is a single accomplishment within a role
type Achievement struct {
	Description  string   `json:"description" yaml:"description" validate:"required,min=20,max=300"`
	Impact       Impact   `json:"impact,omitempty" yaml:"impact,omitempty" validate:"omitempty,oneof=high medium low"`
	Metrics      []Metric `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	AIEnhanced   bool     `json:"ai_enhanced,omitempty" yaml:"ai_enhanced,omitempty"`
}

// Experience is a single professional position.
// EndDate is nil for the current position and rendered as "Present".
type Experience struct {
	Company            string        `json:"company" yaml:"company" validate:"required,min=2,max=100"`
	Role               string        `json:"role" yaml:"role" validate:"required,min=2,max=100"`
	StartDate          string        `json:"start_date" yaml:"start_date" validate:"required,datemonth"`
	EndDate            *string       `json:"end_date,omitempty" yaml:"end_date,omitempty" validate:"omitempty,datemonth"`
	Location           string        `json:"location,omitempty" yaml:"location,omitempty" validate:"max=100"`
	CompanyDescription string        `json:"company_description,omitempty" yaml:"company_description,omitempty" validate:"max=200"`
	Achievements       []Achievement `json:"achievements" yaml:"achievements" validate:"required,min=1,max=12,dive"`
}

// IsCurrent reports whether this is the current position
func (e *Experience) IsCurrent() bool {
	return e.EndDate == nil
}

// DurationMonths returns the duration of the position in months.
// Open-ended positions are measured up to now. Returns 0 for unparseable dates.
func (e *Experience) DurationMonths(now time.Time) int {
	startYear, startMonth, ok := parseYearMonth(e.StartDate)
	if !ok {
		return 0
	}

	endYear, endMonth := now.Year(), int(now.Month())
	if e.EndDate != nil {
		var ok bool
		endYear, endMonth, ok = parseYearMonth(*e.EndDate)
		if !ok {
			return 0
		}
	}

	return (endYear-startYear)*12 + (endMonth - startMonth)
}

// Skill is an individual skill with proficiency and metadata
type Skill struct {
	Name            string      `json:"name" yaml:"name" validate:"required,min=1,max=50"`
	Proficiency     Proficiency `json:"proficiency" yaml:"proficiency" validate:"required,oneof=expert advanced intermediate beginner"`
	YearsExperience int         `json:"years_experience,omitempty" yaml:"years_experience,omitempty" validate:"min=0,max=30"`
	Certifications  []string    `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	LastUsed        string      `json:"last_used,omitempty" yaml:"last_used,omitempty"`
}

// SkillCategory groups related skills under a display name
type SkillCategory struct {
	DisplayName string  `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Priority    int     `json:"priority,omitempty" yaml:"priority,omitempty" validate:"min=0,max=10"`
	Skills      []Skill `json:"skills" yaml:"skills" validate:"required,min=1,dive"`
}

// Skills is the complete skills section, categories keyed by identifier
type Skills struct {
	Categories map[string]SkillCategory `json:"categories" yaml:"categories" validate:"required,dive"`
	Summary    string                   `json:"summary,omitempty" yaml:"summary,omitempty" validate:"max=500"`
}

// Education is a single educational credential
type Education struct {
	Institution        string   `json:"institution" yaml:"institution" validate:"required,min=2,max=100"`
	Degree             string   `json:"degree" yaml:"degree" validate:"required,min=2,max=100"`
	FieldOfStudy       string   `json:"field_of_study,omitempty" yaml:"field_of_study,omitempty" validate:"max=100"`
	GraduationDate     string   `json:"graduation_date" yaml:"graduation_date" validate:"required"`
	GPA                float64  `json:"gpa,omitempty" yaml:"gpa,omitempty" validate:"min=0,max=4"`
	Honors             []string `json:"honors,omitempty" yaml:"honors,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty" yaml:"relevant_coursework,omitempty"`
}

// Certification is a professional certification
type Certification struct {
	Name            string `json:"name" yaml:"name" validate:"required,min=2,max=100"`
	Issuer          string `json:"issuer" yaml:"issuer" validate:"required,min=2,max=100"`
	DateEarned      string `json:"date_earned" yaml:"date_earned" validate:"required,datemonth"`
	ExpirationDate  string `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty" validate:"omitempty,datemonth"`
	CredentialID    string `json:"credential_id,omitempty" yaml:"credential_id,omitempty"`
	VerificationURL string `json:"verification_url,omitempty" yaml:"verification_url,omitempty" validate:"omitempty,url"`
	Priority        int    `json:"priority,omitempty" yaml:"priority,omitempty" validate:"min=0,max=10"`
}

// IsExpired reports whether the certification has lapsed as of now.
// Certifications without an expiration date never expire.
func (c *Certification) IsExpired(now time.Time) bool {
	if c.ExpirationDate == "" {
		return false
	}
	expYear, expMonth, ok := parseYearMonth(c.ExpirationDate)
	if !ok {
		return false
	}
	if expYear != now.Year() {
		return expYear < now.Year()
	}
	return expMonth < int(now.Month())
}

// Project is a personal or professional project
type Project struct {
	Name         string        `json:"name" yaml:"name" validate:"required,min=2,max=100"`
	Description  string        `json:"description" yaml:"description" validate:"required,min=20,max=500"`
	Technologies []string      `json:"technologies" yaml:"technologies" validate:"required,min=1"`
	URL          string        `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	GitHubURL    string        `json:"github_url,omitempty" yaml:"github_url,omitempty" validate:"omitempty,url"`
	StartDate    string        `json:"start_date,omitempty" yaml:"start_date,omitempty" validate:"omitempty,datemonth"`
	EndDate      string        `json:"end_date,omitempty" yaml:"end_date,omitempty" validate:"omitempty,datemonth"`
	Status       ProjectStatus `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=completed in_progress maintenance archived"`
	Highlights   []string      `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	AIEnhanced   bool          `json:"ai_enhanced,omitempty" yaml:"ai_enhanced,omitempty"`
}

// Award is a professional award or recognition
type Award struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Issuer      string `json:"issuer" yaml:"issuer" validate:"required"`
	Date        string `json:"date" yaml:"date" validate:"required,datemonth"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Publication is a published work or article
type Publication struct {
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Publication string   `json:"publication" yaml:"publication" validate:"required"`
	Date        string   `json:"date" yaml:"date" validate:"required,datemonth"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	CoAuthors   []string `json:"co_authors,omitempty" yaml:"co_authors,omitempty"`
}

// Language is a spoken language with proficiency
type Language struct {
	Language    string              `json:"language" yaml:"language" validate:"required"`
	Proficiency LanguageProficiency `json:"proficiency" yaml:"proficiency" validate:"required,oneof=native fluent conversational basic"`
}

// Metadata holds optional resume-level metadata
type Metadata struct {
	CreatedDate      string `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	EnhancementNotes string `json:"enhancement_notes,omitempty" yaml:"enhancement_notes,omitempty"`
}

// ResumeData is the root aggregate for a resume. It is loaded once per
// invocation, validated, and passed read-only to each builder.
type ResumeData struct {
	Version             string              `json:"version" yaml:"version" validate:"required,semver"`
	LastUpdated         time.Time           `json:"last_updated" yaml:"last_updated" validate:"required"`
	PersonalInfo        PersonalInfo        `json:"personal_info" yaml:"personal_info" validate:"required"`
	ProfessionalSummary ProfessionalSummary `json:"professional_summary" yaml:"professional_summary" validate:"required"`
	Experience          []Experience        `json:"experience" yaml:"experience" validate:"required,min=1,dive"`
	Skills              Skills              `json:"skills" yaml:"skills" validate:"required"`
	Education           []Education         `json:"education" yaml:"education" validate:"required,min=1,dive"`
	Certifications      []Certification     `json:"certifications,omitempty" yaml:"certifications,omitempty" validate:"omitempty,dive"`
	Projects            []Project           `json:"projects,omitempty" yaml:"projects,omitempty" validate:"omitempty,dive"`
	Awards              []Award             `json:"awards,omitempty" yaml:"awards,omitempty" validate:"omitempty,dive"`
	Publications        []Publication       `json:"publications,omitempty" yaml:"publications,omitempty" validate:"omitempty,dive"`
	Languages           []Language          `json:"languages,omitempty" yaml:"languages,omitempty" validate:"omitempty,dive"`
	Metadata            *Metadata           `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// TotalExperienceYears returns the declared years of experience, or the sum
// of all position durations when not declared. Always at least 1.
func (r *ResumeData) TotalExperienceYears(now time.Time) int {
	if r.ProfessionalSummary.YearsExperience > 0 {
		return r.ProfessionalSummary.YearsExperience
	}

	totalMonths := 0
	for i := range r.Experience {
		totalMonths += r.Experience[i].DurationMonths(now)
	}

	years := totalMonths / 12
	if years < 1 {
		return 1
	}
	return years
}

// CurrentRole returns the current position, or nil if none is open-ended
func (r *ResumeData) CurrentRole() *Experience {
	for i := range r.Experience {
		if r.Experience[i].IsCurrent() {
			return &r.Experience[i]
		}
	}
	return nil
}

// ActiveCertifications returns certifications that have not expired as of now
func (r *ResumeData) ActiveCertifications(now time.Time) []Certification {
	active := make([]Certification, 0, len(r.Certifications))
	for i := range r.Certifications {
		if !r.Certifications[i].IsExpired(now) {
			active = append(active, r.Certifications[i])
		}
	}
	return active
}

// TopSkills returns up to limit skills across all categories, strongest
// proficiency first, ties broken by years of experience
func (r *ResumeData) TopSkills(limit int) []Skill {
	var all []Skill
	for _, category := range r.Skills.Categories {
		all = append(all, category.Skills...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Proficiency.rank() != all[j].Proficiency.rank() {
			return all[i].Proficiency.rank() > all[j].Proficiency.rank()
		}
		return all[i].YearsExperience > all[j].YearsExperience
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// TotalSkillCount returns the number of skills across all categories
func (r *ResumeData) TotalSkillCount() int {
	count := 0
	for _, category := range r.Skills.Categories {
		count += len(category.Skills)
	}
	return count
}

// parseYearMonth parses a YYYY-MM date string
func parseYearMonth(s string) (year, month int, ok bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}
