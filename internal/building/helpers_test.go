package building

import (
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

var testNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func testResume() *types.ResumeData {
	end := "2022-01"
	return &types.ResumeData{
		Version:     "2.1.0",
		LastUpdated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PersonalInfo: types.PersonalInfo{
			Name:  "Jane Smith",
			Title: "Senior Software Engineer",
			Email: "jane@example.com",
			Phone: "+1-555-123-4567",
			Location: types.Location{
				City:           "Austin",
				State:          "TX",
				Country:        "USA",
				RemoteFriendly: true,
			},
			Links: &types.Links{
				GitHub:   "https://github.com/janesmith",
				LinkedIn: "https://linkedin.com/in/janesmith",
			},
		},
		ProfessionalSummary: types.ProfessionalSummary{
			Headline:        "Engineer who ships reliable distributed systems",
			Overview:        "A decade of experience building and operating distributed systems at scale.",
			KeyStrengths:    []string{"Distributed systems", "Mentorship", "Incident response"},
			YearsExperience: 10,
		},
		Experience: []types.Experience{
			{
				Company:   "Acme Corp",
				Role:      "Senior Engineer",
				StartDate: "2022-03",
				Location:  "Austin, TX",
				Achievements: []types.Achievement{
					{
						Description: "Led migration of payment services to a new platform",
						Impact:      types.ImpactHigh,
						Metrics:     []types.Metric{{Value: "40", Unit: "%", Improvement: true}},
					},
				},
			},
			{
				Company:   "Initech",
				Role:      "Engineer",
				StartDate: "2018-06",
				EndDate:   &end,
				Achievements: []types.Achievement{
					{Description: "Built the internal reporting pipeline from scratch"},
				},
			},
		},
		Skills: types.Skills{
			Categories: map[string]types.SkillCategory{
				"tools": {
					DisplayName: "Tools",
					Priority:    2,
					Skills:      []types.Skill{{Name: "Kubernetes", Proficiency: types.ProficiencyAdvanced, YearsExperience: 5}},
				},
				"languages": {
					DisplayName: "Languages",
					Priority:    1,
					Skills: []types.Skill{
						{Name: "Go", Proficiency: types.ProficiencyExpert, YearsExperience: 8},
						{Name: "Python", Proficiency: types.ProficiencyAdvanced, YearsExperience: 6},
					},
				},
			},
		},
		Education: []types.Education{
			{
				Institution:    "University of Texas",
				Degree:         "BS",
				FieldOfStudy:   "Computer Science",
				GraduationDate: "2015",
				Honors:         []string{"Magna Cum Laude"},
			},
		},
		Certifications: []types.Certification{
			{Name: "CKA", Issuer: "CNCF", DateEarned: "2023-01", ExpirationDate: "2026-01"},
		},
		Projects: []types.Project{
			{
				Name:         "opentelemetry-exporter",
				Description:  "An exporter for shipping traces to multiple backends at once",
				Technologies: []string{"Go", "OpenTelemetry"},
				GitHubURL:    "https://github.com/janesmith/otel-exporter",
				Status:       types.ProjectCompleted,
			},
		},
		Languages: []types.Language{
			{Language: "English", Proficiency: types.LanguageNative},
			{Language: "Spanish", Proficiency: types.LanguageConversational},
		},
	}
}
