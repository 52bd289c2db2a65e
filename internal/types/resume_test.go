package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestExperience_IsCurrent(t *testing.T) {
	current := Experience{Company: "Acme", Role: "Engineer", StartDate: "2020-01"}
	assert.True(t, current.IsCurrent())

	past := Experience{Company: "Acme", Role: "Engineer", StartDate: "2020-01", EndDate: strPtr("2022-06")}
	assert.False(t, past.IsCurrent())
}

func TestExperience_DurationMonths(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exp      Experience
		expected int
	}{
		{
			name:     "closed range",
			exp:      Experience{StartDate: "2020-01", EndDate: strPtr("2022-01")},
			expected: 24,
		},
		{
			name:     "open range measured to now",
			exp:      Experience{StartDate: "2025-01"},
			expected: 5,
		},
		{
			name:     "same month",
			exp:      Experience{StartDate: "2020-01", EndDate: strPtr("2020-01")},
			expected: 0,
		},
		{
			name:     "invalid start date",
			exp:      Experience{StartDate: "not-a-date"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.exp.DurationMonths(now))
		})
	}
}

func TestCertification_IsExpired(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		cert    Certification
		expired bool
	}{
		{
			name:    "no expiration never expires",
			cert:    Certification{Name: "CKA", Issuer: "CNCF", DateEarned: "2020-01"},
			expired: false,
		},
		{
			name:    "expired last year",
			cert:    Certification{Name: "CKA", Issuer: "CNCF", DateEarned: "2020-01", ExpirationDate: "2024-12"},
			expired: true,
		},
		{
			name:    "expires later this year",
			cert:    Certification{Name: "CKA", Issuer: "CNCF", DateEarned: "2020-01", ExpirationDate: "2025-12"},
			expired: false,
		},
		{
			name:    "expired earlier this year",
			cert:    Certification{Name: "CKA", Issuer: "CNCF", DateEarned: "2020-01", ExpirationDate: "2025-05"},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.cert.IsExpired(now))
		})
	}
}

func TestResumeData_TotalExperienceYears(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	declared := ResumeData{
		ProfessionalSummary: ProfessionalSummary{YearsExperience: 12},
	}
	assert.Equal(t, 12, declared.TotalExperienceYears(now))

	computed := ResumeData{
		Experience: []Experience{
			{StartDate: "2020-01", EndDate: strPtr("2023-01")},
			{StartDate: "2023-01"},
		},
	}
	// 36 months + 29 months = 65 months -> 5 years
	assert.Equal(t, 5, computed.TotalExperienceYears(now))

	minimal := ResumeData{
		Experience: []Experience{
			{StartDate: "2025-05"},
		},
	}
	assert.Equal(t, 1, minimal.TotalExperienceYears(now))
}

func TestResumeData_CurrentRole(t *testing.T) {
	data := ResumeData{
		Experience: []Experience{
			{Company: "Oldco", Role: "Junior", StartDate: "2015-01", EndDate: strPtr("2018-01")},
			{Company: "Acme", Role: "Engineer", StartDate: "2020-01"},
		},
	}

	current := data.CurrentRole()
	require.NotNil(t, current)
	assert.Equal(t, "Acme", current.Company)

	allClosed := ResumeData{
		Experience: []Experience{
			{Company: "Oldco", Role: "Junior", StartDate: "2015-01", EndDate: strPtr("2018-01")},
		},
	}
	assert.Nil(t, allClosed.CurrentRole())
}

func TestResumeData_ActiveCertifications(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	data := ResumeData{
		Certifications: []Certification{
			{Name: "Active", Issuer: "X", DateEarned: "2020-01"},
			{Name: "Expired", Issuer: "X", DateEarned: "2020-01", ExpirationDate: "2021-01"},
		},
	}

	active := data.ActiveCertifications(now)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].Name)

	none := ResumeData{}
	assert.Empty(t, none.ActiveCertifications(now))
}

func TestResumeData_TopSkills(t *testing.T) {
	data := ResumeData{
		Skills: Skills{
			Categories: map[string]SkillCategory{
				"languages": {
					Skills: []Skill{
						{Name: "Go", Proficiency: ProficiencyExpert, YearsExperience: 8},
						{Name: "Rust", Proficiency: ProficiencyBeginner},
					},
				},
				"infra": {
					Skills: []Skill{
						{Name: "Kubernetes", Proficiency: ProficiencyAdvanced, YearsExperience: 5},
						{Name: "Terraform", Proficiency: ProficiencyExpert, YearsExperience: 3},
					},
				},
			},
		},
	}

	top := data.TopSkills(3)
	require.Len(t, top, 3)
	assert.Equal(t, "Go", top[0].Name)
	assert.Equal(t, "Terraform", top[1].Name)
	assert.Equal(t, "Kubernetes", top[2].Name)

	all := data.TopSkills(0)
	assert.Len(t, all, 4)
}

func TestResumeData_TotalSkillCount(t *testing.T) {
	data := ResumeData{
		Skills: Skills{
			Categories: map[string]SkillCategory{
				"a": {Skills: []Skill{{Name: "one"}, {Name: "two"}}},
				"b": {Skills: []Skill{{Name: "three"}}},
			},
		},
	}
	assert.Equal(t, 3, data.TotalSkillCount())

	empty := ResumeData{}
	assert.Equal(t, 0, empty.TotalSkillCount())
}
