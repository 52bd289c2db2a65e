package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/types"
)

// executeCommand runs the CLI in-process with the given arguments and
// returns its combined output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every command flag variable to its default between
// test runs, since cobra keeps flag state in package globals
func resetFlags() {
	buildResume = ""
	buildFormats = nil
	buildOutputDir = ""
	buildTheme = ""
	buildSchema = ""
	buildTemplates = ""
	buildConfigPath = ""
	buildClean = false
	buildSequential = false
	buildVerbose = false

	validateResume = ""
	validateSchema = ""

	enhanceResume = ""
	enhanceSections = nil
	enhanceTimeout = enhance.DefaultTimeout
	enhanceAPIKey = ""
	enhanceConfigPath = ""
	enhanceDryRun = false
}

// writeFixtureResume writes a valid resume YAML file into a temp directory
func writeFixtureResume(t *testing.T) string {
	t.Helper()

	end := "2022-01"
	data := types.ResumeData{
		Version:     "2.1.0",
		LastUpdated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PersonalInfo: types.PersonalInfo{
			Name:  "Jane Smith",
			Title: "Senior Software Engineer",
			Email: "jane@example.com",
			Location: types.Location{
				City:    "Austin",
				State:   "TX",
				Country: "USA",
			},
		},
		ProfessionalSummary: types.ProfessionalSummary{
			Headline: "Engineer who ships reliable distributed systems",
			Overview: "Senior engineer with a decade of experience designing, building, and operating " +
				"distributed systems at scale, with a focus on reliability and developer experience.",
			KeyStrengths:    []string{"Distributed systems", "Mentorship", "Incident response"},
			YearsExperience: 10,
		},
		Experience: []types.Experience{
			{
				Company:   "Acme Corp",
				Role:      "Senior Engineer",
				StartDate: "2022-03",
				Achievements: []types.Achievement{
					{Description: "Led migration of payment services to a new platform"},
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
				"languages": {
					DisplayName: "Languages",
					Priority:    1,
					Skills: []types.Skill{
						{Name: "Go", Proficiency: types.ProficiencyExpert, YearsExperience: 8},
					},
				},
			},
		},
		Education: []types.Education{
			{Institution: "University of Texas", Degree: "BS", GraduationDate: "2015"},
		},
	}

	raw, err := yaml.Marshal(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resume.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}
