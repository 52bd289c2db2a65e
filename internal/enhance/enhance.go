// Package enhance rewrites selected resume text through an LLM. Every call
// is bounded by a timeout, and any failure falls back to the original text,
// so enhancement can never make a resume worse or block a build.
package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds a single LLM call
const DefaultTimeout = 30 * time.Second

// promptFile is the embedded prompt template file for enhancement
const promptFile = "enhance.json"

// Section names accepted by Enhance
const (
	SectionSummary      = "summary"
	SectionAchievements = "achievements"
	SectionProjects     = "projects"
)

// Length bounds enforced on rewritten text; out-of-bounds rewrites are
// discarded in favor of the original
const (
	summaryMinLen     = 100
	summaryMaxLen     = 1000
	achievementMinLen = 20
	achievementMaxLen = 300
	projectMinLen     = 20
	projectMaxLen     = 500
)

// Result reports what one enhancement run changed
type Result struct {
	// Data is a copy of the input resume with rewrites applied
	Data *types.ResumeData
	// Enhanced counts fields that were rewritten
	Enhanced int
	// Skipped counts fields kept as-is after a failed or rejected rewrite
	Skipped int
	// Failures describes each fallback, one message per skipped field
	Failures []string
}

// Enhancer drives the rewrite flow against an LLM client
type Enhancer struct {
	client  llm.Client
	timeout time.Duration
}

// New returns an enhancer with the given per-call timeout; zero means
// DefaultTimeout
func New(client llm.Client, timeout time.Duration) *Enhancer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enhancer{client: client, timeout: timeout}
}

// Enhance rewrites the requested sections and returns a modified copy of the
// resume. The input is never mutated. An empty section list means all
// sections. Enhance only errors when the resume cannot be copied or a
// section name is unknown; individual LLM failures are recorded in the
// result and the original text kept.
func (e *Enhancer) Enhance(ctx context.Context, data *types.ResumeData, sections []string) (*Result, error) {
	if len(sections) == 0 {
		sections = []string{SectionSummary, SectionAchievements, SectionProjects}
	}
	for _, section := range sections {
		switch section {
		case SectionSummary, SectionAchievements, SectionProjects:
		default:
			return nil, fmt.Errorf("unknown section %q (want %s, %s, or %s)",
				section, SectionSummary, SectionAchievements, SectionProjects)
		}
	}

	copied, err := copyResume(data)
	if err != nil {
		return nil, fmt.Errorf("failed to copy resume: %w", err)
	}

	result := &Result{Data: copied}
	for _, section := range sections {
		switch section {
		case SectionSummary:
			e.enhanceSummary(ctx, copied, result)
		case SectionAchievements:
			e.enhanceAchievements(ctx, copied, result)
		case SectionProjects:
			e.enhanceProjects(ctx, copied, result)
		}
	}

	if result.Enhanced > 0 {
		stampMetadata(copied, result.Enhanced)
	}
	return result, nil
}

func (e *Enhancer) enhanceSummary(ctx context.Context, data *types.ResumeData, result *Result) {
	template, err := prompts.Get(promptFile, "summary_overview")
	if err != nil {
		result.fail("summary", err)
		return
	}

	prompt := prompts.Format(template, map[string]string{
		"Title":    data.PersonalInfo.Title,
		"Years":    strconv.Itoa(data.ProfessionalSummary.YearsExperience),
		"Overview": data.ProfessionalSummary.Overview,
	})

	rewritten, err := e.generate(ctx, prompt, llm.TierStandard, "overview")
	if err != nil {
		result.fail("summary", err)
		return
	}
	if len(rewritten) < summaryMinLen || len(rewritten) > summaryMaxLen {
		result.fail("summary", fmt.Errorf("rewrite length %d outside %d..%d", len(rewritten), summaryMinLen, summaryMaxLen))
		return
	}

	data.ProfessionalSummary.Overview = rewritten
	data.ProfessionalSummary.AIEnhanced = true
	result.Enhanced++
}

func (e *Enhancer) enhanceAchievements(ctx context.Context, data *types.ResumeData, result *Result) {
	template, err := prompts.Get(promptFile, "achievement_description")
	if err != nil {
		result.fail("achievements", err)
		return
	}

	for i := range data.Experience {
		exp := &data.Experience[i]
		for j := range exp.Achievements {
			a := &exp.Achievements[j]
			label := fmt.Sprintf("achievement %d at %s", j+1, exp.Company)

			prompt := prompts.Format(template, map[string]string{
				"Role":        exp.Role,
				"Company":     exp.Company,
				"Description": a.Description,
			})

			rewritten, err := e.generate(ctx, prompt, llm.TierLite, "description")
			if err != nil {
				result.fail(label, err)
				continue
			}
			if len(rewritten) < achievementMinLen || len(rewritten) > achievementMaxLen {
				result.fail(label, fmt.Errorf("rewrite length %d outside %d..%d", len(rewritten), achievementMinLen, achievementMaxLen))
				continue
			}

			a.Description = rewritten
			a.AIEnhanced = true
			result.Enhanced++
		}
	}
}

func (e *Enhancer) enhanceProjects(ctx context.Context, data *types.ResumeData, result *Result) {
	if len(data.Projects) == 0 {
		return
	}

	template, err := prompts.Get(promptFile, "project_description")
	if err != nil {
		result.fail("projects", err)
		return
	}

	for i := range data.Projects {
		p := &data.Projects[i]
		label := fmt.Sprintf("project %s", p.Name)

		prompt := prompts.Format(template, map[string]string{
			"Name":         p.Name,
			"Technologies": strings.Join(p.Technologies, ", "),
			"Description":  p.Description,
		})

		rewritten, err := e.generate(ctx, prompt, llm.TierStandard, "description")
		if err != nil {
			result.fail(label, err)
			continue
		}
		if len(rewritten) < projectMinLen || len(rewritten) > projectMaxLen {
			result.fail(label, fmt.Errorf("rewrite length %d outside %d..%d", len(rewritten), projectMinLen, projectMaxLen))
			continue
		}

		p.Description = rewritten
		p.AIEnhanced = true
		result.Enhanced++
	}
}

// generate performs one bounded LLM call and extracts the named field from
// the JSON response
func (e *Enhancer) generate(ctx context.Context, prompt string, tier llm.ModelTier, field string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(callCtx, prompt, tier)
	if err != nil {
		return "", err
	}

	var response map[string]string
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return "", fmt.Errorf("response is not valid JSON: %w", err)
	}

	text := strings.TrimSpace(response[field])
	if text == "" {
		return "", fmt.Errorf("response is missing %q", field)
	}
	return text, nil
}

func (r *Result) fail(label string, err error) {
	r.Skipped++
	r.Failures = append(r.Failures, fmt.Sprintf("%s: %v", label, err))
}

// copyResume deep-copies the resume through a JSON round trip
func copyResume(data *types.ResumeData) (*types.ResumeData, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var copied types.ResumeData
	if err := json.Unmarshal(raw, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}

func stampMetadata(data *types.ResumeData, enhanced int) {
	note := fmt.Sprintf("AI-enhanced %d field(s) on %s", enhanced, time.Now().Format("2006-01-02"))
	if data.Metadata == nil {
		data.Metadata = &types.Metadata{}
	}
	data.Metadata.EnhancementNotes = note
}
