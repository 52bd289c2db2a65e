package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Warning codes
const (
	WarnEmploymentGap      = "employment_gap"
	WarnNoCurrentPosition  = "no_current_position"
	WarnManyCurrentRoles   = "multiple_current_positions"
	WarnFewSkills          = "few_skills"
	WarnManySkills         = "many_skills"
	WarnUnquantifiedImpact = "unquantified_impact"
	WarnExpiredCertHeld    = "expired_certification"
	WarnStaleResume        = "stale_resume"
)

const (
	maxGapMonths   = 6
	minSkillCount  = 10
	maxSkillCount  = 50
	staleAfterDays = 365
)

// BusinessWarnings inspects a structurally valid resume for soft problems a
// candidate would want to know about before publishing. None of these block
// a build.
func BusinessWarnings(data *types.ResumeData, now time.Time) []Warning {
	var warnings []Warning

	warnings = append(warnings, gapWarnings(data.Experience)...)
	warnings = append(warnings, currentRoleWarnings(data.Experience)...)
	warnings = append(warnings, skillWarnings(data)...)
	warnings = append(warnings, impactWarnings(data.Experience)...)
	warnings = append(warnings, certificationWarnings(data, now)...)

	if now.Sub(data.LastUpdated) > staleAfterDays*24*time.Hour {
		warnings = append(warnings, Warning{
			Code:    WarnStaleResume,
			Message: fmt.Sprintf("resume was last updated %s, over a year ago", data.LastUpdated.Format("2006-01-02")),
		})
	}

	return warnings
}

// gapWarnings flags gaps longer than six months between consecutive positions
func gapWarnings(experience []types.Experience) []Warning {
	if len(experience) < 2 {
		return nil
	}

	sorted := make([]types.Experience, len(experience))
	copy(sorted, experience)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate < sorted[j].StartDate
	})

	var warnings []Warning
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		if prev.EndDate == nil {
			continue
		}
		gap := monthsBetween(*prev.EndDate, sorted[i].StartDate)
		if gap > maxGapMonths {
			warnings = append(warnings, Warning{
				Code: WarnEmploymentGap,
				Message: fmt.Sprintf("%d-month gap between %s (ended %s) and %s (started %s)",
					gap, prev.Company, *prev.EndDate, sorted[i].Company, sorted[i].StartDate),
			})
		}
	}
	return warnings
}

func currentRoleWarnings(experience []types.Experience) []Warning {
	current := 0
	for i := range experience {
		if experience[i].IsCurrent() {
			current++
		}
	}

	switch {
	case current == 0:
		return []Warning{{
			Code:    WarnNoCurrentPosition,
			Message: "no current position: every experience entry has an end date",
		}}
	case current > 1:
		return []Warning{{
			Code:    WarnManyCurrentRoles,
			Message: fmt.Sprintf("%d positions are marked as current", current),
		}}
	}
	return nil
}

func skillWarnings(data *types.ResumeData) []Warning {
	count := data.TotalSkillCount()
	switch {
	case count < minSkillCount:
		return []Warning{{
			Code:    WarnFewSkills,
			Message: fmt.Sprintf("only %d skills listed; consider adding more (minimum recommended: %d)", count, minSkillCount),
		}}
	case count > maxSkillCount:
		return []Warning{{
			Code:    WarnManySkills,
			Message: fmt.Sprintf("%d skills listed; consider trimming to the most relevant (maximum recommended: %d)", count, maxSkillCount),
		}}
	}
	return nil
}

// impactWarnings flags high-impact achievements that carry no metrics
func impactWarnings(experience []types.Experience) []Warning {
	var warnings []Warning
	for i := range experience {
		for j := range experience[i].Achievements {
			a := &experience[i].Achievements[j]
			if a.Impact == types.ImpactHigh && len(a.Metrics) == 0 {
				warnings = append(warnings, Warning{
					Code: WarnUnquantifiedImpact,
					Message: fmt.Sprintf("high-impact achievement at %s has no metrics: %q",
						experience[i].Company, truncate(a.Description, 60)),
				})
			}
		}
	}
	return warnings
}

func certificationWarnings(data *types.ResumeData, now time.Time) []Warning {
	var warnings []Warning
	for i := range data.Certifications {
		c := &data.Certifications[i]
		if c.IsExpired(now) {
			warnings = append(warnings, Warning{
				Code:    WarnExpiredCertHeld,
				Message: fmt.Sprintf("certification %q expired %s", c.Name, c.ExpirationDate),
			})
		}
	}
	return warnings
}

// monthsBetween returns whole months from one YYYY-MM date to another
func monthsBetween(from, to string) int {
	fromTime, err := time.Parse("2006-01", from)
	if err != nil {
		return 0
	}
	toTime, err := time.Parse("2006-01", to)
	if err != nil {
		return 0
	}
	return (toTime.Year()-fromTime.Year())*12 + int(toTime.Month()) - int(fromTime.Month())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
