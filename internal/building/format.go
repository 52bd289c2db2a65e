package building

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/textfmt"
	"github.com/jonathan/resume-builder/internal/types"
)

// proficiencyColors maps skill levels to shields.io badge colors
var proficiencyColors = map[types.Proficiency]string{
	types.ProficiencyExpert:       "brightgreen",
	types.ProficiencyAdvanced:     "green",
	types.ProficiencyIntermediate: "yellow",
	types.ProficiencyBeginner:     "orange",
}

// templateFuncs is the function map shared by the HTML and Markdown builders
func templateFuncs() map[string]interface{} {
	return map[string]interface{}{
		"formatDate":      textfmt.YearMonth,
		"formatDateRange": textfmt.DateRange,
		"formatDuration":  formatDuration,
		"formatPhone":     textfmt.Phone,
		"formatURL":       textfmt.URL,
		"skillLevelClass": skillLevelClass,
		"skillBadge":      skillBadge,
		"shield":          shield,
		"join":            strings.Join,
	}
}

// formatDuration renders a position's length as "3 yrs 2 mos". Open-ended
// positions are measured up to the current month.
func formatDuration(start string, end *string) string {
	exp := types.Experience{StartDate: start, EndDate: end}
	months := exp.DurationMonths(time.Now())
	if months <= 0 {
		return "less than a month"
	}

	years := months / 12
	rem := months % 12

	var parts []string
	if years == 1 {
		parts = append(parts, "1 yr")
	} else if years > 1 {
		parts = append(parts, fmt.Sprintf("%d yrs", years))
	}
	if rem == 1 {
		parts = append(parts, "1 mo")
	} else if rem > 1 {
		parts = append(parts, fmt.Sprintf("%d mos", rem))
	}
	return strings.Join(parts, " ")
}

// skillLevelClass maps a proficiency to its CSS class in the HTML themes
func skillLevelClass(p types.Proficiency) string {
	switch p {
	case types.ProficiencyExpert, types.ProficiencyAdvanced, types.ProficiencyIntermediate, types.ProficiencyBeginner:
		return "skill-" + string(p)
	default:
		return "skill-basic"
	}
}

// shield renders a shields.io badge as a Markdown image
func shield(label, message, color string) string {
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s-%s)",
		label, badgeEscape(label), badgeEscape(message), color)
}

// skillBadge renders a skill as a badge colored by proficiency
func skillBadge(s types.Skill) string {
	color, ok := proficiencyColors[s.Proficiency]
	if !ok {
		color = "lightgrey"
	}
	return fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s-%s)",
		s.Name, badgeEscape(s.Name), badgeEscape(string(s.Proficiency)), color)
}

// badgeEscape encodes text for a shields.io badge path segment
func badgeEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "%20")
	return s
}
