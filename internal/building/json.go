package building

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
)

// JSONBuilder emits the resume as machine-readable JSON for API consumers,
// with build provenance and derived analytics grafted on
type JSONBuilder struct{}

// NewJSONBuilder returns the JSON format builder
func NewJSONBuilder() *JSONBuilder {
	return &JSONBuilder{}
}

func (b *JSONBuilder) FormatName() string { return "json" }

func (b *JSONBuilder) FileExtension() string { return "json" }

// Build writes the resume as indented JSON with build_info and analytics
// blocks added at the top level
func (b *JSONBuilder) Build(ctx context.Context, data *types.ResumeData, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", &RenderError{Format: "json", Theme: opts.Theme, Stage: "marshal", Cause: err}
	}

	// Round-trip through a generic map so the extra blocks sit alongside
	// the resume fields rather than nested under a wrapper key
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", &RenderError{Format: "json", Theme: opts.Theme, Stage: "marshal", Cause: err}
	}

	renderCtx := PrepareContext(data, "json", opts.Theme, opts.buildTime())
	doc["build_info"] = buildInfo(renderCtx)
	doc["analytics"] = analytics(data, renderCtx)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", &RenderError{Format: "json", Theme: opts.Theme, Stage: "marshal", Cause: err}
	}
	out = append(out, '\n')

	outPath := filepath.Join(opts.OutputDir, "resume."+b.FileExtension())
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

func buildInfo(renderCtx *Context) map[string]interface{} {
	return map[string]interface{}{
		"build_id":          renderCtx.Meta.BuildID,
		"build_date":        renderCtx.Meta.BuildDate,
		"generator":         renderCtx.Meta.Generator,
		"generator_version": renderCtx.Meta.GeneratorVersion,
		"resume_version":    renderCtx.Meta.ResumeVersion,
		"format":            renderCtx.Meta.Format,
	}
}

func analytics(data *types.ResumeData, renderCtx *Context) map[string]interface{} {
	totalAchievements := 0
	for i := range data.Experience {
		totalAchievements += len(data.Experience[i].Achievements)
	}

	a := map[string]interface{}{
		"total_experience_years": renderCtx.Utils.TotalExperienceYears,
		"total_skills":           renderCtx.Utils.TotalSkillCount,
		"skill_categories":       len(data.Skills.Categories),
		"total_positions":        len(data.Experience),
		"total_achievements":     totalAchievements,
		"active_certifications":  len(data.ActiveCertifications(renderCtx.Meta.BuildDate)),
	}

	if current := data.CurrentRole(); current != nil {
		a["current_role"] = map[string]interface{}{
			"company": current.Company,
			"role":    current.Role,
			"since":   current.StartDate,
		}
	}
	return a
}
