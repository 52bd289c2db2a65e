package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareContext(t *testing.T) {
	data := testResume()

	renderCtx := PrepareContext(data, "html", "modern", testNow)

	assert.Equal(t, "Jane Smith", renderCtx.PersonalInfo.Name)
	assert.Equal(t, "2.1.0", renderCtx.Meta.ResumeVersion)
	assert.Equal(t, "html", renderCtx.Meta.Format)
	assert.Equal(t, "modern", renderCtx.Meta.Theme)
	assert.Equal(t, GeneratorName, renderCtx.Meta.Generator)
	assert.Equal(t, "June 15, 2025", renderCtx.Meta.BuildDateFormatted)
	assert.NotEmpty(t, renderCtx.Meta.BuildID)

	assert.True(t, renderCtx.Utils.HasCertifications)
	assert.True(t, renderCtx.Utils.HasProjects)
	assert.True(t, renderCtx.Utils.HasLanguages)
	assert.False(t, renderCtx.Utils.HasAwards)
	assert.False(t, renderCtx.Utils.HasPublications)
	assert.Equal(t, 10, renderCtx.Utils.TotalExperienceYears)
	assert.Equal(t, 3, renderCtx.Utils.TotalSkillCount)
}

func TestPrepareContext_SkillGroupsDeterministic(t *testing.T) {
	data := testResume()

	// Map iteration order is random; groups must come out sorted by
	// priority regardless
	for i := 0; i < 10; i++ {
		renderCtx := PrepareContext(data, "html", "modern", testNow)
		require.Len(t, renderCtx.SkillGroups, 2)
		assert.Equal(t, "Languages", renderCtx.SkillGroups[0].DisplayName)
		assert.Equal(t, "Tools", renderCtx.SkillGroups[1].DisplayName)
	}
}

func TestPrepareContext_UniqueBuildIDs(t *testing.T) {
	data := testResume()

	first := PrepareContext(data, "html", "modern", testNow)
	second := PrepareContext(data, "html", "modern", testNow)
	assert.NotEqual(t, first.Meta.BuildID, second.Meta.BuildID)
}

func TestSkillGroups_FallsBackToKey(t *testing.T) {
	data := testResume()
	category := data.Skills.Categories["tools"]
	category.DisplayName = ""
	data.Skills.Categories["tools"] = category

	groups := skillGroups(data)
	require.Len(t, groups, 2)
	assert.Equal(t, "tools", groups[1].DisplayName)
}
