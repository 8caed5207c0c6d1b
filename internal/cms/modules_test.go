package cms

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListModules_SeededAndOrdered(t *testing.T) {
	svc := setupTestService(t)

	modules, err := svc.ListModules(context.Background())
	require.NoError(t, err)

	require.Len(t, modules, len(content.ModuleIDs))
	for i := 1; i < len(modules); i++ {
		assert.LessOrEqual(t, modules[i-1].Order, modules[i].Order)
	}
	assert.Equal(t, content.ModuleHero, modules[0].ID)
	_, ok := modules[0].Content.(content.HeroContent)
	assert.True(t, ok)
}

func TestToggleModule_Idempotent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	first, err := svc.ToggleModule(ctx, "faq", true)
	require.NoError(t, err)
	second, err := svc.ToggleModule(ctx, "faq", true)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Enabled, second[i].Enabled)
		assert.Equal(t, first[i].Content, second[i].Content)
	}

	m, err := svc.GetModule(ctx, "faq")
	require.NoError(t, err)
	assert.True(t, m.Enabled)

	list, err := svc.ToggleModule(ctx, "faq", false)
	require.NoError(t, err)
	for _, m := range list {
		if m.ID == content.ModuleFAQ {
			assert.False(t, m.Enabled)
		}
	}

	enabled, err := svc.ListEnabledModules(ctx)
	require.NoError(t, err)
	assert.Len(t, enabled, len(content.ModuleIDs)-1)
}

func TestToggleModule_UnknownID(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.ToggleModule(context.Background(), "carousel", true)

	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.True(t, errors.Is(err, content.ErrUnknownModule))
}

func TestUpdateModule_FieldsIndependent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	before, err := svc.GetModule(ctx, "hero")
	require.NoError(t, err)

	order := int64(42)
	updated, err := svc.UpdateModule(ctx, content.ModulePatch{ID: "hero", Order: &order})
	require.NoError(t, err)
	assert.Equal(t, int64(42), updated.Order)
	assert.Equal(t, before.Content, updated.Content, "content untouched by an order patch")
	assert.Equal(t, before.Enabled, updated.Enabled)

	updated, err = svc.UpdateModule(ctx, content.ModulePatch{
		ID:      "hero",
		Content: json.RawMessage(`{"headline":"New headline","youtubeUrl":"https://youtu.be/abc"}`),
	})
	require.NoError(t, err)
	hero := updated.Content.(content.HeroContent)
	assert.Equal(t, "New headline", hero.Headline)
	assert.Equal(t, "https://youtu.be/abc", hero.YouTubeURL)
	assert.Equal(t, int64(42), updated.Order)

	_, err = svc.UpdateModule(ctx, content.ModulePatch{ID: "story", Content: json.RawMessage(`{"paragraphs":1}`)})
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestReorderModules(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	list, err := svc.ReorderModules(ctx, []OrderUpdate{{ID: "faq", Order: 0}, {ID: "hero", Order: 20}})
	require.NoError(t, err)

	assert.Equal(t, content.ModuleFAQ, list[0].ID)
	assert.Equal(t, content.ModuleHero, list[len(list)-1].ID)
}

func TestBulkUpdateModules(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	list, err := svc.BulkUpdateModules(ctx, []content.Module{
		{ID: content.ModuleStory, Enabled: false, Order: 1, Content: content.StoryContent{Title: "Our story", Paragraphs: []string{"One"}}},
		{ID: content.ModuleProducts, Enabled: true, Order: 2, Content: content.ProductsContent{Title: "Top 5", ShowCount: 5}},
	})
	require.NoError(t, err)

	byID := map[content.ModuleID]content.Module{}
	for _, m := range list {
		byID[m.ID] = m
	}
	assert.False(t, byID[content.ModuleStory].Enabled)
	assert.Equal(t, "Our story", byID[content.ModuleStory].Content.(content.StoryContent).Title)
	assert.Equal(t, 5, byID[content.ModuleProducts].Content.(content.ProductsContent).ShowCount)
}

func TestReplaceModuleItems(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	m, err := svc.ReplaceModuleItems(ctx, "faq", json.RawMessage(`[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`))
	require.NoError(t, err)
	faq := m.Content.(content.FAQContent)
	assert.Len(t, faq.Items, 2)
	assert.Equal(t, "Frequently asked questions", faq.Title, "title is kept")

	m, err = svc.ReplaceModuleItems(ctx, "faq", json.RawMessage(`[{"question":"Only","answer":"One"}]`))
	require.NoError(t, err)
	assert.Len(t, m.Content.(content.FAQContent).Items, 1, "items are replaced, not appended")

	_, err = svc.ReplaceModuleItems(ctx, "hero", json.RawMessage(`[]`))
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
