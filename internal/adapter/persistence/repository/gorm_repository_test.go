package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"estimate_agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedEstimate(t *testing.T, repo *EstimateGormRepository, id, session string, createdAt time.Time) entities.Estimate {
	t.Helper()
	expires := createdAt.Add(time.Hour)
	e, err := repo.Create(context.Background(), entities.Estimate{
		ID:                  id,
		SessionID:           session,
		Title:               "Estimate " + id,
		InitialRequirements: "a crm",
		Metadata:            entities.EstimateMetadata{Organization: "Acme", Budget: "10k"},
		Status:              entities.EstimateStatusDraft,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
		ExpiresAt:           &expires,
	})
	require.NoError(t, err)
	return e
}

func TestEstimateGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateGormRepository(newTestDB(t))
	base := time.Now().UTC().Add(-time.Hour)

	seedEstimate(t, repo, "est-1", "sess-1", base)
	seedEstimate(t, repo, "est-2", "sess-1", base.Add(time.Minute))
	seedEstimate(t, repo, "est-3", "sess-2", base.Add(2*time.Minute))

	got, err := repo.GetBySessionID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "est-2", got.ID, "latest estimate of the session")
	assert.Equal(t, "Acme", got.Metadata.Organization)

	missing, err := repo.GetBySessionID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "est-3", recent[0].ID)

	updated, err := repo.UpdateCategoryByID(ctx, "est-1", "cat-crm", entities.EstimateStatusQuestions)
	require.NoError(t, err)
	assert.Equal(t, "cat-crm", updated.SystemCategoryID)
	assert.Equal(t, entities.EstimateStatusQuestions, updated.Status)

	updated, err = repo.UpdateTotalByID(ctx, "est-1", 3500)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, updated.TotalAmount)

	updated, err = repo.FinalizeByID(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstimateStatusCompleted, updated.Status)
	assert.True(t, updated.IsPermanent())

	none, err := repo.UpdateStatusByID(ctx, "est-404", entities.EstimateStatusReview)
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestEstimateItemGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEstimateItemGormRepository(db)
	estimates := NewEstimateGormRepository(db)
	seedEstimate(t, estimates, "est-1", "sess-1", time.Now().UTC())
	seedEstimate(t, estimates, "est-2", "sess-2", time.Now().UTC())

	_, err := repo.CreateBatch(ctx, []entities.EstimateItem{
		{ID: "it-2", EstimateID: "est-1", Name: "Reports", UnitPrice: 500, Quantity: 3, Position: 2},
		{ID: "it-1", EstimateID: "est-1", Name: "Auth", UnitPrice: 1000, Quantity: 2, IsSelected: true, Position: 1, Complexity: entities.ComplexityLow},
		{ID: "it-9", EstimateID: "est-2", Name: "Other", UnitPrice: 1, Quantity: 1, Position: 1},
	})
	require.NoError(t, err)

	items, err := repo.ListByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "it-1", items[0].ID)
	assert.Equal(t, entities.ComplexityLow, items[0].Complexity)

	item, err := repo.UpdateSelection(ctx, "est-1", "it-2", true)
	require.NoError(t, err)
	assert.True(t, item.IsSelected)

	items, err = repo.ListByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, 3500.0, entities.SumSelected(items))

	other, err := repo.UpdateSelection(ctx, "est-1", "it-9", true)
	require.NoError(t, err)
	assert.Empty(t, other.ID, "items of another estimate are not reachable")
}

func TestQuestionGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewQuestionGormRepository(db)
	estimates := NewEstimateGormRepository(db)
	seedEstimate(t, estimates, "est-1", "sess-1", time.Now().UTC())
	seedEstimate(t, estimates, "est-2", "sess-2", time.Now().UTC())

	_, err := repo.CreateBatch(ctx, []entities.Question{
		{ID: "q-2", EstimateID: "est-1", Question: "Deadline?", Position: 20},
		{ID: "q-1", EstimateID: "est-1", Question: "Users?", Position: 10},
		{ID: "q-3", EstimateID: "est-2", Question: "Budget?", Position: 10},
	})
	require.NoError(t, err)

	qs, err := repo.ListByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "q-1", qs[0].ID)

	answered, err := repo.Answer(ctx, "est-1", "q-1", "50")
	require.NoError(t, err)
	assert.True(t, answered.IsAnswered)
	assert.Equal(t, "50", answered.Answer)

	foreign, err := repo.Answer(ctx, "est-1", "q-3", "x")
	require.NoError(t, err)
	assert.Empty(t, foreign.ID)

	remaining, err := repo.CountUnanswered(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestChildRows_RequireParentEstimate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := NewEstimateItemGormRepository(db).CreateBatch(ctx, []entities.EstimateItem{
		{ID: "it-1", EstimateID: "ghost", Name: "Auth", UnitPrice: 1, Quantity: 1},
	})
	assert.Error(t, err, "line item without an estimate must be rejected")

	_, err = NewQuestionGormRepository(db).CreateBatch(ctx, []entities.Question{
		{ID: "q-1", EstimateID: "ghost", Question: "Users?"},
	})
	assert.Error(t, err, "question without an estimate must be rejected")
}

func TestChildRows_DeletedWithEstimate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedEstimate(t, NewEstimateGormRepository(db), "est-1", "sess-1", time.Now().UTC())

	items := NewEstimateItemGormRepository(db)
	questions := NewQuestionGormRepository(db)
	_, err := items.CreateBatch(ctx, []entities.EstimateItem{{ID: "it-1", EstimateID: "est-1", Name: "Auth", UnitPrice: 1, Quantity: 1}})
	require.NoError(t, err)
	_, err = questions.CreateBatch(ctx, []entities.Question{{ID: "q-1", EstimateID: "est-1", Question: "Users?"}})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&estimateRecord{ID: "est-1"}).Error)

	leftItems, err := items.ListByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	assert.Empty(t, leftItems)
	leftQuestions, err := questions.ListByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	assert.Empty(t, leftQuestions)
}

func TestCatalogGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogGormRepository(newTestDB(t))

	n, err := repo.CountCategories(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.CreateCategories(ctx, []entities.SystemCategory{
		{ID: "cat-inv", Name: "Inventory", Slug: "inventory", Keywords: []string{"stock", "sku"}},
		{ID: "cat-crm", Name: "CRM", Slug: "crm", DefaultQuestions: []string{"How many users?"}},
	}))
	require.NoError(t, repo.CreateTemplates(ctx, []entities.QuestionTemplate{
		{ID: "t-2", Category: "common", Question: "Deadline?", Position: 20},
		{ID: "t-1", Category: "common", Question: "Users?", Position: 10},
		{ID: "t-3", Category: "crm", Question: "Pipeline?", Position: 10},
	}))

	cats, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "CRM", cats[0].Name)
	assert.Equal(t, []string{"stock", "sku"}, cats[1].Keywords)
	assert.Equal(t, []string{}, cats[1].DefaultQuestions)

	cat, err := repo.GetCategoryByID(ctx, "cat-crm")
	require.NoError(t, err)
	assert.Equal(t, []string{"How many users?"}, cat.DefaultQuestions)

	missing, err := repo.GetCategoryByID(ctx, "cat-x")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	common, err := repo.ListTemplatesByCategory(ctx, "common")
	require.NoError(t, err)
	require.Len(t, common, 2)
	assert.Equal(t, "t-1", common[0].ID)

	count, err := repo.CountTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAPIKeyGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAPIKeyGormRepository(db)

	require.NoError(t, db.Create(&[]apiKeyRecord{
		{ID: "k-1", UserID: "u-1", KeyValue: "live-key", IsActive: true},
		{ID: "k-2", UserID: "u-1", KeyValue: "revoked-key", IsActive: false},
	}).Error)

	key, err := repo.FindActive(ctx, "live-key")
	require.NoError(t, err)
	assert.Equal(t, "k-1", key.ID)

	revoked, err := repo.FindActive(ctx, "revoked-key")
	require.NoError(t, err)
	assert.Empty(t, revoked.ID)
}
