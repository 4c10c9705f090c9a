//go:build integration

package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run with: HEYFARMER_TEST_POSTGRES_DSN=... go test -tags integration ./internal/infra/persistence/postgres/
const testDSNEnv = "HEYFARMER_TEST_POSTGRES_DSN"

func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// seedProfile creates a user and its profile with the given role.
func seedProfile(t *testing.T, db *gorm.DB, role entity.Role, mutate func(*entity.Profile)) *entity.Profile {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Email: uuid.NewString() + "@heyfarmer.test"}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	profile := &entity.Profile{ID: user.ID, Name: "Grower " + user.ID.String()[:8], Role: role}
	if mutate != nil {
		mutate(profile)
	}
	stored, err := NewProfileRepository(db).Ensure(ctx, profile)
	require.NoError(t, err)

	return stored
}

func seedPost(t *testing.T, db *gorm.DB, owner uuid.UUID, visibility entity.Visibility) *entity.Post {
	t.Helper()

	post := &entity.Post{
		UserID:     owner,
		Title:      "Duck eggs " + string(visibility),
		Type:       entity.PostTypeProduce,
		Visibility: visibility,
		Status:     entity.PostStatusActive,
	}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))

	return post
}

func TestIntegration_GetOrCreateConversation(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	first, err := repo.GetOrCreateConversation(ctx, a, b)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	swapped, err := repo.GetOrCreateConversation(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, first, swapped)

	var conversations int64
	require.NoError(t, db.Model(&model.ConversationModel{}).
		Where("participant_low IN ? AND participant_high IN ?", []uuid.UUID{a, b}, []uuid.UUID{a, b}).
		Count(&conversations).Error)
	assert.EqualValues(t, 1, conversations)

	var participants int64
	require.NoError(t, db.Model(&model.ParticipantModel{}).Where("conversation_id = ?", first).Count(&participants).Error)
	assert.EqualValues(t, 2, participants)
}

func TestIntegration_GetOrCreateConversationConcurrent(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewConversationRepository(db)
	a, b := uuid.New(), uuid.New()

	const callers = 8
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userA, userB := a, b
			if i%2 == 1 {
				userA, userB = b, a
			}
			ids[i], errs[i] = repo.GetOrCreateConversation(context.Background(), userA, userB)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}

func TestIntegration_ListByConversationNewestPage(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	conversationID, err := NewConversationRepository(db).GetOrCreateConversation(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	const total, limit = 250, 200
	rows := make([]model.MessageModel, 0, total)
	for i := range total {
		rows = append(rows, model.MessageModel{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       uuid.New(),
			Content:        "message",
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		})
	}
	require.NoError(t, db.Omit("Conversation").CreateInBatches(rows, 100).Error)

	repo := NewMessageRepository(db)
	newest, err := repo.ListByConversation(ctx, conversationID, nil, limit)
	require.NoError(t, err)
	require.Len(t, newest, limit)
	assert.True(t, newest[0].CreatedAt.Equal(base.Add((total-limit)*time.Second)))
	assert.True(t, newest[limit-1].CreatedAt.Equal(base.Add((total-1)*time.Second)))
	for i := 1; i < len(newest); i++ {
		assert.True(t, newest[i-1].CreatedAt.Before(newest[i].CreatedAt))
	}

	since := base.Add((total - 6) * time.Second)
	tail, err := repo.ListByConversation(ctx, conversationID, &since, limit)
	require.NoError(t, err)
	assert.Len(t, tail, 5)
}

func TestIntegration_ListActiveScopes(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	farmer := seedProfile(t, db, entity.RoleMarketGardener, nil)
	public := seedPost(t, db, farmer.ID, entity.VisibilityPublic)
	hidden := seedPost(t, db, farmer.ID, entity.VisibilityFarmersOnly)

	repo := NewPostRepository(db)
	ids := func(posts []*entity.Post) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(posts))
		for _, p := range posts {
			out = append(out, p.ID)
		}

		return out
	}

	guestFeed, err := repo.ListActive(ctx, repository.PostQuery{Visibilities: []entity.Visibility{entity.VisibilityPublic}})
	require.NoError(t, err)
	assert.Contains(t, ids(guestFeed), public.ID)
	assert.NotContains(t, ids(guestFeed), hidden.ID)
	for _, post := range guestFeed {
		assert.Equal(t, entity.VisibilityPublic, post.Visibility)
	}

	farmerFeed, err := repo.ListActive(ctx, repository.PostQuery{
		Visibilities: []entity.Visibility{entity.VisibilityPublic, entity.VisibilityFarmersOnly},
	})
	require.NoError(t, err)
	assert.Contains(t, ids(farmerFeed), public.ID)
	assert.Contains(t, ids(farmerFeed), hidden.ID)
}

func TestIntegration_ListSavedScope(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	farmer := seedProfile(t, db, entity.RoleProductionFarmer, nil)
	consumer := seedProfile(t, db, entity.RoleConsumer, nil)
	public := seedPost(t, db, farmer.ID, entity.VisibilityPublic)
	hidden := seedPost(t, db, farmer.ID, entity.VisibilityFarmersOnly)

	saved := NewSavedPostRepository(db)
	require.NoError(t, saved.Save(ctx, consumer.ID, public.ID))
	require.NoError(t, saved.Save(ctx, consumer.ID, hidden.ID))
	require.NoError(t, saved.Save(ctx, consumer.ID, hidden.ID))

	posts, err := saved.ListSaved(ctx, consumer.ID, []entity.Visibility{entity.VisibilityPublic})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, public.ID, posts[0].ID)
}

func TestIntegration_EnsureProfile(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	first := seedProfile(t, db, entity.RoleBackyardGrower, func(p *entity.Profile) { p.Name = "Original" })

	again, err := NewProfileRepository(db).Ensure(ctx, &entity.Profile{ID: first.ID, Name: "Replacement", Role: entity.RoleConsumer})
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
	assert.Equal(t, entity.RoleBackyardGrower, again.Role)

	var count int64
	require.NoError(t, db.Model(&model.ProfileModel{}).Where("id = ?", first.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIntegration_SearchFarmersMatchesBeyondLimit(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()
	county := "garfield"
	tag := "tok" + uuid.NewString()[:8]

	for range 3 {
		seedProfile(t, db, entity.RoleMarketGardener, func(p *entity.Profile) {
			p.County = county
			p.ShowInMarketplace = true
			p.IncludeInSearch = true
		})
	}
	match := seedProfile(t, db, entity.RoleProductionFarmer, func(p *entity.Profile) {
		p.County = county
		p.GrowTags = []string{tag}
		p.ShowInMarketplace = true
		p.IncludeInSearch = true
	})
	// Newest rows first: created after the match so an unfiltered LIMIT 1 would miss it.
	seedProfile(t, db, entity.RoleMarketGardener, func(p *entity.Profile) {
		p.County = county
		p.ShowInMarketplace = true
		p.IncludeInSearch = true
	})

	farmers, err := NewProfileRepository(db).SearchFarmers(ctx, repository.FarmerQuery{
		County: county,
		Tokens: []string{tag},
		Limit:  1,
	})
	require.NoError(t, err)
	require.Len(t, farmers, 1)
	assert.Equal(t, match.ID, farmers[0].ID)
}
