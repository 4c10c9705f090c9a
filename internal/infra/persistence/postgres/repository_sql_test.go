package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementRecorder collects the SQL a dry-run session would have sent.
type statementRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *statementRecorder) record(db *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statements = append(r.statements, db.Dialector.Explain(db.Statement.SQL.String(), db.Statement.Vars...))
}

func (r *statementRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.statements...)
}

// newDryRunDB builds statements with the postgres dialector without
// connecting to a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *statementRecorder) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=heyfarmer dbname=heyfarmer sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	rec := &statementRecorder{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", rec.record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", rec.record))

	return db, rec
}

func TestConversationRepository_GetOrCreateStatements(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewConversationRepository(db)
	a, b := uuid.New(), uuid.New()

	require.NotPanics(t, func() {
		_, err := repo.GetOrCreateConversation(context.Background(), a, b)
		require.NoError(t, err)
	})

	statements := rec.all()
	require.Len(t, statements, 2)

	assert.Contains(t, statements[0], `INSERT INTO "conversations"`)
	assert.Contains(t, statements[0], `ON CONFLICT ("participant_low","participant_high") DO UPDATE SET`)
	assert.Contains(t, statements[0], `RETURNING "id"`)

	assert.Contains(t, statements[1], `INSERT INTO "conversation_participants"`)
	assert.Contains(t, statements[1], `ON CONFLICT DO NOTHING`)
	assert.NotContains(t, statements[1], "participant_low")
	assert.Contains(t, statements[1], a.String())
	assert.Contains(t, statements[1], b.String())
}

func TestConversationRepository_PairOrderIsCanonical(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	_, err := repo.GetOrCreateConversation(ctx, a, b)
	require.NoError(t, err)
	_, err = repo.GetOrCreateConversation(ctx, b, a)
	require.NoError(t, err)

	statements := rec.all()
	require.Len(t, statements, 4)
	assert.Equal(t, statements[0], statements[2])
	assert.Equal(t, statements[1], statements[3])
}

func TestConversationRepository_RejectsSelfPair(t *testing.T) {
	db, rec := newDryRunDB(t)
	id := uuid.New()

	_, err := NewConversationRepository(db).GetOrCreateConversation(context.Background(), id, id)

	require.Error(t, err)
	assert.Empty(t, rec.all())
}

func TestMessageRepository_ListByConversationStatements(t *testing.T) {
	conversationID := uuid.New()
	since := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		since     bool
		limit     int
		wantOrder string
		wantLimit string
	}{
		{name: "newest page", wantOrder: "ORDER BY created_at DESC,id DESC", wantLimit: "LIMIT 200"},
		{name: "after since", since: true, limit: 50, wantOrder: "ORDER BY created_at ASC,id ASC", wantLimit: "LIMIT 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := newDryRunDB(t)
			var sincePtr *time.Time
			if tt.since {
				sincePtr = &since
			}

			messages, err := NewMessageRepository(db).ListByConversation(context.Background(), conversationID, sincePtr, tt.limit)

			require.NoError(t, err)
			assert.Empty(t, messages)
			statements := rec.all()
			require.Len(t, statements, 1)
			assert.Contains(t, statements[0], tt.wantOrder)
			assert.Contains(t, statements[0], tt.wantLimit)
			assert.Equal(t, tt.since, strings.Contains(statements[0], "created_at >"))
		})
	}
}

func TestPostRepository_ListActiveVisibility(t *testing.T) {
	tests := []struct {
		name         string
		visibilities []entity.Visibility
		wantIn       string
		wantFarmers  bool
	}{
		{
			name:         "public scope",
			visibilities: []entity.Visibility{entity.VisibilityPublic},
			wantIn:       "visibility IN ('public')",
		},
		{
			name:         "farmer scope",
			visibilities: []entity.Visibility{entity.VisibilityPublic, entity.VisibilityFarmersOnly},
			wantIn:       "visibility IN ('public','farmers_only')",
			wantFarmers:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, rec := newDryRunDB(t)

			_, err := NewPostRepository(db).ListActive(context.Background(), repository.PostQuery{Visibilities: tt.visibilities})

			require.NoError(t, err)
			statements := rec.all()
			require.NotEmpty(t, statements)
			assert.Contains(t, statements[0], "status = 'active'")
			assert.Contains(t, statements[0], tt.wantIn)
			assert.Equal(t, tt.wantFarmers, strings.Contains(statements[0], "farmers_only"))
		})
	}
}

func TestPostRepository_EmptyScopeSkipsQuery(t *testing.T) {
	db, rec := newDryRunDB(t)

	posts, err := NewPostRepository(db).ListActive(context.Background(), repository.PostQuery{})
	require.NoError(t, err)
	assert.Empty(t, posts)

	saved, err := NewSavedPostRepository(db).ListSaved(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, saved)

	assert.Empty(t, rec.all())
}

func TestSavedPostRepository_ListSavedVisibility(t *testing.T) {
	db, rec := newDryRunDB(t)
	userID := uuid.New()

	_, err := NewSavedPostRepository(db).ListSaved(context.Background(), userID, []entity.Visibility{entity.VisibilityPublic})

	require.NoError(t, err)
	statements := rec.all()
	require.NotEmpty(t, statements)
	assert.Contains(t, statements[0], "posts.visibility IN ('public')")
	assert.Contains(t, statements[0], "posts.status = 'active'")
	assert.Contains(t, statements[0], userID.String())
	assert.NotContains(t, statements[0], "farmers_only")
}

func TestProfileRepository_EnsureStatements(t *testing.T) {
	db, rec := newDryRunDB(t)
	profile := &entity.Profile{ID: uuid.New(), Name: "Ridge Ranch", Role: entity.RoleProductionFarmer}

	_, err := NewProfileRepository(db).Ensure(context.Background(), profile)

	require.NoError(t, err)
	statements := rec.all()
	require.Len(t, statements, 2)
	assert.Contains(t, statements[0], `INSERT INTO "profiles"`)
	assert.Contains(t, statements[0], `ON CONFLICT ("id") DO NOTHING`)
	assert.Contains(t, statements[1], `SELECT * FROM "profiles"`)
	assert.Contains(t, statements[1], profile.ID.String())
}

func TestProfileRepository_SearchFarmersStatements(t *testing.T) {
	db, rec := newDryRunDB(t)

	_, err := NewProfileRepository(db).SearchFarmers(context.Background(), repository.FarmerQuery{
		County: "whatcom",
		Tokens: []string{"berries"},
		Limit:  25,
	})

	require.NoError(t, err)
	statements := rec.all()
	require.Len(t, statements, 1)
	stmt := statements[0]
	assert.Contains(t, stmt, "role IN ('backyard_grower','market_gardener','production_farmer')")
	assert.Contains(t, stmt, "county = 'whatcom'")
	assert.Contains(t, stmt, "lower(array_to_string(grow_tags, ' ')) LIKE '%berries%'")
	assert.Contains(t, stmt, "LIMIT 25")
	assert.Less(t, strings.Index(stmt, "LIKE"), strings.Index(stmt, "LIMIT"))
}

func TestFarmerTextCondition(t *testing.T) {
	cond, args := farmerTextCondition([]string{"Eggs", "50%_off"})

	assert.True(t, strings.HasPrefix(cond, "("))
	assert.True(t, strings.HasSuffix(cond, ")"))
	assert.Equal(t, 2*len(farmerSearchColumns), strings.Count(cond, "LIKE ?"))
	require.Len(t, args, 2*len(farmerSearchColumns))
	assert.Equal(t, "%eggs%", args[0])
	assert.Equal(t, `%50\%\_off%`, args[len(farmerSearchColumns)])
}
