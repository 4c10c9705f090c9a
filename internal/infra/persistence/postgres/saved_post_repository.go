package postgres

import (
	"context"

	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// savedPostRepository implements the repository.SavedPostRepository interface.
type savedPostRepository struct {
	db *gorm.DB
}

// NewSavedPostRepository is the constructor for savedPostRepository.
func NewSavedPostRepository(db *gorm.DB) repository.SavedPostRepository {
	return &savedPostRepository{
		db: db,
	}
}

// Save bookmarks a listing. Saving twice is not an error.
func (repo *savedPostRepository) Save(ctx context.Context, userID, postID uuid.UUID) error {
	savedM := &model.SavedPostModel{UserID: userID, PostID: postID}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(savedM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return postQueryError(err, "failed to save post")
	}

	return nil
}

// Unsave removes a bookmark. Removing a missing bookmark is not an error.
func (repo *savedPostRepository) Unsave(ctx context.Context, userID, postID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.SavedPostModel{}).Error; err != nil {
		return postQueryError(err, "failed to unsave post")
	}

	return nil
}

// ListSaved returns bookmarked active listings the viewer may still see,
// newest bookmark first.
func (repo *savedPostRepository) ListSaved(ctx context.Context, userID uuid.UUID, visibilities []entity.Visibility) ([]*entity.Post, error) {
	if len(visibilities) == 0 {
		return []*entity.Post{}, nil
	}

	var savedModels []*model.SavedPostModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN posts ON posts.id = saved_posts.post_id").
		Preload("Post.Seller").
		Where("saved_posts.user_id = ?", userID).
		Where("posts.status = ?", string(entity.PostStatusActive)).
		Where("posts.visibility IN ?", visibilityStrings(visibilities)).
		Order("saved_posts.created_at DESC").
		Find(&savedModels).Error; err != nil {
		return nil, postQueryError(err, "failed to list saved posts")
	}

	posts := make([]*entity.Post, 0, len(savedModels))
	for _, savedM := range savedModels {
		if savedM.Post == nil {
			continue
		}
		posts = append(posts, toPostDomain(savedM.Post))
	}

	return posts, nil
}
