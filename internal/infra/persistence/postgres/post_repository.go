package postgres

import (
	"context"
	"time"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultFeedLimit = 200

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// ListActive returns active listings in the visibility set, newest first.
// An empty visibility set matches nothing.
func (repo *postRepository) ListActive(ctx context.Context, query repository.PostQuery) ([]*entity.Post, error) {
	if len(query.Visibilities) == 0 {
		return []*entity.Post{}, nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Seller").
		Where("status = ?", string(entity.PostStatusActive)).
		Where("visibility IN ?", visibilityStrings(query.Visibilities)).
		Order("created_at DESC").
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, postQueryError(err, "failed to list active posts")
	}

	return toPostDomains(postModels), nil
}

// FindByID retrieves a listing with its seller profile.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).Preload("Seller").Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, postQueryError(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// FindByOwner lists all listings of a user in any status, newest first.
func (repo *postRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, postQueryError(err, "failed to list posts by owner")
	}

	return toPostDomains(postModels), nil
}

// Create persists a new listing and fills its generated fields.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("listing is missing required fields")
		}

		return postQueryError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of a listing. Last write wins.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	postM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Select("title", "description", "type", "category", "tags", "visibility", "status",
			"county", "city", "price", "unit", "quantity", "sub_products",
			"pickup_available", "delivery_available", "images", "updated_at").
		Updates(postM)
	if result.Error != nil {
		return postQueryError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// UpdateStatus changes only the status of a listing.
func (repo *postRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PostStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return postQueryError(result.Error, "failed to update post status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a listing. Bookmarks cascade.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return postQueryError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func postQueryError(err error, details string) error {
	if isUndefinedTable(err) {
		return repository.ErrFeatureUnavailable
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func visibilityStrings(visibilities []entity.Visibility) []string {
	out := make([]string, 0, len(visibilities))
	for _, v := range visibilities {
		out = append(out, string(v))
	}

	return out
}

// --- Mapper Functions ---

func toPostDomains(postModels []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	subProducts := make([]entity.SubProduct, 0, len(data.SubProducts))
	for _, sp := range data.SubProducts {
		subProducts = append(subProducts, entity.SubProduct{
			Name:     sp.Name,
			Price:    sp.Price,
			Unit:     sp.Unit,
			Quantity: sp.Quantity,
		})
	}

	return &entity.Post{
		ID:                data.ID,
		UserID:            data.UserID,
		Title:             data.Title,
		Description:       data.Description,
		Type:              entity.PostType(data.Type),
		Category:          data.Category,
		Tags:              []string(data.Tags),
		Visibility:        entity.Visibility(data.Visibility),
		Status:            entity.PostStatus(data.Status),
		County:            data.County,
		City:              data.City,
		Price:             data.Price,
		Unit:              data.Unit,
		Quantity:          data.Quantity,
		SubProducts:       subProducts,
		PickupAvailable:   data.PickupAvailable,
		DeliveryAvailable: data.DeliveryAvailable,
		Images:            []string(data.Images),
		Seller:            toProfileDomain(data.Seller),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	subProducts := make(datatypes.JSONSlice[model.SubProductJSON], 0, len(data.SubProducts))
	for _, sp := range data.SubProducts {
		subProducts = append(subProducts, model.SubProductJSON{
			Name:     sp.Name,
			Price:    sp.Price,
			Unit:     sp.Unit,
			Quantity: sp.Quantity,
		})
	}

	return &model.PostModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Title:             data.Title,
		Description:       data.Description,
		Type:              string(data.Type),
		Category:          data.Category,
		Tags:              data.Tags,
		Visibility:        string(data.Visibility),
		Status:            string(data.Status),
		County:            data.County,
		City:              data.City,
		Price:             data.Price,
		Unit:              data.Unit,
		Quantity:          data.Quantity,
		SubProducts:       subProducts,
		PickupAvailable:   data.PickupAvailable,
		DeliveryAvailable: data.DeliveryAvailable,
		Images:            data.Images,
	}
}
