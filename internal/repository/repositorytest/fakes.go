// Package repositorytest provides in-memory implementations of the
// repository interfaces for use in service and handler tests.
package repositorytest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
	appErr "github.com/recipebox/server/pkg/errors"
)

// AccountRepo is an in-memory repository.AccountRepository.
type AccountRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Account
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{rows: map[uuid.UUID]models.Account{}}
}

var _ repository.AccountRepository = (*AccountRepo)(nil)

func (r *AccountRepo) Create(ctx context.Context, obj *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.Email == obj.Email {
			return appErr.New(appErr.CodeAlreadyExists, "entity already exists")
		}
	}
	if obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	r.rows[obj.ID] = *obj
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id any, dest *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, ok := id.(uuid.UUID)
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	a, ok := r.rows[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = a
	return nil
}

func (r *AccountRepo) Update(ctx context.Context, obj *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[obj.ID] = *obj
	return nil
}

func (r *AccountRepo) Delete(ctx context.Context, id any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, ok := id.(uuid.UUID)
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	if _, ok := r.rows[uid]; !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	delete(r.rows, uid)
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string, dest *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.Email == email {
			*dest = a
			return nil
		}
	}
	return appErr.New(appErr.CodeNotFound, "account not found")
}

// Len reports the number of stored accounts.
func (r *AccountRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// TokenRepo is an in-memory repository.TokenRepository backed by an
// AccountRepo for account resolution.
type TokenRepo struct {
	mu       sync.Mutex
	accounts *AccountRepo
	rows     map[uuid.UUID]models.AuthToken
}

func NewTokenRepo(accounts *AccountRepo) *TokenRepo {
	return &TokenRepo{accounts: accounts, rows: map[uuid.UUID]models.AuthToken{}}
}

var _ repository.TokenRepository = (*TokenRepo)(nil)

func (r *TokenRepo) GetByKey(ctx context.Context, key string, dest *models.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tok := range r.rows {
		if tok.Key == key {
			var a models.Account
			if err := r.accounts.GetByID(ctx, tok.AccountID, &a); err != nil {
				return appErr.New(appErr.CodeUnauthorized, "invalid token")
			}
			tok.Account = a
			*dest = tok
			return nil
		}
	}
	return appErr.New(appErr.CodeUnauthorized, "invalid token")
}

func (r *TokenRepo) GetOrCreate(ctx context.Context, account *models.Account, key string) (*models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tok, ok := r.rows[account.ID]; ok {
		return &tok, nil
	}
	tok := models.AuthToken{Key: key, AccountID: account.ID}
	r.rows[account.ID] = tok
	return &tok, nil
}

func (r *TokenRepo) DeleteForAccount(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, account.ID)
	return nil
}

// AttributeRepo is an in-memory repository.AttributeRepository.
type AttributeRepo[T repository.Attribute] struct {
	mu   sync.Mutex
	rows []T
}

func NewAttributeRepo[T repository.Attribute]() *AttributeRepo[T] {
	return &AttributeRepo[T]{}
}

var (
	_ repository.AttributeRepository[models.Tag]        = (*AttributeRepo[models.Tag])(nil)
	_ repository.AttributeRepository[models.Ingredient] = (*AttributeRepo[models.Ingredient])(nil)
)

func (r *AttributeRepo[T]) Create(ctx context.Context, obj *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	setAttrID(obj, uuid.New())
	r.rows = append(r.rows, *obj)
	return nil
}

func (r *AttributeRepo[T]) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for i := range r.rows {
		if attrOwner(&r.rows[i]) == ownerID {
			out = append(out, r.rows[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return attrName(&out[i]) > attrName(&out[j])
	})
	return out, nil
}

func (r *AttributeRepo[T]) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []T
	for i := range r.rows {
		if want[attrID(&r.rows[i])] {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func attrID(v any) uuid.UUID {
	switch t := v.(type) {
	case *models.Tag:
		return t.ID
	case *models.Ingredient:
		return t.ID
	}
	return uuid.Nil
}

func setAttrID(v any, id uuid.UUID) {
	switch t := v.(type) {
	case *models.Tag:
		t.ID = id
	case *models.Ingredient:
		t.ID = id
	}
}

func attrName(v any) string {
	switch t := v.(type) {
	case *models.Tag:
		return t.Name
	case *models.Ingredient:
		return t.Name
	}
	return ""
}

func attrOwner(v any) uuid.UUID {
	switch t := v.(type) {
	case *models.Tag:
		return t.AccountID
	case *models.Ingredient:
		return t.AccountID
	}
	return uuid.Nil
}

// RecipeRepo is an in-memory repository.RecipeRepository.
type RecipeRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Recipe
}

func NewRecipeRepo() *RecipeRepo {
	return &RecipeRepo{rows: map[uuid.UUID]models.Recipe{}}
}

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

func (r *RecipeRepo) Create(ctx context.Context, obj *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	stored := *obj
	stored.Tags = nil
	stored.Ingredients = nil
	r.rows[obj.ID] = stored
	return nil
}

func (r *RecipeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Recipe
	for _, rec := range r.rows {
		if rec.AccountID == ownerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	return out, nil
}

func (r *RecipeRepo) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID, dest *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok || rec.AccountID != ownerID {
		return appErr.New(appErr.CodeNotFound, "recipe not found")
	}
	*dest = rec
	return nil
}

func (r *RecipeRepo) UpdateScalars(ctx context.Context, obj *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[obj.ID]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "recipe not found")
	}
	rec.Title = obj.Title
	rec.TimeMinutes = obj.TimeMinutes
	rec.Price = obj.Price
	r.rows[obj.ID] = rec
	return nil
}

func (r *RecipeRepo) ReplaceTags(ctx context.Context, obj *models.Recipe, tags []models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[obj.ID]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "recipe not found")
	}
	rec.Tags = tags
	r.rows[obj.ID] = rec
	obj.Tags = tags
	return nil
}

func (r *RecipeRepo) ReplaceIngredients(ctx context.Context, obj *models.Recipe, ingredients []models.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[obj.ID]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "recipe not found")
	}
	rec.Ingredients = ingredients
	r.rows[obj.ID] = rec
	obj.Ingredients = ingredients
	return nil
}

func (r *RecipeRepo) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok || rec.AccountID != ownerID {
		return appErr.New(appErr.CodeNotFound, "recipe not found")
	}
	delete(r.rows, id)
	return nil
}
