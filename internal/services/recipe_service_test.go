package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository/repositorytest"
	appErr "github.com/recipebox/server/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeFixture struct {
	svc         RecipeService
	tags        *repositorytest.AttributeRepo[models.Tag]
	ingredients *repositorytest.AttributeRepo[models.Ingredient]
}

func newRecipeFixture(t *testing.T) recipeFixture {
	t.Helper()
	tags := repositorytest.NewAttributeRepo[models.Tag]()
	ingredients := repositorytest.NewAttributeRepo[models.Ingredient]()
	return recipeFixture{
		svc:         NewRecipeService(repositorytest.NewRecipeRepo(), tags, ingredients),
		tags:        tags,
		ingredients: ingredients,
	}
}

func (f recipeFixture) tag(t *testing.T, owner uuid.UUID, name string) models.Tag {
	t.Helper()
	tag := models.Tag{AccountID: owner, Name: name}
	require.NoError(t, f.tags.Create(context.Background(), &tag))
	return tag
}

func TestCreateRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:       "Basic Recipe title",
		TimeMinutes: 30,
		Price:       5.00,
	})
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basic Recipe title", got.Title)
	assert.Equal(t, 30, got.TimeMinutes)
	assert.Equal(t, 5.00, got.Price)
	assert.Equal(t, owner, got.AccountID)
}

func TestCreateRecipeEmptyTitle(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.svc.Create(context.Background(), uuid.New(), CreateRecipeInput{Title: "  "})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestCreateRecipeWithTags(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	t1 := f.tag(t, owner, "Vegan")
	t2 := f.tag(t, owner, "Dessert")

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:  "Avocado lime cheesecake",
		TagIDs: []uuid.UUID{t1.ID, t2.ID},
	})
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 2)
	ids := []uuid.UUID{got.Tags[0].ID, got.Tags[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{t1.ID, t2.ID}, ids)
}

func TestCreateRecipeUnknownTagIDsSkipped(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	t1 := f.tag(t, owner, "Vegan")

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:  "Toast",
		TagIDs: []uuid.UUID{t1.ID, uuid.New()},
	})
	require.NoError(t, err)
	assert.Len(t, rec.Tags, 1)
}

func TestCreateRecipeForeignTagAllowed(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	other := uuid.New()
	foreign := f.tag(t, other, "Comfort food")

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:  "Mac and cheese",
		TagIDs: []uuid.UUID{foreign.ID},
	})
	require.NoError(t, err)
	require.Len(t, rec.Tags, 1)
	assert.Equal(t, foreign.ID, rec.Tags[0].ID)
}

func TestListRecipesScopedToOwner(t *testing.T) {
	f := newRecipeFixture(t)
	ownerA := uuid.New()
	ownerB := uuid.New()

	_, err := f.svc.Create(context.Background(), ownerA, CreateRecipeInput{Title: "A recipe"})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), ownerB, CreateRecipeInput{Title: "B recipe"})
	require.NoError(t, err)

	list, err := f.svc.List(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A recipe", list[0].Title)
}

func TestListRecipesOrderedByTitleDesc(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()

	for _, title := range []string{"Apple pie", "Zucchini bread", "Miso soup"} {
		_, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{Title: title})
		require.NoError(t, err)
	}

	list, err := f.svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Zucchini bread", list[0].Title)
	assert.Equal(t, "Miso soup", list[1].Title)
	assert.Equal(t, "Apple pie", list[2].Title)
}

func TestGetRecipeNotOwnedIsNotFound(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	intruder := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{Title: "Secret sauce"})
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), intruder, rec.ID)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound), "must be not-found, never forbidden")
}

func TestUpdateRecipePartial(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:       "Original title",
		TimeMinutes: 30,
		Price:       5.00,
	})
	require.NoError(t, err)

	newTitle := "New title"
	got, err := f.svc.Update(context.Background(), owner, rec.ID, UpdateRecipeInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, 30, got.TimeMinutes, "untouched fields keep their values")
	assert.Equal(t, 5.00, got.Price)
}

func TestUpdateRecipeReplacesTags(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	t1 := f.tag(t, owner, "Vegan")
	t2 := f.tag(t, owner, "Dessert")

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:  "Cheesecake",
		TagIDs: []uuid.UUID{t1.ID},
	})
	require.NoError(t, err)

	newSet := []uuid.UUID{t2.ID}
	got, err := f.svc.Update(context.Background(), owner, rec.ID, UpdateRecipeInput{TagIDs: &newSet})
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, t2.ID, got.Tags[0].ID)
}

func TestUpdateRecipeClearTags(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	t1 := f.tag(t, owner, "Vegan")

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{
		Title:  "Salad",
		TagIDs: []uuid.UUID{t1.ID},
	})
	require.NoError(t, err)

	empty := []uuid.UUID{}
	got, err := f.svc.Update(context.Background(), owner, rec.ID, UpdateRecipeInput{TagIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestUpdateRecipeNotOwnedIsNotFound(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	intruder := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{Title: "Secret sauce"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = f.svc.Update(context.Background(), intruder, rec.ID, UpdateRecipeInput{Title: &newTitle})
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	got, err := f.svc.Get(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret sauce", got.Title)
}

func TestDeleteRecipe(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{Title: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), owner, rec.ID))

	_, err = f.svc.Get(context.Background(), owner, rec.ID)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestDeleteRecipeNotOwnedIsNotFound(t *testing.T) {
	f := newRecipeFixture(t)
	owner := uuid.New()
	intruder := uuid.New()

	rec, err := f.svc.Create(context.Background(), owner, CreateRecipeInput{Title: "Keeper"})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), intruder, rec.ID)
	require.Error(t, err)
	assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

	_, err = f.svc.Get(context.Background(), owner, rec.ID)
	assert.NoError(t, err, "the recipe must survive the foreign delete attempt")
}
