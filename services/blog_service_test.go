package services

import (
	"testing"

	"github.com/nitishmehan/Eatsy/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBlogService(db *gorm.DB) *BlogService {
	return NewBlogService(repository.NewBlogRepository(db))
}

func TestCreateBlogValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")

	_, err := svc.Create(author.ID, BlogInput{Title: "  ", Content: "body"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(author.ID, BlogInput{Title: "title", Content: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(author.ID, BlogInput{Title: "title", Content: "body", Category: "Gossip"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBlogDefaultsCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")

	blog, err := svc.Create(author.ID, BlogInput{
		Title:   "  Midnight biryani run  ",
		Content: "worth it",
		Tags:    []string{"biryani", "late-night"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Midnight biryani run", blog.Title)
	assert.Equal(t, "Other", blog.Category)
	assert.Equal(t, []string{"biryani", "late-night"}, blog.TagList())
}

func TestBlogUpdateAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")
	other := createCustomer(t, db, "b@example.com")

	blog, err := svc.Create(author.ID, BlogInput{Title: "title", Content: "body", Category: "Recipe"})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, blog.ID, BlogInput{Title: "hijacked", Content: "body"})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(author.ID, blog.ID, BlogInput{Title: "edited", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	// category untouched when omitted
	assert.Equal(t, "Recipe", updated.Category)
}

func TestBlogDeleteAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")
	other := createCustomer(t, db, "b@example.com")

	blog, err := svc.Create(author.ID, BlogInput{Title: "title", Content: "body"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(other.ID, blog.ID), ErrNotFound)
	require.NoError(t, svc.Delete(author.ID, blog.ID))

	_, err = svc.Get(blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")

	_, err := svc.Create(author.ID, BlogInput{Title: "Dosa crawl", Content: "crisp", Category: "Food Review"})
	require.NoError(t, err)
	second, err := svc.Create(author.ID, BlogInput{Title: "Home dal", Content: "comfort", Category: "Recipe"})
	require.NoError(t, err)

	recipes, err := svc.List("Recipe", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, second.ID, recipes[0].ID)

	found, err := svc.List("", "DOSA", 0, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dosa crawl", found[0].Title)

	all, err := svc.List("", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, second.ID, all[0].ID)
}

func TestAddCommentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")

	blog, err := svc.Create(author.ID, BlogInput{Title: "title", Content: "body"})
	require.NoError(t, err)

	_, err = svc.AddComment(author.ID, blog.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddComment(author.ID, 4242, "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	c, err := svc.AddComment(author.ID, blog.ID, "  lovely read  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely read", c.Comment)
}

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	svc := newBlogService(db)
	author := createCustomer(t, db, "a@example.com")
	fan := createCustomer(t, db, "f@example.com")

	blog, err := svc.Create(author.ID, BlogInput{Title: "title", Content: "body"})
	require.NoError(t, err)

	liked, likes, err := svc.ToggleLike(fan.ID, blog.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, likes)

	liked, likes, err = svc.ToggleLike(fan.ID, blog.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, likes)

	// unliking must not block a re-like
	liked, likes, err = svc.ToggleLike(fan.ID, blog.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, likes)

	// a second user's like is independent
	_, likes, err = svc.ToggleLike(author.ID, blog.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, likes)

	_, _, err = svc.ToggleLike(fan.ID, 4242)
	assert.ErrorIs(t, err, ErrNotFound)
}
