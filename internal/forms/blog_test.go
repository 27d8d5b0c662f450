package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

func TestBlogFormBuildRequiresAuthorAndEnglishTitle(t *testing.T) {
	form := NewBlogForm()

	_, err := form.Build()
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "author", verr.Field)

	form = form.WithAuthor("Dr. Lina")
	_, err = form.Build()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title.en", verr.Field)

	form = form.WithEntryField(domain.LanguageEN, PostTitle, "Hydration basics")
	payload, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, "Hydration basics", payload.Title[domain.LanguageEN])
	assert.Equal(t, "Dr. Lina", payload.Author)
}

func TestBlogFormEntrySetterLeavesOtherLanguages(t *testing.T) {
	form := NewBlogForm().
		WithEntryField(domain.LanguageEN, PostTitle, "Original").
		WithEntryField(domain.LanguageFR, PostTitle, "Originale")

	updated := form.WithEntryField(domain.LanguageFR, PostContent, "Contenu")

	assert.Equal(t, "Originale", updated.Entries[domain.LanguageFR].Title)
	assert.Equal(t, "Contenu", updated.Entries[domain.LanguageFR].Content)
	assert.Equal(t, "Original", updated.Entries[domain.LanguageEN].Title)
	assert.Empty(t, form.Entries[domain.LanguageFR].Content)
}

func TestBlogFormRoundTrip(t *testing.T) {
	image := "https://example.com/post.jpg"
	post := &domain.BlogPost{
		ID:            "post-1",
		Title:         map[domain.Language]string{domain.LanguageEN: "Title", domain.LanguageAR: "عنوان"},
		Content:       map[domain.Language]string{domain.LanguageEN: "Body"},
		Excerpt:       map[domain.Language]string{domain.LanguageEN: "Short"},
		FeaturedImage: &image,
		Author:        "Dr. Lina",
		Published:     true,
		Tags:          []string{"hydration", "recovery"},
	}

	form := BlogFormFromPost(post)
	assert.Equal(t, "hydration, recovery", form.Tags)
	assert.Equal(t, "عنوان", form.Entries[domain.LanguageAR].Title)

	payload, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, post.Title[domain.LanguageEN], payload.Title[domain.LanguageEN])
	assert.Equal(t, post.Tags, payload.Tags)
	require.NotNil(t, payload.FeaturedImage)
	assert.Equal(t, image, *payload.FeaturedImage)
}

type fakeBlogAPI struct {
	created int
	updated int
}

func (f *fakeBlogAPI) CreateBlogPost(ctx context.Context, payload domain.BlogPostCreate) (*domain.BlogPost, error) {
	f.created++
	return &domain.BlogPost{ID: "post-new", Author: payload.Author}, nil
}

func (f *fakeBlogAPI) UpdateBlogPost(ctx context.Context, id string, payload domain.BlogPostCreate) (*domain.BlogPost, error) {
	f.updated++
	return &domain.BlogPost{ID: id, Author: payload.Author}, nil
}

func TestSubmitBlogPostCreateVersusUpdate(t *testing.T) {
	client := &fakeBlogAPI{}
	form := NewBlogForm().
		WithAuthor("Dr. Lina").
		WithEntryField(domain.LanguageEN, PostTitle, "Title")

	result, err := SubmitBlogPost(context.Background(), client, form)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, 1, client.created)

	form.ID = "post-1"
	result, err = SubmitBlogPost(context.Background(), client, form)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "post-1", result.Post.ID)
	assert.Equal(t, 1, client.updated)
}
