package forms

import (
	"context"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

// PostField names a per-language editable blog post field
type PostField int

const (
	PostTitle PostField = iota
	PostContent
	PostExcerpt
)

// PostDraft is the editing representation of one language's content
type PostDraft struct {
	Title   string
	Content string
	Excerpt string
}

// BlogForm is the draft of a blog post being created or edited
type BlogForm struct {
	ID            string
	Author        string
	FeaturedImage string
	Published     bool
	Featured      bool
	Tags          string
	Entries       map[domain.Language]PostDraft
}

// NewBlogForm returns an empty draft with an entry for every language
func NewBlogForm() BlogForm {
	entries := make(map[domain.Language]PostDraft, len(domain.Languages()))
	for _, lang := range domain.Languages() {
		entries[lang] = PostDraft{}
	}
	return BlogForm{Entries: entries}
}

// BlogFormFromPost seeds a draft from an existing post
func BlogFormFromPost(p *domain.BlogPost) BlogForm {
	form := NewBlogForm()
	form.ID = p.ID
	form.Author = p.Author
	form.FeaturedImage = deref(p.FeaturedImage)
	form.Published = p.Published
	form.Featured = p.Featured
	form.Tags = joinList(p.Tags)

	for _, lang := range domain.Languages() {
		form.Entries[lang] = PostDraft{
			Title:   p.Title[lang],
			Content: p.Content[lang],
			Excerpt: p.Excerpt[lang],
		}
	}
	return form
}

func (f BlogForm) clone() BlogForm {
	out := f
	out.Entries = make(map[domain.Language]PostDraft, len(f.Entries))
	for lang, e := range f.Entries {
		out.Entries[lang] = e
	}
	return out
}

// WithAuthor returns a new draft with the author replaced
func (f BlogForm) WithAuthor(author string) BlogForm {
	out := f.clone()
	out.Author = author
	return out
}

// WithFeaturedImage returns a new draft with the featured image replaced
func (f BlogForm) WithFeaturedImage(url string) BlogForm {
	out := f.clone()
	out.FeaturedImage = url
	return out
}

// WithTags returns a new draft with the tags editing string replaced
func (f BlogForm) WithTags(tags string) BlogForm {
	out := f.clone()
	out.Tags = tags
	return out
}

// WithFlags returns a new draft with the publish and featured flags replaced
func (f BlogForm) WithFlags(published, featured bool) BlogForm {
	out := f.clone()
	out.Published = published
	out.Featured = featured
	return out
}

// WithEntryField returns a new draft with exactly one per-language leaf
// replaced
func (f BlogForm) WithEntryField(lang domain.Language, field PostField, value string) BlogForm {
	out := f.clone()
	e := out.Entries[lang]
	switch field {
	case PostTitle:
		e.Title = value
	case PostContent:
		e.Content = value
	case PostExcerpt:
		e.Excerpt = value
	}
	out.Entries[lang] = e
	return out
}

// Build serializes the draft into the wire payload
func (f BlogForm) Build() (domain.BlogPostCreate, error) {
	var payload domain.BlogPostCreate

	if f.Author == "" {
		return payload, &errors.ErrValidation{Field: "author", Detail: "is required"}
	}
	if f.Entries[domain.LanguageEN].Title == "" {
		return payload, &errors.ErrValidation{Field: "title.en", Detail: "is required"}
	}

	title := make(map[domain.Language]string, len(f.Entries))
	content := make(map[domain.Language]string, len(f.Entries))
	excerpt := make(map[domain.Language]string, len(f.Entries))
	for lang, e := range f.Entries {
		title[lang] = e.Title
		content[lang] = e.Content
		excerpt[lang] = e.Excerpt
	}

	payload = domain.BlogPostCreate{
		Title:         title,
		Content:       content,
		Excerpt:       excerpt,
		FeaturedImage: optionalString(f.FeaturedImage),
		Author:        f.Author,
		Published:     f.Published,
		Featured:      f.Featured,
		Tags:          splitList(f.Tags),
	}
	return payload, nil
}

// BlogAPI is the slice of the REST client post submission needs
type BlogAPI interface {
	CreateBlogPost(ctx context.Context, payload domain.BlogPostCreate) (*domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, payload domain.BlogPostCreate) (*domain.BlogPost, error)
}

// BlogSubmitResult reports a successful create or update
type BlogSubmitResult struct {
	Created bool
	Post    *domain.BlogPost
}

// SubmitBlogPost serializes the draft and issues a create or an update
// depending on whether the draft carries an entity identifier
func SubmitBlogPost(ctx context.Context, client BlogAPI, form BlogForm) (*BlogSubmitResult, error) {
	payload, err := form.Build()
	if err != nil {
		return nil, err
	}

	if form.ID != "" {
		post, err := client.UpdateBlogPost(ctx, form.ID, payload)
		if err != nil {
			return nil, err
		}
		return &BlogSubmitResult{Created: false, Post: post}, nil
	}

	post, err := client.CreateBlogPost(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &BlogSubmitResult{Created: true, Post: post}, nil
}
