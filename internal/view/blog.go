package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

// BlogListAPI is the slice of the REST client the blog view needs
type BlogListAPI interface {
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
}

// BlogView lists blog posts with a client-side search over localized
// titles and the author
type BlogView struct {
	client BlogListAPI
	logger *zap.Logger

	publishedOnly bool
	search        string
	posts         []domain.BlogPost
	loaded        bool
}

// NewBlogView creates a blog view controller. publishedOnly narrows the
// fetch for the public storefront; the admin shell lists everything.
func NewBlogView(client BlogListAPI, publishedOnly bool, logger *zap.Logger) *BlogView {
	return &BlogView{
		client:        client,
		publishedOnly: publishedOnly,
		logger:        logger,
	}
}

// Refresh re-fetches the post collection
func (v *BlogView) Refresh(ctx context.Context) error {
	posts, err := v.client.ListBlogPosts(ctx, v.publishedOnly)
	if err != nil {
		v.logger.Error("Failed to fetch blog posts", zap.Error(err))
		return err
	}
	v.posts = posts
	v.loaded = true
	return nil
}

// SetSearch changes the client-side search term
func (v *BlogView) SetSearch(term string) {
	v.search = term
}

// Posts returns the last fetch narrowed by the search term, matched
// against every localized title and the author
func (v *BlogView) Posts() []domain.BlogPost {
	matched := make([]domain.BlogPost, 0, len(v.posts))
	for _, post := range v.posts {
		fields := []string{post.ID, post.Author}
		for _, title := range post.Title {
			fields = append(fields, title)
		}
		if matchAny(v.search, fields...) {
			matched = append(matched, post)
		}
	}
	return matched
}

// Empty reports whether the view has loaded and holds no matching posts
func (v *BlogView) Empty() bool {
	return v.loaded && len(v.Posts()) == 0
}

// Delete removes a post after an explicit confirmation, then re-fetches
func (v *BlogView) Delete(ctx context.Context, id string, confirm ConfirmFunc) (DeleteResult, error) {
	if !confirm("Are you sure you want to delete this post?") {
		return DeleteResult{Confirmed: false}, nil
	}

	if err := v.client.DeleteBlogPost(ctx, id); err != nil {
		v.logger.Error("Failed to delete blog post",
			zap.String("post_id", id),
			zap.Error(err),
		)
		return DeleteResult{Confirmed: true}, err
	}

	if err := v.Refresh(ctx); err != nil {
		return DeleteResult{Confirmed: true, Deleted: true}, err
	}
	return DeleteResult{Confirmed: true, Deleted: true}, nil
}
