package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elyvra/storefront/internal/domain"
)

func (s *Server) handleListBlogPosts(c *gin.Context) {
	publishedOnly := c.Query("published_only") == "true"

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*domain.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		if publishedOnly && !post.Published {
			continue
		}
		posts = append(posts, post)
	}

	c.JSON(http.StatusOK, posts)
}

func (s *Server) handleCreateBlogPost(c *gin.Context) {
	var payload domain.BlogPostCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	post := postFromPayload(payload)
	post.ID = uuid.New().String()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.posts[post.ID] = post

	c.JSON(http.StatusOK, post)
}

func postFromPayload(payload domain.BlogPostCreate) *domain.BlogPost {
	return &domain.BlogPost{
		Title:         payload.Title,
		Content:       payload.Content,
		Excerpt:       payload.Excerpt,
		FeaturedImage: payload.FeaturedImage,
		Author:        payload.Author,
		Published:     payload.Published,
		Featured:      payload.Featured,
		Tags:          payload.Tags,
	}
}

func (s *Server) handleGetBlogPost(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Blog post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *Server) handleUpdateBlogPost(c *gin.Context) {
	var payload domain.BlogPostCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	existing, ok := s.posts[id]
	if !ok {
		detail(c, http.StatusNotFound, "Blog post not found")
		return
	}

	post := postFromPayload(payload)
	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now().UTC()
	s.posts[id] = post

	c.JSON(http.StatusOK, post)
}

func (s *Server) handleDeleteBlogPost(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.posts[id]; !ok {
		detail(c, http.StatusNotFound, "Blog post not found")
		return
	}
	delete(s.posts, id)

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
