package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"gorm.io/gorm"
)

// BlogService handles community posts, comments and the like toggle.
type BlogService struct {
	Repo *repository.BlogRepository
}

func NewBlogService(repo *repository.BlogRepository) *BlogService {
	return &BlogService{Repo: repo}
}

type BlogInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *BlogService) Create(userID uint, in BlogInput) (*entity.Blog, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	category := in.Category
	if category == "" {
		category = "Other"
	}
	if !entity.ValidBlogCategory(category) {
		return nil, fmt.Errorf("%w: unknown category", ErrValidation)
	}

	blog := &entity.Blog{
		UserID:   userID,
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		Image:    in.Image,
		Category: category,
		Tags:     entity.JoinTags(in.Tags),
	}
	if err := s.Repo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Update rewrites a post; only the author may edit.
func (s *BlogService) Update(userID, blogID uint, in BlogInput) (*entity.Blog, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	blog, err := s.Repo.GetForAuthor(userID, blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog", ErrNotFound)
		}
		return nil, err
	}

	blog.Title = strings.TrimSpace(in.Title)
	blog.Content = in.Content
	blog.Image = in.Image
	if in.Category != "" {
		if !entity.ValidBlogCategory(in.Category) {
			return nil, fmt.Errorf("%w: unknown category", ErrValidation)
		}
		blog.Category = in.Category
	}
	blog.Tags = entity.JoinTags(in.Tags)

	if err := s.Repo.Save(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(userID, blogID uint) error {
	affected, err := s.Repo.DeleteForAuthor(userID, blogID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: blog", ErrNotFound)
	}
	return nil
}

func (s *BlogService) Get(blogID uint) (*entity.Blog, error) {
	blog, err := s.Repo.Get(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: blog", ErrNotFound)
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) List(category, search string, limit, offset int) ([]entity.Blog, error) {
	return s.Repo.List(category, search, limit, offset)
}

func (s *BlogService) ListForAuthor(userID uint) ([]entity.Blog, error) {
	return s.Repo.ListForAuthor(userID)
}

func (s *BlogService) AddComment(userID, blogID uint, comment string) (*entity.BlogComment, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}
	if _, err := s.Get(blogID); err != nil {
		return nil, err
	}

	c := &entity.BlogComment{BlogID: blogID, UserID: userID, Comment: comment}
	if err := s.Repo.AddComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToggleLike flips the caller's like on a post and returns the new state
// plus the like count. A double-submit that races past the lookup hits the
// unique index and lands on the liked state anyway.
func (s *BlogService) ToggleLike(userID, blogID uint) (liked bool, likes int64, err error) {
	if _, err := s.Get(blogID); err != nil {
		return false, 0, err
	}

	_, err = s.Repo.FindLike(blogID, userID)
	switch {
	case err == nil:
		if err := s.Repo.DeleteLike(blogID, userID); err != nil {
			return false, 0, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		createErr := s.Repo.CreateLike(&entity.BlogLike{BlogID: blogID, UserID: userID})
		if createErr != nil && !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return false, 0, createErr
		}
		liked = true
	default:
		return false, 0, err
	}

	likes, err = s.Repo.CountLikes(blogID)
	if err != nil {
		return liked, 0, err
	}
	return liked, likes, nil
}
