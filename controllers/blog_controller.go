package controllers

import (
	"strconv"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	Service *services.BlogService
}

func NewBlogController(service *services.BlogService) *BlogController {
	return &BlogController{Service: service}
}

type blogView struct {
	entity.Blog
	Tags []string `json:"tags"`
}

func blogViews(blogs []entity.Blog) []blogView {
	out := make([]blogView, 0, len(blogs))
	for i := range blogs {
		out = append(out, blogView{Blog: blogs[i], Tags: blogs[i].TagList()})
	}
	return out
}

// GET /blogs?category=&search=&limit=&offset=
func (bc *BlogController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	blogs, err := bc.Service.List(c.Query("category"), c.Query("search"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": blogViews(blogs)})
}

// GET /profile/blogs
func (bc *BlogController) ListForMe(c *gin.Context) {
	blogs, err := bc.Service.ListForAuthor(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": blogViews(blogs)})
}

// GET /blogs/:id
func (bc *BlogController) Detail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid blog id")
		return
	}

	blog, err := bc.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, blogView{Blog: *blog, Tags: blog.TagList()})
}

// POST /blogs
func (bc *BlogController) Create(c *gin.Context) {
	var in services.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	blog, err := bc.Service.Create(utils.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": blog.ID})
}

// PUT /blogs/:id
func (bc *BlogController) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid blog id")
		return
	}

	var in services.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	blog, err := bc.Service.Update(utils.CurrentUserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": blog.ID})
}

// DELETE /blogs/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid blog id")
		return
	}

	if err := bc.Service.Delete(utils.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "blog deleted"})
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// POST /blogs/:id/comment
func (bc *BlogController) Comment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid blog id")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment, err := bc.Service.AddComment(utils.CurrentUserID(c), id, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, comment)
}

// POST /blogs/:id/like
func (bc *BlogController) Like(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid blog id")
		return
	}

	liked, likes, err := bc.Service.ToggleLike(utils.CurrentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": liked, "likes": likes})
}
