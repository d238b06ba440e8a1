package controllers

import (
	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"
	"github.com/nitishmehan/Eatsy/utils"

	"github.com/gin-gonic/gin"
)

// MenuController serves the vendor's own menu management.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// menuItemView widens the stored comma-joined dietary column back into the
// tag list clients expect.
type menuItemView struct {
	entity.MenuItem
	Dietary []string `json:"dietary"`
}

func menuView(item *entity.MenuItem) menuItemView {
	return menuItemView{MenuItem: *item, Dietary: item.DietaryList()}
}

func menuViews(items []entity.MenuItem) []menuItemView {
	out := make([]menuItemView, 0, len(items))
	for i := range items {
		out = append(out, menuView(&items[i]))
	}
	return out
}

// GET /vendor/menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Service.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menuViews(items)})
}

// POST /vendor/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Create(utils.CurrentUserID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, menuView(item))
}

// PUT /vendor/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Update(utils.CurrentUserID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, menuView(item))
}

// DELETE /vendor/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := mc.Service.Delete(utils.CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
