package v1

import (
	"net/http"

	"skills-api/internal/delivery/http/response"
	"skills-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themeUC domain.ThemeUsecase
}

func NewThemeHandler(r gin.IRouter, themeUC domain.ThemeUsecase) {
	handler := &ThemeHandler{themeUC: themeUC}

	themes := r.Group("/themes")
	{
		themes.GET("", handler.List)
		themes.GET("/:id", handler.Get)
		themes.POST("", handler.Create)
		themes.PUT("/:id", handler.Update)
		themes.DELETE("/:id", handler.Delete)
	}
}

// ListThemes godoc
// @Summary      List themes
// @Description  All themes ordered by id
// @Tags         themes
// @Produce      json
// @Success      200  {array}   domain.Theme
// @Failure      500  {object}  response.ErrorBody
// @Router       /themes [get]
func (h *ThemeHandler) List(c *gin.Context) {
	themes, err := h.themeUC.ListThemes(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Raw(c, http.StatusOK, themes)
}

// GetTheme godoc
// @Summary      Get a theme
// @Tags         themes
// @Produce      json
// @Param        id   path      int  true  "Theme ID"
// @Success      200  {object}  domain.Theme
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /themes/{id} [get]
func (h *ThemeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Theme not found")
	if !ok {
		return
	}

	theme, err := h.themeUC.GetTheme(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Raw(c, http.StatusOK, theme)
}

// CreateTheme godoc
// @Summary      Create a theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Param        theme  body      domain.ThemeInput  true  "Theme JSON"
// @Success      201    {object}  response.Mutation
// @Failure      400    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /themes [post]
func (h *ThemeHandler) Create(c *gin.Context) {
	var req domain.ThemeInput
	if !bindBody(c, &req) {
		return
	}

	theme, err := h.themeUC.CreateTheme(c, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Theme created successfully", theme)
}

// UpdateTheme godoc
// @Summary      Rename a theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Theme ID"
// @Param        theme  body      domain.ThemeInput  true  "Theme JSON"
// @Success      200    {object}  response.Mutation
// @Failure      400    {object}  response.ErrorBody
// @Failure      404    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /themes/{id} [put]
func (h *ThemeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Theme not found")
	if !ok {
		return
	}

	var req domain.ThemeInput
	if !bindBody(c, &req) {
		return
	}

	theme, err := h.themeUC.UpdateTheme(c, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Theme updated successfully", theme)
}

// DeleteTheme godoc
// @Summary      Delete a theme
// @Description  Returns the deleted row. Skills referencing the theme are subject to the store's foreign key.
// @Tags         themes
// @Produce      json
// @Param        id   path      int  true  "Theme ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /themes/{id} [delete]
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Theme not found")
	if !ok {
		return
	}

	theme, err := h.themeUC.DeleteTheme(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Theme deleted successfully", theme)
}
