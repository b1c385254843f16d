package v1

import (
	"net/http"

	"skills-api/internal/delivery/http/response"
	"skills-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r gin.IRouter, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := r.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/:id", handler.Get)
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// ListSkills godoc
// @Summary      List skills
// @Description  All skills ordered by id
// @Tags         skills
// @Produce      json
// @Success      200  {array}   domain.Skill
// @Failure      500  {object}  response.ErrorBody
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Raw(c, http.StatusOK, skills)
}

// GetSkill godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Skill not found")
	if !ok {
		return
	}

	skill, err := h.skillUC.GetSkill(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Raw(c, http.StatusOK, skill)
}

// CreateSkill godoc
// @Summary      Create a skill
// @Description  skill, level (0-100) and theme_id are required. A level of 0 is valid.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      domain.CreateSkillInput  true  "Skill JSON"
// @Success      201    {object}  response.Mutation
// @Failure      400    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req domain.CreateSkillInput
	if !bindBody(c, &req) {
		return
	}

	skill, err := h.skillUC.CreateSkill(c, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created successfully", skill)
}

// UpdateSkill godoc
// @Summary      Partially update a skill
// @Description  Only the supplied fields (skill, level) are written. theme_id is ignored.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Skill ID"
// @Param        skill  body      domain.SkillPatch  true  "Fields to change"
// @Success      200    {object}  response.Mutation
// @Failure      400    {object}  response.ErrorBody
// @Failure      404    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Skill not found")
	if !ok {
		return
	}

	var req domain.SkillPatch
	if !bindBody(c, &req) {
		return
	}

	skill, err := h.skillUC.UpdateSkill(c, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated successfully", skill)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  response.Mutation
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Skill not found")
	if !ok {
		return
	}

	skill, err := h.skillUC.DeleteSkill(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted successfully", skill)
}
