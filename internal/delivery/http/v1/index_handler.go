package v1

import (
	"net/http"

	"skills-api/internal/delivery/http/response"
	"skills-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct {
	healthUC domain.HealthUsecase
}

func NewIndexHandler(r gin.IRouter, healthUC domain.HealthUsecase) {
	handler := &IndexHandler{healthUC: healthUC}

	r.GET("/", handler.Index)
	r.GET("/health", handler.Health)
}

// APIIndex godoc
// @Summary      Describe the API
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *IndexHandler) Index(c *gin.Context) {
	response.Raw(c, http.StatusOK, gin.H{
		"message": "Skills and Themes API ✅",
		"endpoints": gin.H{
			"themes": gin.H{
				"getAll": "GET /themes",
				"getOne": "GET /themes/:id",
				"create": "POST /themes",
				"update": "PUT /themes/:id",
				"delete": "DELETE /themes/:id",
			},
			"skills": gin.H{
				"getAll": "GET /skills",
				"getOne": "GET /skills/:id",
				"create": "POST /skills",
				"update": "PUT /skills/:id",
				"delete": "DELETE /skills/:id",
			},
		},
	})
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  response.ErrorBody
// @Router       /health [get]
func (h *IndexHandler) Health(c *gin.Context) {
	if h.healthUC == nil {
		response.Raw(c, http.StatusOK, gin.H{"status": domain.HealthOK})
		return
	}

	report := h.healthUC.Check(c.Request.Context())
	if !report.Healthy() {
		response.Error(c, http.StatusServiceUnavailable, report.Failure)
		return
	}
	response.Raw(c, http.StatusOK, report)
}
