package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elitedriving/institute-api/internal/service"
	"github.com/elitedriving/institute-api/pkg/response"
)

// CourseHandler exposes course catalogue endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List active courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Roster godoc
// @Summary Export course roster as CSV
// @Tags Courses
// @Produce text/csv
// @Param id path string true "Course ID"
// @Success 200 {string} string "CSV roster"
// @Router /courses/{id}/roster.csv [get]
func (h *CourseHandler) Roster(c *gin.Context) {
	data, title, err := h.courses.RosterCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := strings.ToLower(strings.ReplaceAll(title, " ", "-")) + "-roster.csv"
	response.Attachment(c, "text/csv", filename, data)
}
