package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
	"github.com/gradekeep/gradebook-backend/internal/validator"
)

// StudentHandler handles student record CRUD and the filtered listing.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /api/students/
// Lists students with composable filters (grade, score comparisons, name
// search), single-key ordering, and fixed-size pages of 10.
func (h *StudentHandler) List(c *gin.Context) {
	filter, fields := parseStudentFilter(c.Request.URL.Query())
	if len(fields) > 0 {
		response.FailFields(c, fields)
		return
	}

	students, total, err := h.studentService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	response.JSON(c, http.StatusOK, response.NewPage(
		c.Request.URL.Path, c.Request.URL.Query(),
		page, service.StudentPageSize, total, students,
	))
}

// Create godoc
// POST /api/students/
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailFields(c, fields)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.JSON(c, http.StatusCreated, student)
}

// Get godoc
// GET /api/students/:id/
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failStudentError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student)
}

// Update godoc
// PUT /api/students/:id/
// Full update: every client-writable field is required.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailFields(c, fields)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failStudentError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student)
}

// Patch godoc
// PATCH /api/students/:id/
// Partial update: absent fields keep their stored values.
func (h *StudentHandler) Patch(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	var req model.PatchStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailFields(c, fields)
		return
	}

	student, err := h.studentService.Patch(c.Request.Context(), id, &req)
	if err != nil {
		failStudentError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// DELETE /api/students/:id/
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := studentID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		failStudentError(c, err)
		return
	}

	response.NoContent(c)
}

// studentID parses the path id. A segment that cannot name a record is
// indistinguishable from an unknown record, so both are 404.
func studentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return 0, false
	}
	return id, true
}

func failStudentError(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
