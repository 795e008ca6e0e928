package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/normalize"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

type coursePayload struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	DurationYears int    `json:"duration_years"`
}

func validateCourse(p *coursePayload) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Course name is required"
	}
	if strings.TrimSpace(p.Code) == "" {
		errs["code"] = "Course code is required"
	}
	if p.DurationYears < 1 || p.DurationYears > 10 {
		errs["duration_years"] = "Duration must be between 1 and 10 years"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *CourseHandler) List(c echo.Context) error {
	var items []models.Course
	if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "total": len(items)})
}

func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateCourse(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	// Stored under the canonical name so bulk rows resolve to it.
	rec := models.Course{
		Name:          normalize.CourseName(p.Name),
		Code:          strings.TrimSpace(p.Code),
		DurationYears: p.DurationYears,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *CourseHandler) Update(c echo.Context) error {
	var existing models.Course
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateCourse(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	existing.Name = normalize.CourseName(p.Name)
	existing.Code = strings.TrimSpace(p.Code)
	existing.DurationYears = p.DurationYears
	if err := database.DB.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

func (h *CourseHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Course{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

/* -------------------- Branches -------------------- */

type branchPayload struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	CourseID uint   `json:"course_id"`
}

func (h *CourseHandler) ListBranches(c echo.Context) error {
	tx := database.DB.Model(&models.Branch{})
	if cid := strings.TrimSpace(c.QueryParam("course_id")); cid != "" {
		tx = tx.Where("course_id = ?", cid)
	}
	var items []models.Branch
	if err := tx.Order("name ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "total": len(items)})
}

func (h *CourseHandler) CreateBranch(c echo.Context) error {
	var p branchPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	errs := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Branch name is required"
	}
	if p.CourseID == 0 {
		errs["course_id"] = "Course is required"
	} else if err := database.DB.First(&models.Course{}, "id = ?", p.CourseID).Error; err != nil {
		errs["course_id"] = "Course does not exist"
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	rec := models.Branch{Name: strings.TrimSpace(p.Name), Code: strings.TrimSpace(p.Code), CourseID: p.CourseID}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *CourseHandler) DeleteBranch(c echo.Context) error {
	if err := database.DB.Delete(&models.Branch{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
