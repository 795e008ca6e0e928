package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/normalize"
	"github.com/DurgaPydahSoft/client-sub008/refdata"
	"github.com/DurgaPydahSoft/client-sub008/validation"
)

type StudentHandler struct {
	mu       sync.Mutex
	sessions map[string]*validation.Batch
}

func NewStudentHandler() *StudentHandler {
	return &StudentHandler{sessions: map[string]*validation.Batch{}}
}

/* -------------------- Validation context -------------------- */

// validationContext builds the reference data for a validation pass:
// courses from the registry table, the room directory from the rooms
// table when populated, the built-in directory otherwise.
func validationContext() validation.Context {
	var courses []models.Course
	_ = database.DB.Find(&courses).Error

	dir := refdata.DefaultRooms()
	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err == nil && len(rooms) > 0 {
		dir = refdata.RoomDirectory{}
		for _, r := range rooms {
			byCat := dir[r.Gender]
			if byCat == nil {
				byCat = map[string][]string{}
				dir[r.Gender] = byCat
			}
			byCat[r.Category] = append(byCat[r.Category], r.RoomNumber)
		}
	}

	return validation.Context{
		Courses: refdata.NewCourseRegistry(courses),
		Rooms:   dir,
	}
}

/* -------------------- Row to model -------------------- */

func rowToStudent(row validation.Row, ctx validation.Context) models.Student {
	trim := strings.TrimSpace
	year := 0
	if y, err := strconv.Atoi(trim(row.Year)); err == nil {
		year = y
	}
	start, end, _ := normalize.Batch(row.Batch)
	if end == 0 && start > 0 {
		// Bare enrollment year: graduation is inferred from the course,
		// never validated (the duration rule only binds full ranges).
		d, _ := ctx.Courses.DurationFor(row.Course)
		end = start + d
	}
	return models.Student{
		Name:         trim(row.Name),
		RollNumber:   trim(row.RollNumber),
		Gender:       normalize.Gender(row.Gender),
		Course:       normalize.CourseName(row.Course),
		Branch:       trim(row.Branch),
		Year:         year,
		Category:     normalize.Category(row.Category),
		RoomNumber:   trim(row.RoomNumber),
		StudentPhone: normalize.Phone(row.StudentPhone),
		ParentPhone:  normalize.Phone(row.ParentPhone),
		Email:        trim(row.Email),
		BatchStart:   start,
		BatchEnd:     end,
		AcademicYear: trim(row.AcademicYear),
	}
}

/* -------------------- Commit sink -------------------- */

// gormSink persists valid rows one by one so a row rejected by the
// database (duplicate roll number, overbooked bed) fails alone while the
// rest of the batch stands.
type gormSink struct {
	db  *gorm.DB
	ctx validation.Context
}

func (s gormSink) SaveRows(rows []validation.IndexedRow) (int, []validation.RowFailure, error) {
	persisted := 0
	var failures []validation.RowFailure
	for _, r := range rows {
		rec := rowToStudent(r.Row, s.ctx)
		if err := s.db.Create(&rec).Error; err != nil {
			failures = append(failures, validation.RowFailure{Index: r.Index, Reason: err.Error()})
			continue
		}
		persisted++
	}
	return persisted, failures, nil
}

/* -------------------- Bulk upload workflow -------------------- */

// POST /students/bulk/preview - rows in, session + per-row errors out.
func (h *StudentHandler) BulkPreview(c echo.Context) error {
	var rows []validation.Row
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "EMPTY_BATCH"})
	}

	batch := validation.NewBatch(rows, validationContext())
	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = batch
	h.mu.Unlock()

	valid, invalid := batch.Partition()
	return c.JSON(http.StatusOK, map[string]any{
		"session": id,
		"rows":    batch.Rows(),
		"valid":   len(valid),
		"invalid": len(invalid),
	})
}

func (h *StudentHandler) session(c echo.Context) (*validation.Batch, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.sessions[c.Param("session")]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "SESSION_NOT_FOUND"})
	}
	return b, nil
}

// PUT /students/bulk/:session/rows/:index - edit one field, revalidate
// that row only.
func (h *StudentHandler) BulkEditRow(c echo.Context) error {
	batch, err := h.session(c)
	if err != nil {
		return err
	}
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	idx := atoiOr(c.Param("index"), -1)
	errs, err := batch.SetField(idx, req.Field, req.Value)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROW_EDIT", "detail": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"index": idx, "errors": errs})
}

// DELETE /students/bulk/:session/rows/:index
func (h *StudentHandler) BulkRemoveRow(c echo.Context) error {
	batch, err := h.session(c)
	if err != nil {
		return err
	}
	idx := atoiOr(c.Param("index"), -1)
	if err := batch.RemoveRow(idx); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROW_INDEX"})
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /students/bulk/:session/commit - persist the valid rows only.
func (h *StudentHandler) BulkCommit(c echo.Context) error {
	batch, err := h.session(c)
	if err != nil {
		return err
	}
	result, err := batch.Commit(gormSink{db: database.DB, ctx: validationContext()})
	if err == validation.ErrNoValidRows {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "NO_VALID_ROWS"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "COMMIT_FAILED"})
	}

	h.mu.Lock()
	delete(h.sessions, c.Param("session"))
	h.mu.Unlock()

	status := http.StatusCreated
	if result.Failed > 0 {
		status = http.StatusConflict
	}
	return c.JSON(status, result)
}

/* -------------------- Single-record CRUD -------------------- */

func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	size := 20
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}

	var items []models.Student
	tx := database.DB.Model(&models.Student{})

	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("roll_number ILIKE ? OR name ILIKE ? OR room_number ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

func (h *StudentHandler) Get(c echo.Context) error {
	id := c.Param("id")
	var s models.Student
	if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StudentHandler) Create(c echo.Context) error {
	var row validation.Row
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	ctx := validationContext()
	if errs := validation.Validate(row, ctx); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	s := rowToStudent(row, ctx)
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StudentHandler) Update(c echo.Context) error {
	id := c.Param("id")
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var row validation.Row
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	// Edits to existing students tolerate a batch↔course duration
	// mismatch: log and proceed instead of blocking, unlike bulk create.
	ctx := validationContext()
	errs := validation.Validate(row, ctx)
	if msg, ok := errs[validation.FieldBatch]; ok && strings.Contains(msg, "the course runs") {
		log.Printf("[students] warn: roll %s batch %q does not match course %q duration",
			strings.TrimSpace(row.RollNumber), strings.TrimSpace(row.Batch), strings.TrimSpace(row.Course))
		delete(errs, validation.FieldBatch)
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	updated := rowToStudent(row, ctx)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.BedNumber = existing.BedNumber
	updated.LockerNumber = existing.LockerNumber

	if err := database.DB.Save(&updated).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *StudentHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := database.DB.Delete(&models.Student{}, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

/* -------------------- Reference lookups for the upload UI ---------- */

// GET /students/reference - enums the upload form needs.
func (h *StudentHandler) Reference(c echo.Context) error {
	ctx := validationContext()
	gender := strings.TrimSpace(c.QueryParam("gender"))
	category := strings.TrimSpace(c.QueryParam("category"))

	out := map[string]any{
		"categories":     refdata.CategoriesFor(gender),
		"academic_years": refdata.AcademicYearWindow(time.Now(), 3, 3),
	}
	if gender != "" && category != "" {
		out["rooms"] = ctx.Rooms.RoomsFor(gender, category)
	}
	var courses []models.Course
	if err := database.DB.Order("name ASC").Find(&courses).Error; err == nil {
		out["courses"] = courses
	}
	return c.JSON(http.StatusOK, out)
}
