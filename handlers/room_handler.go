package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DurgaPydahSoft/client-sub008/allocation"
	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/normalize"
)

type RoomHandler struct{}

func NewRoomHandler() *RoomHandler { return &RoomHandler{} }

/* -------------------- allocation.Store over GORM -------------------- */

// gormStore reads rooms and live occupancy straight from the database on
// every call - no caching, so concurrent admins see current counts.
type gormStore struct{ db *gorm.DB }

func (s gormStore) RoomsFor(gender, category string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.
		Where("gender = ? AND category = ?", normalize.Gender(gender), normalize.Category(category)).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s gormStore) Room(roomNumber string) (models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "room_number = ?", roomNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return room, allocation.ErrRoomUnknown
		}
		return room, err
	}
	return room, nil
}

func (s gormStore) ActiveAssignments(roomNumber string) (beds, lockers []string, err error) {
	// Students hold their bed for the whole stay.
	var students []models.Student
	if err := s.db.Where("room_number = ?", roomNumber).Find(&students).Error; err != nil {
		return nil, nil, err
	}
	for _, st := range students {
		if st.BedNumber != "" {
			beds = append(beds, st.BedNumber)
		}
		if st.LockerNumber != "" {
			lockers = append(lockers, st.LockerNumber)
		}
	}
	// Staff/guests hold theirs until checkout.
	var occs []models.Occupant
	if err := s.db.Where("room_number = ? AND checkout_date IS NULL", roomNumber).Find(&occs).Error; err != nil {
		return nil, nil, err
	}
	for _, o := range occs {
		if o.BedNumber != "" {
			beds = append(beds, o.BedNumber)
		}
		if o.LockerNumber != "" {
			lockers = append(lockers, o.LockerNumber)
		}
	}
	return beds, lockers, nil
}

func (s gormStore) OccupantCount(roomNumber string) (int, error) {
	// Bulk-admitted students are placed by room without a bed number, so
	// counting bed assignments alone would report an occupied room empty.
	var students int64
	if err := s.db.Model(&models.Student{}).
		Where("room_number = ?", roomNumber).
		Count(&students).Error; err != nil {
		return 0, err
	}
	var occupants int64
	if err := s.db.Model(&models.Occupant{}).
		Where("room_number = ? AND checkout_date IS NULL", roomNumber).
		Count(&occupants).Error; err != nil {
		return 0, err
	}
	return int(students + occupants), nil
}

/* -------------------- Handlers -------------------- */

// GET /rooms/availability?gender=&category=
func (h *RoomHandler) Availability(c echo.Context) error {
	gender := strings.TrimSpace(c.QueryParam("gender"))
	category := strings.TrimSpace(c.QueryParam("category"))
	if normalize.Gender(gender) == "" || normalize.Category(category) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_GENDER_OR_CATEGORY"})
	}

	resolver := allocation.NewResolver(gormStore{db: database.DB})
	rooms, err := resolver.AvailabilityFor(gender, category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rooms, "total": len(rooms)})
}

// GET /rooms/:number/slots - free beds and lockers of one room.
func (h *RoomHandler) Slots(c echo.Context) error {
	resolver := allocation.NewResolver(gormStore{db: database.DB})
	slots, err := resolver.SlotsFor(c.Param("number"))
	if err == allocation.ErrRoomUnknown {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "ROOM_NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, slots)
}

// GET /rooms - full room list for admin screens.
func (h *RoomHandler) List(c echo.Context) error {
	var rooms []models.Room
	if err := database.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rooms, "total": len(rooms)})
}
