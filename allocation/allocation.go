// Package allocation resolves room, bed and locker availability against
// live occupancy. It never caches: every query goes back to the store so
// two admins working at once both see fresh counts, and the final
// at-most-one-occupant-per-bed guarantee stays with the persistence layer.
package allocation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DurgaPydahSoft/client-sub008/models"
)

var (
	ErrRoomUnknown = errors.New("room not found")
	ErrBedTaken    = errors.New("bed already assigned")
	ErrLockerTaken = errors.New("locker already assigned")
)

// Store supplies current room and occupancy data. Implementations read
// the database directly; results must reflect the state at call time.
type Store interface {
	RoomsFor(gender, category string) ([]models.Room, error)
	Room(roomNumber string) (models.Room, error)
	// ActiveAssignments returns the bed and locker numbers currently held
	// by occupants of a room (students and staff/guests alike).
	ActiveAssignments(roomNumber string) (beds, lockers []string, err error)
	// OccupantCount returns how many people a room currently houses,
	// whether or not each holds a bed number. Bulk-admitted students are
	// placed by room only, so bed assignments undercount a full room.
	OccupantCount(roomNumber string) (int, error)
}

// RoomAvailability is one room with its computed occupancy figures.
type RoomAvailability struct {
	RoomNumber    string  `json:"room_number"`
	Gender        string  `json:"gender"`
	Category      string  `json:"category"`
	BedCount      int     `json:"bed_count"`
	StudentCount  int     `json:"student_count"`
	AvailableBeds int     `json:"available_beds"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// SlotAvailability lists the free bed and locker identifiers of a room.
type SlotAvailability struct {
	RoomNumber       string   `json:"room_number"`
	AvailableBeds    []string `json:"available_beds"`
	AvailableLockers []string `json:"available_lockers"`
}

type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver { return &Resolver{store: store} }

// AvailabilityFor reports every (gender, category) room with fresh
// occupancy numbers. AvailableBeds is floored at zero so a historically
// overbooked room never shows negative space.
func (r *Resolver) AvailabilityFor(gender, category string) ([]RoomAvailability, error) {
	rooms, err := r.store.RoomsFor(gender, category)
	if err != nil {
		return nil, err
	}
	out := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		occupied, err := r.store.OccupantCount(room.RoomNumber)
		if err != nil {
			return nil, err
		}
		avail := room.BedCount - occupied
		if avail < 0 {
			avail = 0
		}
		rate := 0.0
		if room.BedCount > 0 {
			rate = float64(occupied) / float64(room.BedCount)
		}
		out = append(out, RoomAvailability{
			RoomNumber:    room.RoomNumber,
			Gender:        room.Gender,
			Category:      room.Category,
			BedCount:      room.BedCount,
			StudentCount:  occupied,
			AvailableBeds: avail,
			OccupancyRate: rate,
		})
	}
	return out, nil
}

// SlotsFor computes the free bed/locker identifiers of a room as the
// complement of what active occupants hold. Identifiers are "1".."N" and
// are only unique within the room.
func (r *Resolver) SlotsFor(roomNumber string) (SlotAvailability, error) {
	room, err := r.store.Room(roomNumber)
	if err != nil {
		return SlotAvailability{}, err
	}
	takenBeds, takenLockers, err := r.store.ActiveAssignments(roomNumber)
	if err != nil {
		return SlotAvailability{}, err
	}
	return SlotAvailability{
		RoomNumber:       room.RoomNumber,
		AvailableBeds:    freeSlots(room.BedCount, takenBeds),
		AvailableLockers: freeSlots(room.BedCount, takenLockers),
	}, nil
}

func freeSlots(count int, taken []string) []string {
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		used[t] = struct{}{}
	}
	free := []string{}
	for i := 1; i <= count; i++ {
		id := strconv.Itoa(i)
		if _, ok := used[id]; !ok {
			free = append(free, id)
		}
	}
	return free
}

// Selection is a room/bed/locker pick in progress. Bed and locker
// identifiers are room-scoped, so choosing a different room always resets
// them - callers go through ChooseRoom rather than assigning fields.
type Selection struct {
	RoomNumber   string `json:"room_number"`
	BedNumber    string `json:"bed_number"`
	LockerNumber string `json:"locker_number"`
}

// ChooseRoom switches the selection to a room, discarding any bed/locker
// carried over from the previous room.
func (s *Selection) ChooseRoom(roomNumber string) {
	if s.RoomNumber != roomNumber {
		s.BedNumber = ""
		s.LockerNumber = ""
	}
	s.RoomNumber = roomNumber
}

// ChooseBed validates the bed against current availability.
func (s *Selection) ChooseBed(r *Resolver, bed string) error {
	slots, err := r.SlotsFor(s.RoomNumber)
	if err != nil {
		return err
	}
	for _, b := range slots.AvailableBeds {
		if b == bed {
			s.BedNumber = bed
			return nil
		}
	}
	return fmt.Errorf("bed %s in room %s: %w", bed, s.RoomNumber, ErrBedTaken)
}

// ChooseLocker validates the locker against current availability.
func (s *Selection) ChooseLocker(r *Resolver, locker string) error {
	slots, err := r.SlotsFor(s.RoomNumber)
	if err != nil {
		return err
	}
	for _, l := range slots.AvailableLockers {
		if l == locker {
			s.LockerNumber = locker
			return nil
		}
	}
	return fmt.Errorf("locker %s in room %s: %w", locker, s.RoomNumber, ErrLockerTaken)
}
