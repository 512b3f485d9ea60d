// Package valueobject contains domain value objects for the Life Manager system.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
)

// Day planner bounds. Slots are one hour long, from 06:00 to 23:00 inclusive.
const (
	FirstSlotHour = 6
	LastSlotHour  = 23

	slotPrefix = "slot-"
)

// TimeSlot is an hour of the day a task can be dropped on.
type TimeSlot struct {
	Hour int
}

// ParseTimeSlot accepts a drop target id ("slot-14") or a bare hour ("14").
func ParseTimeSlot(target string) (TimeSlot, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(target), slotPrefix)
	hour, err := strconv.Atoi(raw)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid time slot %q", target)
	}
	if hour < FirstSlotHour || hour > LastSlotHour {
		return TimeSlot{}, fmt.Errorf("time slot hour %d outside %d..%d", hour, FirstSlotHour, LastSlotHour)
	}
	return TimeSlot{Hour: hour}, nil
}

// ID returns the drop target id of the slot.
func (s TimeSlot) ID() string {
	return fmt.Sprintf("%s%d", slotPrefix, s.Hour)
}

// Time returns the slot start as stored in scheduled_time, e.g. "09:00:00".
func (s TimeSlot) Time() string {
	return fmt.Sprintf("%02d:00:00", s.Hour)
}

// DaySlots returns every slot of the planner in order.
func DaySlots() []TimeSlot {
	slots := make([]TimeSlot, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, TimeSlot{Hour: h})
	}
	return slots
}
