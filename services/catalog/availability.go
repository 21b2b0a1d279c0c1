package catalog

import "doctorsportal/models"

// ComputeAvailability returns a copy of services where each service's slots
// are reduced to those not claimed by a booking for that service. bookings
// must already be restricted to a single date. Slot order is preserved.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.Service {
	booked := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookings {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				available = append(available, slot)
			}
		}
		svc.Slots = available
		out = append(out, svc)
	}
	return out
}
