package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's claim on one slot of one service on one date.
// Fields the client sends beyond the typed ones are kept in Extra and stored
// alongside them.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Treatment    string             `bson:"treatment" json:"treatment"`
	Date         string             `bson:"date" json:"date"`
	Slot         string             `bson:"slot" json:"slot"`
	PatientEmail string             `bson:"patientEmail" json:"patientEmail"`
	PatientName  string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price        float64            `bson:"price,omitempty" json:"price,omitempty"`

	Extra map[string]any `bson:",inline" json:"-"`
}

var bookingFields = []string{"_id", "treatment", "date", "slot", "patientEmail", "patientName", "phone", "price"}

type bookingJSON Booking

func (b *Booking) UnmarshalJSON(data []byte) error {
	var typed bookingJSON
	extra, err := decodeWithExtra(data, &typed, bookingFields)
	if err != nil {
		return err
	}
	typed.Extra = extra
	*b = Booking(typed)
	return nil
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(bookingJSON(b), b.Extra)
}

// BookingResult is the response of a booking attempt. Success is false when
// the patient already holds a booking for the same treatment and date; the
// posted body is then echoed back unchanged.
type BookingResult struct {
	Success bool `json:"success"`
	Booking any  `json:"booking"`
}
