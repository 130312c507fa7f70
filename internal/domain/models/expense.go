package models

type Expense struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Datetime    string `json:"datetime"`
	UserID      int64  `json:"user_id"`
	TravelID    int64  `json:"travel_id"`

	// At most one of these should reference a travel child; the database
	// does not enforce exclusivity, callers are expected to.
	AccommodationID *int64 `json:"accommodation_id,omitempty"`
	TransportID     *int64 `json:"transport_id,omitempty"`
	ActivityID      *int64 `json:"activity_id,omitempty"`
}

type ExpensePatch struct {
	Description     *string `json:"description"`
	Amount          *int64  `json:"amount"`
	Datetime        *string `json:"datetime"`
	UserID          *int64  `json:"user_id"`
	TravelID        *int64  `json:"travel_id"`
	AccommodationID *int64  `json:"accommodation_id"`
	TransportID     *int64  `json:"transport_id"`
	ActivityID      *int64  `json:"activity_id"`
}

func (p ExpensePatch) Changes() ([]string, []any) {
	cols := []string{}
	args := []any{}
	if p.Description != nil {
		cols = append(cols, "description")
		args = append(args, *p.Description)
	}
	if p.Amount != nil {
		cols = append(cols, "amount")
		args = append(args, *p.Amount)
	}
	if p.Datetime != nil {
		cols = append(cols, "datetime")
		args = append(args, *p.Datetime)
	}
	if p.UserID != nil {
		cols = append(cols, "user_id")
		args = append(args, *p.UserID)
	}
	if p.TravelID != nil {
		cols = append(cols, "travel_id")
		args = append(args, *p.TravelID)
	}
	if p.AccommodationID != nil {
		cols = append(cols, "accommodation_id")
		args = append(args, NullIfZero(*p.AccommodationID))
	}
	if p.TransportID != nil {
		cols = append(cols, "transport_id")
		args = append(args, NullIfZero(*p.TransportID))
	}
	if p.ActivityID != nil {
		cols = append(cols, "activity_id")
		args = append(args, NullIfZero(*p.ActivityID))
	}
	return cols, args
}

// NullIfZero stores optional foreign keys as NULL instead of 0.
func NullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
