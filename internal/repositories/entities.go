package repositories

import (
	"database/sql"

	"travelplan/internal/domain/models"
)

// Store constructors, one per entity type. Passing a nil DB falls back to the
// shared connection, mirroring how the handlers use them.

func NewUserStore(db *sql.DB) Store[models.User] {
	return Store[models.User]{DB: db, Info: EntityInfo[models.User]{
		Table: "users",
		Kind:  "user",
		Columns: []string{
			"id", "name", "email",
		},
		Scan: func(row Scanner) (models.User, error) {
			var u models.User
			err := row.Scan(&u.ID, &u.Name, &u.Email)
			return u, err
		},
		Insert: func(u models.User) ([]string, []any) {
			return []string{"name", "email"}, []any{u.Name, u.Email}
		},
		SetID: func(u *models.User, id int64) { u.ID = id },
	}}
}

func NewTravelStore(db *sql.DB) Store[models.Travel] {
	return Store[models.Travel]{DB: db, Info: EntityInfo[models.Travel]{
		Table: "travels",
		Kind:  "travel",
		Columns: []string{
			"id", "name", "COALESCE(description,'')", "start_date", "end_date",
		},
		Scan: func(row Scanner) (models.Travel, error) {
			var t models.Travel
			err := row.Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate)
			return t, err
		},
		Insert: func(t models.Travel) ([]string, []any) {
			return []string{"name", "description", "start_date", "end_date"},
				[]any{t.Name, t.Description, t.StartDate, t.EndDate}
		},
		SetID: func(t *models.Travel, id int64) { t.ID = id },
	}}
}

func NewCityStore(db *sql.DB) Store[models.City] {
	return Store[models.City]{DB: db, Info: EntityInfo[models.City]{
		Table: "cities",
		Kind:  "city",
		Columns: []string{
			"id", "name", "country",
		},
		Scan: func(row Scanner) (models.City, error) {
			var c models.City
			err := row.Scan(&c.ID, &c.Name, &c.Country)
			return c, err
		},
		Insert: func(c models.City) ([]string, []any) {
			return []string{"name", "country"}, []any{c.Name, c.Country}
		},
		SetID: func(c *models.City, id int64) { c.ID = id },
	}}
}

func NewAccommodationStore(db *sql.DB) Store[models.Accommodation] {
	return Store[models.Accommodation]{DB: db, Info: EntityInfo[models.Accommodation]{
		Table: "accommodations",
		Kind:  "accommodation",
		Columns: []string{
			"id", "name", "COALESCE(description,'')", "location", "price",
			"start_date", "end_date", "COALESCE(observations,'')", "city_id", "travel_id",
		},
		Scan: func(row Scanner) (models.Accommodation, error) {
			var a models.Accommodation
			err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Location, &a.Price,
				&a.StartDate, &a.EndDate, &a.Observations, &a.CityID, &a.TravelID)
			return a, err
		},
		Insert: func(a models.Accommodation) ([]string, []any) {
			return []string{"name", "description", "location", "price",
					"start_date", "end_date", "observations", "city_id", "travel_id"},
				[]any{a.Name, a.Description, a.Location, a.Price,
					a.StartDate, a.EndDate, a.Observations, a.CityID, a.TravelID}
		},
		SetID: func(a *models.Accommodation, id int64) { a.ID = id },
	}}
}

func NewTransportStore(db *sql.DB) Store[models.Transport] {
	return Store[models.Transport]{DB: db, Info: EntityInfo[models.Transport]{
		Table: "transports",
		Kind:  "transport",
		Columns: []string{
			"id", "type", "company", "price", "start_date", "start_location",
			"end_date", "end_location", "start_city_id", "end_city_id", "travel_id",
		},
		Scan: func(row Scanner) (models.Transport, error) {
			var t models.Transport
			err := row.Scan(&t.ID, &t.Type, &t.Company, &t.Price, &t.StartDate, &t.StartLocation,
				&t.EndDate, &t.EndLocation, &t.StartCityID, &t.EndCityID, &t.TravelID)
			return t, err
		},
		Insert: func(t models.Transport) ([]string, []any) {
			return []string{"type", "company", "price", "start_date", "start_location",
					"end_date", "end_location", "start_city_id", "end_city_id", "travel_id"},
				[]any{t.Type, t.Company, t.Price, t.StartDate, t.StartLocation,
					t.EndDate, t.EndLocation, t.StartCityID, t.EndCityID, t.TravelID}
		},
		SetID: func(t *models.Transport, id int64) { t.ID = id },
	}}
}

func NewActivityStore(db *sql.DB) Store[models.Activity] {
	return Store[models.Activity]{DB: db, Info: EntityInfo[models.Activity]{
		Table: "activities",
		Kind:  "activity",
		Columns: []string{
			"id", "name", "COALESCE(description,'')", "location", "start_datetime",
			"price", "duration", "city_id", "travel_id",
		},
		Scan: func(row Scanner) (models.Activity, error) {
			var a models.Activity
			err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Location, &a.StartDatetime,
				&a.Price, &a.Duration, &a.CityID, &a.TravelID)
			return a, err
		},
		Insert: func(a models.Activity) ([]string, []any) {
			return []string{"name", "description", "location", "start_datetime",
					"price", "duration", "city_id", "travel_id"},
				[]any{a.Name, a.Description, a.Location, a.StartDatetime,
					a.Price, a.Duration, a.CityID, a.TravelID}
		},
		SetID: func(a *models.Activity, id int64) { a.ID = id },
	}}
}

func NewExpenseStore(db *sql.DB) Store[models.Expense] {
	return Store[models.Expense]{DB: db, Info: EntityInfo[models.Expense]{
		Table: "expenses",
		Kind:  "expense",
		Columns: []string{
			"id", "description", "amount", "datetime", "user_id", "travel_id",
			"accommodation_id", "transport_id", "activity_id",
		},
		Scan: func(row Scanner) (models.Expense, error) {
			var e models.Expense
			var acc, tra, act sql.NullInt64
			err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Datetime,
				&e.UserID, &e.TravelID, &acc, &tra, &act)
			if acc.Valid {
				e.AccommodationID = &acc.Int64
			}
			if tra.Valid {
				e.TransportID = &tra.Int64
			}
			if act.Valid {
				e.ActivityID = &act.Int64
			}
			return e, err
		},
		Insert: func(e models.Expense) ([]string, []any) {
			return []string{"description", "amount", "datetime", "user_id", "travel_id",
					"accommodation_id", "transport_id", "activity_id"},
				[]any{e.Description, e.Amount, e.Datetime, e.UserID, e.TravelID,
					nullableID(e.AccommodationID), nullableID(e.TransportID), nullableID(e.ActivityID)}
		},
		SetID: func(e *models.Expense, id int64) { e.ID = id },
	}}
}

func nullableID(id *int64) any {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}
