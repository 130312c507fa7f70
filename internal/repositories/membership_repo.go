package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelplan/internal/config"
	"travelplan/internal/domain/models"
)

// MembershipRepository wraps the users_travels join table. Every method takes
// the query runner explicitly so the reconciler can keep its whole sequence on
// one transaction.
type MembershipRepository struct {
	DB *sql.DB
}

func (r MembershipRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Begin starts the transaction the reconciler runs inside.
func (r MembershipRepository) Begin() (*sql.Tx, error) {
	return r.db().Begin()
}

// ExistingUserIDs returns the subset of ids that have a users row.
func (r MembershipRepository) ExistingUserIDs(q DBTX, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	ph := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := q.Query(`SELECT id FROM users WHERE id IN (`+ph+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// MemberIDs returns the travel's current member user ids.
func (r MembershipRepository) MemberIDs(q DBTX, travelID int64) ([]int64, error) {
	rows, err := q.Query(`SELECT user_id FROM users_travels WHERE travel_id=? ORDER BY user_id`, travelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// AddPairs inserts one membership row per user id.
func (r MembershipRepository) AddPairs(q DBTX, travelID int64, userIDs []int64) error {
	for _, uid := range userIDs {
		if _, err := q.Exec(`INSERT INTO users_travels (user_id, travel_id) VALUES (?, ?)`, uid, travelID); err != nil {
			return err
		}
	}
	return nil
}

// RemovePair deletes one membership row; reports whether it existed.
func (r MembershipRepository) RemovePair(q DBTX, travelID, userID int64) (bool, error) {
	res, err := q.Exec(`DELETE FROM users_travels WHERE user_id=? AND travel_id=?`, userID, travelID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MembersOf loads the travel's member users.
func (r MembershipRepository) MembersOf(q DBTX, travelID int64) ([]models.User, error) {
	rows, err := q.Query(`
		SELECT u.id, u.name, u.email
		FROM users_travels ut
		JOIN users u ON u.id = ut.user_id
		WHERE ut.travel_id=?
		ORDER BY u.id`, travelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
