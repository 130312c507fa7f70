package services

import (
	"strings"
	"testing"

	"travelplan/internal/domain"
	"travelplan/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func membershipServiceForTest(t *testing.T) (MembershipService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := MembershipService{
		Travels: repositories.NewTravelStore(db),
		Members: repositories.MembershipRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectTravelRow(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery("FROM travels WHERE id=").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "start_date", "end_date"}).
			AddRow(id, "Summer trip", "", "2024-07-01", "2024-07-14"))
}

func TestAddMembersAddsOnlyNewUsers(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	// Travel 1 currently has member 1; adding {1, 2} writes only the pair for 2.
	mock.ExpectBegin()
	expectTravelRow(mock, 1)
	mock.ExpectQuery("SELECT id FROM users WHERE id IN").WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectQuery("SELECT user_id FROM users_travels").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO users_travels").WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("JOIN users u").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Ana", "ana@example.com").
			AddRow(2, "Bea", "bea@example.com"))
	mock.ExpectCommit()

	travel, err := svc.AddMembers(1, []int64{1, 2})
	if err != nil {
		t.Fatalf("AddMembers returned error: %v", err)
	}
	if len(travel.Users) != 2 {
		t.Fatalf("expected members {1,2}, got %+v", travel.Users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddMembersIsIdempotent(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	// User 1 already attached: no INSERT may run.
	mock.ExpectBegin()
	expectTravelRow(mock, 1)
	mock.ExpectQuery("SELECT id FROM users WHERE id IN").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT user_id FROM users_travels").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))
	mock.ExpectQuery("JOIN users u").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Ana", "ana@example.com"))
	mock.ExpectCommit()

	travel, err := svc.AddMembers(1, []int64{1})
	if err != nil {
		t.Fatalf("re-adding an existing member must succeed: %v", err)
	}
	if len(travel.Users) != 1 {
		t.Fatalf("member set must be unchanged, got %+v", travel.Users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no write may happen on a no-op add: %v", err)
	}
}

func TestAddMembersRejectsWholeBatchOnMissingUser(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTravelRow(mock, 1)
	mock.ExpectQuery("SELECT id FROM users WHERE id IN").WithArgs(int64(1), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.AddMembers(1, []int64{1, 99})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("error should name the missing id, got %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no partial add may happen: %v", err)
	}
}

func TestAddMembersUnknownTravel(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM travels WHERE id=").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "start_date", "end_date"}))
	mock.ExpectRollback()

	_, err := svc.AddMembers(8, []int64{1})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "travel 8") {
		t.Fatalf("error should name the travel, got %q", err.Error())
	}
}

func TestRemoveMember(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	mock.ExpectBegin()
	expectTravelRow(mock, 1)
	mock.ExpectExec("DELETE FROM users_travels").WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.RemoveMember(1, 2); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveMemberNotAMember(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	// Removing a non-member is an error, not a silent no-op.
	mock.ExpectBegin()
	expectTravelRow(mock, 1)
	mock.ExpectExec("DELETE FROM users_travels").WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.RemoveMember(1, 3)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "user 3") {
		t.Fatalf("error should name the user, got %q", err.Error())
	}
}

func TestListMembers(t *testing.T) {
	svc, mock, closeDB := membershipServiceForTest(t)
	defer closeDB()

	expectTravelRow(mock, 1)
	mock.ExpectQuery("JOIN users u").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(1, "Ana", "ana@example.com"))

	users, err := svc.ListMembers(1)
	if err != nil {
		t.Fatalf("ListMembers returned error: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Ana" {
		t.Fatalf("unexpected members %+v", users)
	}
}
