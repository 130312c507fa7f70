package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "travelplan/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/users/:id", GetUserByID)
	r.GET("/api/travels/:id/expenses", GetTravelExpenses)
	r.DELETE("/api/travels/:id/users/:user_id", RemoveTravelUser)
	return r
}

func TestGetUserByIDNotFoundResponse(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT id, name, email FROM users").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "user 42 not found") {
		t.Fatalf("body should name the resource and id: %s", w.Body.String())
	}
}

func TestTravelExpensesEmptyListBecomes404(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	// Store level returns an empty slice; the endpoint turns that into 404.
	mock.ExpectQuery("FROM expenses WHERE travel_id IN").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "description", "amount", "datetime", "user_id", "travel_id",
			"accommodation_id", "transport_id", "activity_id",
		}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/travels/5/expenses", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no expenses found for travel 5") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestTravelExpensesReturnsChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("FROM expenses WHERE travel_id IN").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "description", "amount", "datetime", "user_id", "travel_id",
			"accommodation_id", "transport_id", "activity_id",
		}).AddRow(1, "hotel", 120, "2024-06-01 20:00:00", 1, 5, nil, nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/travels/5/expenses", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"description":"hotel"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRemoveTravelUserBadID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/travels/abc/users/1", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-integer id, got %d", w.Code)
	}
}
