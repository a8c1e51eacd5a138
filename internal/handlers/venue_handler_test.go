package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fyyur/internal/middleware"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	return r, mock
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchVenuesEmptyTermReturnsAll(t *testing.T) {
	r, mock := newTestRouter(t)
	r.POST("/venues/search", SearchVenues)

	rows := sqlmock.NewRows([]string{"id", "name", "city", "state", "upcoming_show_number"}).
		AddRow(1, "The Musical Hop", "San Francisco", "CA", 1).
		AddRow(2, "The Dueling Pianos Bar", "New York", "NY", 0)

	mock.ExpectQuery(`WHERE venues\.name ILIKE \$2`).
		WithArgs(sqlmock.AnyArg(), "%%").
		WillReturnRows(rows)

	w := postForm(t, r, "/venues/search", url.Values{"search_term": {""}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Results struct {
			Count int `json:"count"`
			Data  []struct {
				Name               string `json:"name"`
				UpcomingShowNumber int    `json:"upcoming_show_number"`
			} `json:"data"`
		} `json:"results"`
		SearchTerm string `json:"search_term"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Results.Count != 2 || len(body.Results.Data) != 2 {
		t.Fatalf("expected every venue with count 2, got %+v", body.Results)
	}
	if body.Results.Data[0].UpcomingShowNumber != 1 {
		t.Fatalf("upcoming count not carried: %+v", body.Results.Data[0])
	}
}

func TestCreateVenueValidationFailure(t *testing.T) {
	r, mock := newTestRouter(t)
	r.POST("/venues", CreateVenue)

	w := postForm(t, r, "/venues", url.Values{"state": {"CA"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body.Message, "name: this field is required") ||
		!strings.Contains(body.Message, "city: this field is required") {
		t.Fatalf("expected aggregated field errors, got %q", body.Message)
	}

	// Validation failures never reach the store.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database activity: %v", err)
	}
}

func TestUpdateVenueFullOverwrite(t *testing.T) {
	r, mock := newTestRouter(t)
	r.PUT("/venues/:id", UpdateVenue)

	mock.ExpectQuery(`SELECT .+ FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "address", "website"}).
			AddRow(1, "The Musical Hop", "San Francisco", "1015 Folsom Street", "https://www.themusicalhop.com"))
	mock.ExpectBegin()
	// Edits are full-replace: columns the form left blank, like
	// address and website here, are written back too.
	mock.ExpectExec(`UPDATE "venues" SET .*"address".*"website".*"seeking_talent"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	form := url.Values{
		"name":  {"The Musical Hop"},
		"city":  {"San Francisco"},
		"state": {"CA"},
	}
	req := httptest.NewRequest(http.MethodPut, "/venues/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "successfully updated") {
		t.Fatalf("expected update notice, got %s", w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVenueNotFound(t *testing.T) {
	r, mock := newTestRouter(t)
	r.DELETE("/venues/:id", DeleteVenue)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/venues/123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteVenueSuccessNotice(t *testing.T) {
	r, mock := newTestRouter(t)
	r.DELETE("/venues/:id", DeleteVenue)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "venues"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "removed together with all of its shows") {
		t.Fatalf("expected cascade notice, got %s", w.Body.String())
	}
}
