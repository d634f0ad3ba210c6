package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vueblog/blog-backend/internal/pkg/jwt"
	"github.com/vueblog/blog-backend/internal/pkg/response"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", Auth(db), func(c *gin.Context) {
		response.OK(c, gin.H{"userId": CurrentUserID(c)})
	})
	return r
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"abc.def.ghi", "abc.def.ghi"},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"BEARER   abc.def.ghi  ", "abc.def.ghi"},
		{"  Bearer abc  ", "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeToken(tt.raw))
	}
}

func TestAuthMissingToken(t *testing.T) {
	db, mock := newMockDB(t)
	r := newAuthRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthEnabledUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := newAuthRouter(db)

	token, err := jwt.Sign(1, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, status FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, 1))

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthDisabledUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := newAuthRouter(db)

	token, err := jwt.Sign(1, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, status FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, 0))

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthExpiredToken(t *testing.T) {
	db, mock := newMockDB(t)
	r := newAuthRouter(db)

	token, err := jwt.Sign(1, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	db, mock := newMockDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", OptionalAuth(db), func(c *gin.Context) {
		response.OK(c, gin.H{"authed": IsAuthenticated(c)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authed":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
