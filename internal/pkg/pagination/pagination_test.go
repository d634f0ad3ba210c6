package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
		wantSize int
	}{
		{"defaults", "/articles", 1, 10},
		{"explicit", "/articles?page=3&size=25", 3, 25},
		{"zero page", "/articles?page=0", 1, 10},
		{"negative page", "/articles?page=-2", 1, 10},
		{"zero size", "/articles?size=0", 1, 10},
		{"size above cap", "/articles?size=500", 1, 100},
		{"garbage values", "/articles?page=abc&size=xyz", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromContext(newTestContext(t, tt.target))
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantSize, q.Size)
		})
	}
}

func TestPages(t *testing.T) {
	assert.Equal(t, 0, Pages(0, 10))
	assert.Equal(t, 1, Pages(1, 10))
	assert.Equal(t, 1, Pages(10, 10))
	assert.Equal(t, 2, Pages(11, 10))
	assert.Equal(t, 5, Pages(41, 10))
	assert.Equal(t, 0, Pages(100, 0))
}

func TestPaginate(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer conn.Close()

	db, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(25))
	mock.ExpectQuery("SELECT \\* FROM `items`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))

	type item struct{ ID uint }
	var rows []item
	page, err := Paginate(db.Table("items"), Query{Page: 2, Size: 10}, &rows)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
