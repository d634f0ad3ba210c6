package category

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewService(db), mock
}

func TestListWithArticleCounts(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE status = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort"}).
			AddRow(1, "tech", 0).
			AddRow(2, "life", 1))
	mock.ExpectQuery("SELECT category_id, COUNT\\(\\*\\) AS count FROM `articles` GROUP BY `category_id`").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "count"}).AddRow(1, 7))

	out, err := svc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "tech", out[0].Name)
	assert.Equal(t, int64(7), out[0].ArticleCount)
	assert.Equal(t, int64(0), out[1].ArticleCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateName(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE name = \\?").
		WithArgs("tech").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	_, err := svc.Create(&CreateCategoryDTO{Name: "tech"})
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRefusedWhileInUse(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE category_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectRollback()

	err := svc.Delete(1)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmptyCategory(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE category_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("DELETE FROM `categories` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE category_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("DELETE FROM `categories` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
