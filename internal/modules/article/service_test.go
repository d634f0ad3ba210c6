package article

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vueblog/blog-backend/internal/pkg/pagination"
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
	return NewService(db, nil), mock
}

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		sortBy  string
		sortDir string
		want    string
		wantErr error
	}{
		{"", "", "created_at DESC", nil},
		{"createTime", "asc", "created_at ASC", nil},
		{"viewCount", "", "view_count DESC", nil},
		{"viewCount", "ASC", "view_count ASC", nil},
		{"title", "desc", "title DESC", nil},
		{"view_count", "", "", ErrInvalidSortField},
		{"id; DROP TABLE articles", "", "", ErrInvalidSortField},
	}
	for _, tt := range tests {
		got, err := resolveOrder(tt.sortBy, tt.sortDir)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultTopLimit, clampLimit(0, defaultTopLimit))
	assert.Equal(t, defaultHotLimit, clampLimit(0, defaultHotLimit))
	assert.Equal(t, defaultTopLimit, clampLimit(-3, defaultTopLimit))
	assert.Equal(t, 7, clampLimit(7, defaultTopLimit))
	assert.Equal(t, maxTopLimit, clampLimit(100, defaultTopLimit))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "", likePattern("  "))
	assert.Equal(t, "%go%", likePattern("Go"))
	assert.Equal(t, "%hello world%", likePattern(" Hello World "))
}

func TestListAllFilters(t *testing.T) {
	svc, mock := newMockService(t)

	// gorm wraps AND/OR string conditions in its own parentheses.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE \\(status = \\? AND category_id = \\?\\) AND \\(\\(LOWER\\(title\\) LIKE \\? OR LOWER\\(content\\) LIKE \\?\\)\\)").
		WithArgs(1, 2, "%go%", "%go%").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE \\(status = \\? AND category_id = \\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q := &ListArticlesQuery{Status: intPtr(1), CategoryID: uintPtr(2), Keyword: "Go"}
	page, err := svc.List(q, pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListKeywordOnly(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE \\(LOWER\\(title\\) LIKE \\? OR LOWER\\(content\\) LIKE \\?\\)").
		WithArgs("%redis%", "%redis%").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE \\(LOWER\\(title\\) LIKE \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.List(&ListArticlesQuery{Keyword: "redis"}, pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNoFilters(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.List(&ListArticlesQuery{}, pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchInvalidSortField(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.Search(&SearchArticlesQuery{SortBy: "bogus"}, pagination.Query{Page: 1, Size: 10})
	assert.ErrorIs(t, err, ErrInvalidSortField)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchKeywordAndTag(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles` WHERE status = \\? AND \\(\\(LOWER\\(title\\) LIKE \\? OR LOWER\\(content\\) LIKE \\? OR LOWER\\(summary\\) LIKE \\?\\)\\) AND tags LIKE \\?").
		WithArgs(1, "%go%", "%go%", "%go%", "%golang%").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE status = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q := &SearchArticlesQuery{Keyword: "go", Tag: "golang"}
	_, err := svc.Search(q, pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDIncrementsViewCount(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id", "view_count", "status"}).
			AddRow(1, "hello", 2, 9, 1))
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "tech"))
	mock.ExpectExec("UPDATE `articles` SET `view_count`=view_count \\+ \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	a, err := svc.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "hello", a.Title)
	assert.Equal(t, 10, a.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	a, err := svc.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnknownCategory(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), &CreateArticleDTO{
		Title:      "t",
		Content:    "c",
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRemovesComments(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `articles` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `comments` WHERE article_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `articles` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrArticleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
