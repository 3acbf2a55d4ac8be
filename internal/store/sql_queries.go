package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/inkloth/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id",
	"first_name",
	"last_name",
	"user_name",
	"email",
	"password_hash",
	"role",
	"avatar_public_id",
	"avatar_url",
	"reset_token_hash",
	"reset_token_expire",
	"created_at",
}

var blogColumns = []string{
	"b.blog_id",
	"b.title",
	"b.body",
	"b.image_public_id",
	"b.image_url",
	"b.user_id",
	"b.created_at",
	"u.first_name",
	"u.last_name",
	"u.user_name",
}

var (
	userColumnList = strings.Join(userColumns, ", ")
	blogColumnList = strings.Join(blogColumns, ", ")
)

var (
	createUser = `INSERT INTO users (first_name, last_name, user_name, email, password_hash, role, avatar_public_id, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumnList

	findUserByID = `SELECT ` + userColumnList + `
		FROM users
		WHERE user_id = $1`

	findUserByEmail = `SELECT ` + userColumnList + `
		FROM users
		WHERE email = $1`

	consumeResetChallenge = `UPDATE users
		SET password_hash = $2, reset_token_hash = NULL, reset_token_expire = NULL
		WHERE reset_token_hash = $1 AND reset_token_expire > $3
		RETURNING ` + userColumnList

	// createBlog inserts the row and joins the author in the same statement.
	createBlog = `WITH b AS (
			INSERT INTO blogs (title, body, image_public_id, image_url, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING blog_id, title, body, image_public_id, image_url, user_id, created_at
		)
		SELECT ` + blogColumnList + `
		FROM b JOIN users u ON u.user_id = b.user_id`

	findBlogByID = `SELECT ` + blogColumnList + `
		FROM blogs b JOIN users u ON u.user_id = b.user_id
		WHERE b.blog_id = $1`
)

const (
	countUsers = `SELECT COUNT(*) FROM users`

	updatePassword = `UPDATE users
		SET password_hash = $3
		WHERE user_id = $1 AND password_hash = $2`

	setResetChallenge = `UPDATE users
		SET reset_token_hash = $2, reset_token_expire = $3
		WHERE user_id = $1`

	clearResetChallenge = `UPDATE users
		SET reset_token_hash = NULL, reset_token_expire = NULL
		WHERE user_id = $1 AND reset_token_hash = $2`

	deleteUser = `DELETE FROM users WHERE user_id = $1`

	countBlogs = `SELECT COUNT(*) FROM blogs`

	deleteBlog = `DELETE FROM blogs WHERE blog_id = $1 AND user_id = $2`
)

// pageWindow turns page into LIMIT and OFFSET values with the limit kept
// within [1, models.MaxPageLimit].
func pageWindow(page models.Page) (limit, offset uint64) {
	page.Limit = min(max(page.Limit, 1), models.MaxPageLimit)
	return uint64(page.Limit), uint64(page.Offset())
}

// buildListUsersQuery selects one page of users ordered by id.
func buildListUsersQuery(page models.Page) (string, []any, error) {
	limit, offset := pageWindow(page)
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		OrderBy("user_id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds an UPDATE over the allow-listed user columns
// set in update. Columns are emitted in a fixed order.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("users")
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.UserName != nil {
		builder = builder.Set("user_name", *update.UserName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Role != nil {
		builder = builder.Set("role", update.Role.String())
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumnList).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListBlogsQuery selects one page of blogs, newest first, with their
// authors.
func buildListBlogsQuery(page models.Page) (string, []any, error) {
	limit, offset := pageWindow(page)
	query, args, err := psql.
		Select(blogColumns...).
		From("blogs b").
		Join("users u ON u.user_id = b.user_id").
		OrderBy("b.created_at DESC", "b.blog_id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateBlogQuery builds an owner-scoped UPDATE of the blog columns set
// in update. The author is joined in through a CTE so the statement returns
// the same shape as [findBlogByID].
func buildUpdateBlogQuery(blogID, ownerID int64, update models.BlogUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update("blogs")
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}
	if update.Image != nil {
		builder = builder.
			Set("image_public_id", update.Image.PublicID).
			Set("image_url", update.Image.URL)
	}

	updateQuery, args, err := builder.
		Where(sq.And{sq.Eq{"blog_id": blogID}, sq.Eq{"user_id": ownerID}}).
		Suffix("RETURNING blog_id, title, body, image_public_id, image_url, user_id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query := "WITH b AS (" + updateQuery + ") SELECT " + blogColumnList + " FROM b JOIN users u ON u.user_id = b.user_id"

	return query, args, nil
}
