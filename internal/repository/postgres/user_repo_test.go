package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sportnex-backend/internal/domain"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"uid", "email", "name", "photo_url", "phone", "address", "role", "created_on", "updated_on"})
}

func TestUserRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("FirstSignIn", func(t *testing.T) {
		user := &domain.User{UID: "uid-1", Email: "u1@test.com", Name: "User One"}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("uid-1", "u1@test.com", "User One", "", "", "", domain.RoleUser, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("user"))

		err := repo.Upsert(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("ReUpsertKeepsStoredRole", func(t *testing.T) {
		user := &domain.User{UID: "uid-1", Email: "u1@test.com", Name: "User One", Role: domain.RoleUser}

		// Conflict path returns the role the row already carries.
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("uid-1", "u1@test.com", "User One", "", "", "", domain.RoleUser, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("member"))

		err := repo.Upsert(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleMember, user.Role)
	})
}

func TestUserRepository_GetByUID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE uid = \$1`).
		WithArgs("uid-1").
		WillReturnRows(userRows().AddRow("uid-1", "u1@test.com", "User One", "", "555", "1 Court St", "member", now, now))

	user, err := repo.GetByUID(ctx, "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, "555", user.Phone)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role").
			WithArgs(domain.RoleAdmin, sqlmock.AnyArg(), "uid-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRole(ctx, "uid-1", domain.RoleAdmin))
	})

	t.Run("MissingUser", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role").
			WithArgs(domain.RoleAdmin, sqlmock.AnyArg(), "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateRole(ctx, "ghost", domain.RoleAdmin), sql.ErrNoRows)
	})
}

func TestUserRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM users WHERE name ILIKE \$1 OR email ILIKE \$1`).
		WithArgs("%one%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE name ILIKE \$1 OR email ILIKE \$1 ORDER BY created_on DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("%one%", int32(20), int32(0)).
		WillReturnRows(userRows().AddRow("uid-1", "u1@test.com", "User One", "", "", "", "user", now, now))

	users, total, err := repo.Search(ctx, "one", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, users, 1)
}
