package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolationChecks(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_unique"}
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsCheckViolation(check))

	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

func TestViolationChecksSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("error creating user: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
}

func TestIsUniqueConstraintViolationMatchesByName(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_student_matricule_unique"}

	assert.True(t, IsUniqueConstraintViolation(err, "users_student_matricule_unique"))
	assert.False(t, IsUniqueConstraintViolation(err, "users_username_unique"))
	assert.False(t, IsUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}, "users_student_matricule_unique"))
}

func TestIsConnectionFailure(t *testing.T) {
	// Class 08 covers connection_exception, connection_failure and friends.
	assert.True(t, IsConnectionFailure(&pgconn.PgError{Code: "08006"}))
	assert.True(t, IsConnectionFailure(fmt.Errorf("query failed: %w", &pgconn.PgError{Code: "08000"})))

	assert.False(t, IsConnectionFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsConnectionFailure(errors.New("plain")))
}
