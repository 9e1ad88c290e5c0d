package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "any constraint", err: dup, want: true},
		{name: "matching constraint", err: dup, constraint: "users_username_key", want: true},
		{name: "other constraint", err: dup, constraint: "users_email_key", want: false},
		{name: "wrapped", err: fmt.Errorf("creating user: %w", dup), want: true},
		{name: "other code", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("get: %w", pgx.ErrNoRows)) {
		t.Error("wrapped pgx.ErrNoRows not reported as not found")
	}
	if IsNotFound(errors.New("boom")) {
		t.Error("arbitrary error reported as not found")
	}
}

func TestWithTx_WithoutPoolUsesQuerier(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockQuerier(ctrl)
	db := &Database{Querier: mock}

	mock.EXPECT().CountCategories(gomock.Any()).Return(int64(3), nil)

	var got int64
	err := db.WithTx(context.Background(), func(q Querier) error {
		var err error
		got, err = q.CountCategories(context.Background())
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}
	if got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestEnsureSchema_SkipsExistingSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockQuerier(ctrl)
	db := &Database{Querier: mock}

	mock.EXPECT().CheckUsersTableExists(gomock.Any()).Return(true, nil)

	if err := EnsureSchema(db, context.Background()); err != nil {
		t.Errorf("EnsureSchema() error = %v", err)
	}
}
