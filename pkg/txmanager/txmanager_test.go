package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}
func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx      *fakeTx
	opts    *sql.TxOptions
	begins  int
	beginEr error
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begins++
	f.opts = opts
	if f.beginEr != nil {
		return nil, f.beginEr
	}
	return f.tx, nil
}

func TestDoSerializable_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, sql.LevelSerializable, b.opts.Isolation)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
}

func TestDo_RollbackOnError(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)
	sentinel := errors.New("business rule")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("wrapped: %w", sentinel)
	})

	require.ErrorIs(t, err, sentinel)
	assert.False(t, b.tx.committed)
	assert.True(t, b.tx.rolledBack)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.begins)
}

func TestDo_SerializationFailure(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{commitErr: &pq.Error{Code: "40001"}}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

	require.ErrorIs(t, err, ErrSerialization)
}

func TestDo_BeginFailure(t *testing.T) {
	b := &fakeBeginner{beginEr: errors.New("connection refused")}
	m := NewTransactionManager(b)

	err := m.DoReadOnly(context.Background(), func(context.Context) error { return nil })

	require.ErrorIs(t, err, ErrBeginTx)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40P01"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("x: %w", &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain")))
}
