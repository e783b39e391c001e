package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectPrelude(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`SELECT pg_advisory_lock\(\$1\)`).
		WithArgs(advisoryLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func expectUnlock(mock sqlmock.Sqlmock) {
	mock.ExpectExec(`SELECT pg_advisory_unlock\(\$1\)`).
		WithArgs(advisoryLockID).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_events.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "applies pending migration",
			mock: func(mock sqlmock.Sqlmock) {
				expectPrelude(mock)
				mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM schema_migrations WHERE name = \$1\)`).
					WithArgs("0001_events.sql").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectBegin()
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS events`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`INSERT INTO schema_migrations \(name\) VALUES \(\$1\)`).
					WithArgs("0001_events.sql").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				expectUnlock(mock)
			},
		},
		{
			name: "skips applied migration",
			mock: func(mock sqlmock.Sqlmock) {
				expectPrelude(mock)
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("0001_events.sql").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				expectUnlock(mock)
			},
		},
		{
			name: "failed migration is rolled back",
			mock: func(mock sqlmock.Sqlmock) {
				expectPrelude(mock)
				mock.ExpectQuery(`SELECT EXISTS`).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectBegin()
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS events`).
					WillReturnError(errors.New("syntax error"))
				mock.ExpectRollback()
				expectUnlock(mock)
			},
			wantErr: "exec migration 0001_events.sql",
		},
		{
			name: "lock failure",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`SELECT pg_advisory_lock`).
					WillReturnError(errors.New("timeout"))
			},
			wantErr: "acquire migration lock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = Apply(ctx, db)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
