package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "00001_create_projects.sql", files[0])

	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		body := string(data)
		assert.True(t, strings.Contains(body, "-- +goose Up"), "%s has no Up section", name)
		assert.True(t, strings.Contains(body, "-- +goose Down"), "%s has no Down section", name)
	}
}

func TestProjectsSchema(t *testing.T) {
	data, err := fs.ReadFile(FS, "00001_create_projects.sql")
	require.NoError(t, err)
	body := string(data)

	for _, col := range []string{"BIGSERIAL PRIMARY KEY", "target_green", "notes", "created_at"} {
		assert.Contains(t, body, col)
	}
}

func TestProjectsSchema_TargetGreenIsBigint(t *testing.T) {
	data, err := fs.ReadFile(FS, "00001_create_projects.sql")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`target_green\s+BIGINT NOT NULL`), string(data))
}
