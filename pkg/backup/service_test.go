package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("Success - Creates backup directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "backups")

		svc, err := NewService(nil, Config{
			DatabaseURL:    "postgres://localhost/cliptokk",
			LocalBackupDir: dir,
			RetentionDays:  7,
		})

		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.DirExists(t, dir)
	})
}

func TestCleanupLocal(t *testing.T) {
	t.Run("Deletes archives older than retention", func(t *testing.T) {
		dir := t.TempDir()
		svc, err := NewService(nil, Config{
			DatabaseURL:    "postgres://localhost/cliptokk",
			LocalBackupDir: dir,
			RetentionDays:  7,
		})
		require.NoError(t, err)

		oldFile := filepath.Join(dir, "cliptokk-backup-20200101-000000.sql.gz")
		recentFile := filepath.Join(dir, "cliptokk-backup-recent.sql.gz")
		require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0644))
		require.NoError(t, os.WriteFile(recentFile, []byte("recent"), 0644))

		stale := time.Now().AddDate(0, 0, -30)
		require.NoError(t, os.Chtimes(oldFile, stale, stale))

		svc.cleanupLocal()

		assert.NoFileExists(t, oldFile)
		assert.FileExists(t, recentFile)
	})

	t.Run("Retention disabled keeps everything", func(t *testing.T) {
		dir := t.TempDir()
		svc, err := NewService(nil, Config{
			DatabaseURL:    "postgres://localhost/cliptokk",
			LocalBackupDir: dir,
			RetentionDays:  0,
		})
		require.NoError(t, err)

		oldFile := filepath.Join(dir, "cliptokk-backup-20200101-000000.sql.gz")
		require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0644))
		stale := time.Now().AddDate(0, 0, -365)
		require.NoError(t, os.Chtimes(oldFile, stale, stale))

		svc.cleanupLocal()

		assert.FileExists(t, oldFile)
	})
}
