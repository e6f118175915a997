package backup

import (
	"compress/gzip"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/cliptokk/api/pkg/storage"
)

// Service produces compressed PostgreSQL dumps and ships them to the
// configured object store. Wallet ledgers are the system of record for money,
// so dumps run on a schedule rather than on demand.
type Service struct {
	store          storage.Store
	databaseURL    string
	localBackupDir string
	retentionDays  int
}

// Config holds backup configuration
type Config struct {
	DatabaseURL    string
	LocalBackupDir string
	RetentionDays  int
}

// NewService creates a new backup service
func NewService(store storage.Store, cfg Config) (*Service, error) {
	if err := os.MkdirAll(cfg.LocalBackupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	return &Service{
		store:          store,
		databaseURL:    cfg.DatabaseURL,
		localBackupDir: cfg.LocalBackupDir,
		retentionDays:  cfg.RetentionDays,
	}, nil
}

// Result contains backup operation results
type Result struct {
	Filename string
	FileSize int64
	URL      string
	Duration time.Duration
}

// CreateBackup runs pg_dump, gzips the output, and uploads the archive.
func (s *Service) CreateBackup(ctx context.Context) (*Result, error) {
	start := time.Now()

	timestamp := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("cliptokk-backup-%s.sql.gz", timestamp)
	localPath := filepath.Join(s.localBackupDir, filename)

	file, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)

	log.Printf("🔄 Starting database backup: %s", filename)
	cmd := exec.CommandContext(ctx, "pg_dump", s.databaseURL)
	cmd.Stdout = gzipWriter
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		os.Remove(localPath)
		return nil, fmt.Errorf("pg_dump failed: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup file: %w", err)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	url, err := s.store.Put(ctx, "backups/"+filename, data, "application/gzip")
	if err != nil {
		return nil, fmt.Errorf("backup created locally but upload failed: %w", err)
	}

	s.cleanupLocal()

	result := &Result{
		Filename: filename,
		FileSize: fileInfo.Size(),
		URL:      url,
		Duration: time.Since(start),
	}

	log.Printf("✅ Backup completed: %s (size: %d bytes, duration: %s)",
		filename, result.FileSize, result.Duration)

	return result, nil
}

// cleanupLocal deletes local archives older than the retention period.
func (s *Service) cleanupLocal() {
	if s.retentionDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	entries, err := os.ReadDir(s.localBackupDir)
	if err != nil {
		log.Printf("⚠️ Failed to list backup directory: %v", err)
		return
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(s.localBackupDir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("⚠️ Failed to delete old backup %s: %v", entry.Name(), err)
				continue
			}
			log.Printf("🗑️ Deleted old backup: %s", entry.Name())
		}
	}
}
