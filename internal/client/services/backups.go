package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/models"
)

// BackupService owns the backup artifacts: listing, creating, restoring
// (server-side file or local upload), downloading, and deleting.
type BackupService interface {
	List(ctx context.Context) ([]models.Backup, error)

	// Create asks the server for a fresh backup and returns its filename.
	Create(ctx context.Context) (string, error)

	Restore(ctx context.Context, filename string) error

	// RestoreUpload restores from a local archive via the multipart endpoint.
	RestoreUpload(ctx context.Context, path string) error

	// Download saves a backup archive into destDir and returns the local path.
	Download(ctx context.Context, filename, destDir string) (string, error)

	Delete(ctx context.Context, filename string) error
}

type backupService struct {
	client api.Client
}

func NewBackupService(client api.Client) BackupService {
	return &backupService{client: client}
}

func (s *backupService) List(ctx context.Context) ([]models.Backup, error) {
	var backups []models.Backup
	if err := s.client.Call(ctx, http.MethodGet, "/backup/list", nil, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}

func (s *backupService) Create(ctx context.Context) (string, error) {
	var resp struct {
		Filename string `json:"filename"`
	}
	if err := s.client.Call(ctx, http.MethodPost, "/backup/create", nil, &resp); err != nil {
		return "", err
	}
	return resp.Filename, nil
}

func (s *backupService) Restore(ctx context.Context, filename string) error {
	return s.client.Call(ctx, http.MethodPost, "/backup/restore/"+filename, nil, nil)
}

func (s *backupService) RestoreUpload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	return s.client.Upload(ctx, "/backup/restore-upload", "backup", filepath.Base(path), f, nil)
}

func (s *backupService) Download(ctx context.Context, filename, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o770); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	dest := filepath.Join(destDir, filename)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	if err := s.client.Download(ctx, "/backup/download/"+filename, f); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}

func (s *backupService) Delete(ctx context.Context, filename string) error {
	return s.client.Call(ctx, http.MethodDelete, "/backup/"+filename, nil, nil)
}
