package cli

import (
	"context"
	"fmt"
	"strconv"

	"playcenter-console/internal/client/models"
)

func (a *App) loadBackups(ctx context.Context) error {
	backups, err := a.svc.Backups.List(ctx)
	if err != nil {
		return err
	}
	a.backupRows = backups

	fmt.Fprintln(a.out, boldText("Backups"))
	rows := make([][]string, 0, len(backups))
	for i, b := range backups {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), sanitize(b.Filename), formatBytes(b.Size), orDash(sanitize(b.CreatedAt)),
		})
	}
	renderTable(a.out, []string{"#", "Filename", "Size", "Created"}, rows)
	return nil
}

func (a *App) backupCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "create":
		return a.backupCreate(ctx)

	case "download":
		i, err := rowIndex(args, len(a.backupRows))
		if err != nil {
			return err
		}
		return a.backupDownload(ctx, a.backupRows[i])

	case "restore":
		i, err := rowIndex(args, len(a.backupRows))
		if err != nil {
			return err
		}
		return a.backupRestore(ctx, a.backupRows[i])

	case "upload":
		if len(args) == 0 {
			return fmt.Errorf("usage: upload <path-to-archive>")
		}
		return a.backupUpload(ctx, args[0])

	case "del":
		i, err := rowIndex(args, len(a.backupRows))
		if err != nil {
			return err
		}
		return a.backupDelete(ctx, a.backupRows[i])

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) backupCreate(ctx context.Context) error {
	filename, err := a.svc.Backups.Create(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup created: %s\n", sanitize(filename))
	return a.router.NavigateTo(ctx, PageBackup)
}

func (a *App) backupDownload(ctx context.Context, b models.Backup) error {
	dest, err := a.svc.Backups.Download(ctx, b.Filename, a.config.DownloadDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved to %s\n", dest)
	return nil
}

// backupRestore replaces the live data with an archived copy. Every number
// on screen may change, so the whole view reloads afterwards, dashboard
// included.
func (a *App) backupRestore(ctx context.Context, b models.Backup) error {
	ok, err := Confirm(a.reader,
		fmt.Sprintf("Restore %s? Current data will be replaced", sanitize(b.Filename)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Backups.Restore(ctx, b.Filename); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Restore complete.")

	if loader, ok := a.router.pages[PageDashboard]; ok {
		if err := loader(ctx); err != nil {
			a.log.Warn(ctx, "dashboard refresh failed", "error", err)
		}
	}
	return a.router.NavigateTo(ctx, PageBackup)
}

func (a *App) backupUpload(ctx context.Context, path string) error {
	ok, err := Confirm(a.reader,
		fmt.Sprintf("Restore from %s? Current data will be replaced", path), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Backups.RestoreUpload(ctx, path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Restore complete.")

	if loader, ok := a.router.pages[PageDashboard]; ok {
		if err := loader(ctx); err != nil {
			a.log.Warn(ctx, "dashboard refresh failed", "error", err)
		}
	}
	return a.router.NavigateTo(ctx, PageBackup)
}

func (a *App) backupDelete(ctx context.Context, b models.Backup) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s?", sanitize(b.Filename)), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Backups.Delete(ctx, b.Filename); err != nil {
		return err
	}
	return a.router.NavigateTo(ctx, PageBackup)
}
