package services

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

// fakeAPI implements api.Client and records the last request.
type fakeAPI struct {
	calls []string

	lastMethod string
	lastPath   string
	lastBody   any

	resp string // canned JSON decoded into out
	err  error

	uploadField    string
	uploadFilename string
	uploadContent  []byte

	downloadBody string
}

func (f *fakeAPI) Call(ctx context.Context, method, path string, body, out any) error {
	f.calls = append(f.calls, method+" "+path)
	f.lastMethod, f.lastPath, f.lastBody = method, path, body
	if f.err != nil {
		return f.err
	}
	if out != nil && f.resp != "" {
		return json.Unmarshal([]byte(f.resp), out)
	}
	return nil
}

func (f *fakeAPI) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	f.calls = append(f.calls, "UPLOAD "+path)
	f.lastPath = path
	f.uploadField = field
	f.uploadFilename = filename
	f.uploadContent, _ = io.ReadAll(r)
	return f.err
}

func (f *fakeAPI) Download(ctx context.Context, path string, w io.Writer) error {
	f.calls = append(f.calls, "DOWNLOAD "+path)
	f.lastPath = path
	if f.err != nil {
		return f.err
	}
	_, err := w.Write([]byte(f.downloadBody))
	return err
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
}

func TestWalkinList_FilterExpansion(t *testing.T) {
	tests := []struct {
		filter   string
		from, to string
		wantPath string
	}{
		{filter: permissions.FilterToday, wantPath: "/walkins/today"},
		{filter: permissions.FilterActive, wantPath: "/walkins/active"},
		{filter: permissions.FilterCompleted, wantPath: "/walkins/completed"},
		{filter: permissions.FilterAll, wantPath: "/walkins"},
		{filter: permissions.FilterLast7Days, wantPath: "/walkins/daterange?from=2024-06-08&to=2024-06-15"},
		{filter: permissions.FilterDateRange, from: "2024-06-01", to: "2024-06-30",
			wantPath: "/walkins/daterange?from=2024-06-01&to=2024-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			f := &fakeAPI{resp: `[]`}
			svc := NewWalkinService(f, fixedClock)

			_, err := svc.List(context.Background(), tt.filter, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, "GET", f.lastMethod)
			assert.Equal(t, tt.wantPath, f.lastPath)
		})
	}
}

func TestWalkinList_DateRangeRequiresBothBounds(t *testing.T) {
	f := &fakeAPI{}
	svc := NewWalkinService(f, fixedClock)

	_, err := svc.List(context.Background(), permissions.FilterDateRange, "2024-06-01", "")
	assert.ErrorIs(t, err, ErrDateRangeRequired)
	assert.Empty(t, f.calls, "no request may be sent without both bounds")
}

func TestWalkinMutations_PathsAndMethods(t *testing.T) {
	f := &fakeAPI{}
	svc := NewWalkinService(f, fixedClock)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, models.Walkin{ChildName: "Anu"}))
	assert.Equal(t, "POST /walkins", f.calls[len(f.calls)-1])

	require.NoError(t, svc.Update(ctx, "w1", models.Walkin{ChildName: "Anu"}))
	assert.Equal(t, "PUT /walkins/w1", f.calls[len(f.calls)-1])

	require.NoError(t, svc.Checkout(ctx, "w1"))
	assert.Equal(t, "POST /walkins/w1/checkout", f.calls[len(f.calls)-1])

	require.NoError(t, svc.Delete(ctx, "w1"))
	assert.Equal(t, "DELETE /walkins/w1", f.calls[len(f.calls)-1])
}

func TestWalkinSearch_EscapesQuery(t *testing.T) {
	f := &fakeAPI{resp: `[{"childName":"Anu","parentPhone":"98765"}]`}
	svc := NewWalkinService(f, fixedClock)

	matches, err := svc.Search(context.Background(), "an u", "name")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "/walkins/search?q=an+u&type=name", f.lastPath)
}

func TestWalkinMonthlySummary(t *testing.T) {
	f := &fakeAPI{resp: `{"count":42,"amount":21000,"food":3500}`}
	svc := NewWalkinService(f, fixedClock)

	summary, err := svc.MonthlySummary(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, "/walkins/monthly-summary?year=2024&month=6", f.lastPath)
	assert.Equal(t, 42, summary.Count)
	assert.Equal(t, 24500.0, summary.Total())
}

func TestPartyList_FilterExpansion(t *testing.T) {
	tests := []struct {
		filter   string
		wantPath string
	}{
		{permissions.FilterUpcoming, "/parties/upcoming"},
		{permissions.FilterToday, "/parties/today"},
		{permissions.FilterThisMonth, "/parties/thismonth"},
		{permissions.FilterCompleted, "/parties/completed"},
		{permissions.FilterAll, "/parties"},
		{permissions.FilterLast7Days, "/parties/daterange?from=2024-06-08&to=2024-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			f := &fakeAPI{resp: `[]`}
			svc := NewPartyService(f, fixedClock)

			_, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, f.lastPath)
		})
	}
}

func TestPartyUpcoming_OptionalRange(t *testing.T) {
	f := &fakeAPI{resp: `[]`}
	svc := NewPartyService(f, fixedClock)
	ctx := context.Background()

	_, err := svc.Upcoming(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "/parties/upcoming", f.lastPath)

	_, err = svc.Upcoming(ctx, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, "/parties/upcoming?from=2024-06-01&to=2024-06-30", f.lastPath)
}

func TestPartyMonthlySummary_Balance(t *testing.T) {
	f := &fakeAPI{resp: `{"count":5,"advance":10000,"totalAmount":45000}`}
	svc := NewPartyService(f, fixedClock)

	summary, err := svc.MonthlySummary(context.Background(), 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, "/parties/monthly-summary?year=2024&month=12", f.lastPath)
	assert.Equal(t, 35000.0, summary.Balance())
}

func TestPackageOperations(t *testing.T) {
	f := &fakeAPI{resp: `[]`}
	svc := NewPackageService(f)
	ctx := context.Background()

	_, err := svc.List(ctx, permissions.FilterExpiring)
	require.NoError(t, err)
	assert.Equal(t, "/packages/expiring", f.lastPath)

	_, err = svc.List(ctx, permissions.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, "/packages", f.lastPath)

	require.NoError(t, svc.UseVisit(ctx, "p7"))
	assert.Equal(t, "POST /packages/p7/use-visit", f.calls[len(f.calls)-1])
}

func TestUserService_EmptyPasswordOmitted(t *testing.T) {
	f := &fakeAPI{}
	svc := NewUserService(f)

	require.NoError(t, svc.Update(context.Background(), "u2", models.User{Username: "mgr", Role: models.RoleStoreManager}))

	data, err := json.Marshal(f.lastBody)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}

func TestAuthService_Login(t *testing.T) {
	f := &fakeAPI{resp: `{"token":"tok-1","user":{"id":"u1","username":"alice","role":"admin"}}`}
	svc := NewAuthService(f)

	token, user, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "POST /auth/login", f.calls[0])
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, models.RoleAdmin, user.Role)

	body, err := json.Marshal(f.lastBody)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","password":"secret"}`, string(body))
}

func TestAuthService_Verify(t *testing.T) {
	f := &fakeAPI{resp: `{"user":{"id":"u2","username":"mgr","role":"store_manager"}}`}
	svc := NewAuthService(f)

	user, err := svc.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GET /auth/verify", f.calls[0])
	assert.Equal(t, "mgr", user.Username)
}

func TestBackupService_CreateAndRestore(t *testing.T) {
	f := &fakeAPI{resp: `{"filename":"backup_20240615.zip"}`}
	svc := NewBackupService(f)
	ctx := context.Background()

	name, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backup_20240615.zip", name)
	assert.Equal(t, "POST /backup/create", f.calls[0])

	require.NoError(t, svc.Restore(ctx, name))
	assert.Equal(t, "POST /backup/restore/backup_20240615.zip", f.calls[1])

	require.NoError(t, svc.Delete(ctx, name))
	assert.Equal(t, "DELETE /backup/backup_20240615.zip", f.calls[2])
}

func TestBackupService_RestoreUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.zip")
	require.NoError(t, os.WriteFile(path, []byte("zipbytes"), 0o600))

	f := &fakeAPI{}
	svc := NewBackupService(f)

	require.NoError(t, svc.RestoreUpload(context.Background(), path))
	assert.Equal(t, "UPLOAD /backup/restore-upload", f.calls[0])
	assert.Equal(t, "backup", f.uploadField)
	assert.Equal(t, "local.zip", f.uploadFilename)
	assert.Equal(t, "zipbytes", string(f.uploadContent))
}

func TestBackupService_Download(t *testing.T) {
	f := &fakeAPI{downloadBody: "archive-bytes"}
	svc := NewBackupService(f)
	dir := t.TempDir()

	dest, err := svc.Download(context.Background(), "b.zip", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.zip"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(data))
}
