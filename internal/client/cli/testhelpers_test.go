package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"playcenter-console/internal/client/config"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/session"
	"playcenter-console/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// Service fakes. Counters record which operations ran so the reload
// contract can be asserted.

type fakeAuth struct {
	loginErr  error
	token     string
	user      models.User
	verifyErr error
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, models.User, error) {
	if f.loginErr != nil {
		err := f.loginErr
		f.loginErr = nil
		return "", models.User{}, err
	}
	return f.token, f.user, nil
}

func (f *fakeAuth) Verify(ctx context.Context) (models.User, error) {
	if f.verifyErr != nil {
		return models.User{}, f.verifyErr
	}
	return f.user, nil
}

type fakeWalkins struct {
	walkins []models.Walkin
	matches []models.WalkinMatch
	summary models.WalkinSummary

	listCalls   int
	lastFilter  string
	lastFrom    string
	lastTo      string
	checkouts   []string
	deletes     []string
	created     []models.Walkin
	updated     []models.Walkin
	searches    []string
	searchTypes []string

	summaryYear  int
	summaryMonth int

	createErr error
}

func (f *fakeWalkins) List(ctx context.Context, filter, from, to string) ([]models.Walkin, error) {
	f.listCalls++
	f.lastFilter, f.lastFrom, f.lastTo = filter, from, to
	return f.walkins, nil
}

func (f *fakeWalkins) Get(ctx context.Context, id string) (models.Walkin, error) {
	for _, w := range f.walkins {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Walkin{ID: id}, nil
}

func (f *fakeWalkins) Create(ctx context.Context, w models.Walkin) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	f.created = append(f.created, w)
	return nil
}

func (f *fakeWalkins) Update(ctx context.Context, id string, w models.Walkin) error {
	f.updated = append(f.updated, w)
	return nil
}

func (f *fakeWalkins) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeWalkins) Checkout(ctx context.Context, id string) error {
	f.checkouts = append(f.checkouts, id)
	return nil
}

func (f *fakeWalkins) Search(ctx context.Context, query, searchType string) ([]models.WalkinMatch, error) {
	f.searches = append(f.searches, query)
	f.searchTypes = append(f.searchTypes, searchType)
	return f.matches, nil
}

func (f *fakeWalkins) Monthly(ctx context.Context, year, month int) ([]models.Walkin, error) {
	return f.walkins, nil
}

func (f *fakeWalkins) MonthlySummary(ctx context.Context, year, month int) (models.WalkinSummary, error) {
	f.summaryYear, f.summaryMonth = year, month
	return f.summary, nil
}

type fakeParties struct {
	parties []models.Party
	summary models.PartySummary

	listCalls     int
	upcomingCalls int
	lastFilter    string
	deletes       []string
	created       []models.Party
	updated       []models.Party
}

func (f *fakeParties) List(ctx context.Context, filter string) ([]models.Party, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.parties, nil
}

func (f *fakeParties) Upcoming(ctx context.Context, from, to string) ([]models.Party, error) {
	f.upcomingCalls++
	return f.parties, nil
}

func (f *fakeParties) Get(ctx context.Context, id string) (models.Party, error) {
	for _, p := range f.parties {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Party{ID: id}, nil
}

func (f *fakeParties) Create(ctx context.Context, p models.Party) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeParties) Update(ctx context.Context, id string, p models.Party) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeParties) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeParties) Monthly(ctx context.Context, year, month int) ([]models.Party, error) {
	return f.parties, nil
}

func (f *fakeParties) MonthlySummary(ctx context.Context, year, month int) (models.PartySummary, error) {
	return f.summary, nil
}

type fakePackages struct {
	packages []models.Package

	listCalls  int
	lastFilter string
	useVisits  []string
	deletes    []string
	created    []models.Package
	updated    []models.Package
}

func (f *fakePackages) List(ctx context.Context, filter string) ([]models.Package, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.packages, nil
}

func (f *fakePackages) Get(ctx context.Context, id string) (models.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Package{ID: id}, nil
}

func (f *fakePackages) Create(ctx context.Context, p models.Package) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePackages) Update(ctx context.Context, id string, p models.Package) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakePackages) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakePackages) UseVisit(ctx context.Context, id string) error {
	f.useVisits = append(f.useVisits, id)
	return nil
}

type fakeUsers struct {
	users []models.User

	listCalls int
	deletes   []string
	created   []models.User
	updated   []models.User
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	f.listCalls++
	return f.users, nil
}

func (f *fakeUsers) Create(ctx context.Context, u models.User) error {
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsers) Update(ctx context.Context, id string, u models.User) error {
	f.updated = append(f.updated, u)
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeBackups struct {
	backups []models.Backup

	listCalls int
	creates   int
	restores  []string
	uploads   []string
	deletes   []string
}

func (f *fakeBackups) List(ctx context.Context) ([]models.Backup, error) {
	f.listCalls++
	return f.backups, nil
}

func (f *fakeBackups) Create(ctx context.Context) (string, error) {
	f.creates++
	return "backup_new.zip", nil
}

func (f *fakeBackups) Restore(ctx context.Context, filename string) error {
	f.restores = append(f.restores, filename)
	return nil
}

func (f *fakeBackups) RestoreUpload(ctx context.Context, path string) error {
	f.uploads = append(f.uploads, path)
	return nil
}

func (f *fakeBackups) Download(ctx context.Context, filename, destDir string) (string, error) {
	return filepath.Join(destDir, filename), nil
}

func (f *fakeBackups) Delete(ctx context.Context, filename string) error {
	f.deletes = append(f.deletes, filename)
	return nil
}

func testServices() (Services, *fakeAuth, *fakeWalkins, *fakeParties, *fakePackages, *fakeUsers, *fakeBackups) {
	auth := &fakeAuth{token: "tok", user: models.User{ID: "u1", Username: "alice", Role: models.RoleAdmin}}
	walkins := &fakeWalkins{}
	parties := &fakeParties{}
	packages := &fakePackages{}
	users := &fakeUsers{}
	backups := &fakeBackups{}

	return Services{
		Auth:     auth,
		Walkins:  walkins,
		Parties:  parties,
		Packages: packages,
		Users:    users,
		Backups:  backups,
	}, auth, walkins, parties, packages, users, backups
}

func testTime() time.Time {
	return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
}

// newTestApp builds an App wired to fakes, with scripted stdin and captured
// output, authenticated under the given role.
func newTestApp(t *testing.T, svc Services, role, input string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SearchDebounce = 10 * time.Millisecond

	sess := session.NewStore(filepath.Join(t.TempDir(), "token"))

	a := NewApp(cfg, nopLogger{}, sess, svc)
	a.reader = bufio.NewReader(strings.NewReader(input))
	out := &bytes.Buffer{}
	a.out = out
	a.now = testTime

	a.applyIdentity(models.User{ID: "u1", Username: "alice", Role: role})
	return a, out
}
