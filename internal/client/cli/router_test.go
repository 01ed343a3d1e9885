package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*Router, map[string]*int) {
	r := NewRouter(nopLogger{})
	counts := make(map[string]*int)
	for _, page := range []string{PageDashboard, PageWalkins, PageParties, PagePackages} {
		n := new(int)
		counts[page] = n
		r.Register(page, func(ctx context.Context) error {
			*n++
			return nil
		})
	}
	return r, counts
}

func TestRouter_UnknownPage(t *testing.T) {
	r, _ := newTestRouter()
	err := r.NavigateTo(context.Background(), "nope")
	assert.Error(t, err)
	assert.Empty(t, r.Current())
}

func TestRouter_NavigateAlwaysReloads(t *testing.T) {
	r, counts := newTestRouter()
	ctx := context.Background()

	require.NoError(t, r.NavigateTo(ctx, PageWalkins))
	require.NoError(t, r.NavigateTo(ctx, PageWalkins))

	assert.Equal(t, 2, *counts[PageWalkins], "revisiting a page must refetch")
	assert.Equal(t, PageWalkins, r.Current())
}

func TestRouter_FailedLoaderKeepsPageCurrent(t *testing.T) {
	r := NewRouter(nopLogger{})
	r.Register(PageWalkins, func(ctx context.Context) error {
		return errors.New("boom")
	})

	err := r.NavigateTo(context.Background(), PageWalkins)
	assert.Error(t, err)
	assert.Equal(t, PageWalkins, r.Current(), "retry should stay on the requested page")
}

func TestRefreshAfterMutation_WalkinsReloadsDashboard(t *testing.T) {
	r, counts := newTestRouter()
	ctx := context.Background()

	require.NoError(t, r.NavigateTo(ctx, PageWalkins))
	require.NoError(t, r.RefreshAfterMutation(ctx, PageWalkins))

	assert.Equal(t, 2, *counts[PageWalkins])
	assert.Equal(t, 1, *counts[PageDashboard])
	assert.Equal(t, PageWalkins, r.Current())
}

func TestRefreshAfterMutation_PartiesReloadsDashboard(t *testing.T) {
	r, counts := newTestRouter()
	ctx := context.Background()

	require.NoError(t, r.RefreshAfterMutation(ctx, PageParties))

	assert.Equal(t, 1, *counts[PageParties])
	assert.Equal(t, 1, *counts[PageDashboard])
}

func TestRefreshAfterMutation_PackagesLeavesDashboardAlone(t *testing.T) {
	r, counts := newTestRouter()
	ctx := context.Background()

	require.NoError(t, r.RefreshAfterMutation(ctx, PagePackages))

	assert.Equal(t, 1, *counts[PagePackages])
	assert.Equal(t, 0, *counts[PageDashboard])
}
