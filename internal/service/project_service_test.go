package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateAndList(t *testing.T) {
	b := signedInBackend(t)
	ctx := context.Background()
	svc := NewProjectService(b.Client)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	first, err := svc.Create(ctx, "Internkontroll 2026")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	second, err := svc.Create(ctx, "Styringsdokumenter")
	require.NoError(t, err)

	projects, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, first.ID, projects[0].ID, "server order is kept")
	assert.Equal(t, second.Name, projects[1].Name)
}

func TestProjectService_Create_RequiresName(t *testing.T) {
	b := signedInBackend(t)
	before := b.Server.Requests()

	_, err := NewProjectService(b.Client).Create(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrRequired)
	assert.Equal(t, before, b.Server.Requests())
}

func TestProjectService_ListUnauthenticated(t *testing.T) {
	b := testutil.NewBackend(t)

	_, err := NewProjectService(b.Client).List(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestProjectService_Timeline(t *testing.T) {
	b := signedInBackend(t)
	ctx := context.Background()
	svc := NewProjectService(b.Client)

	p, err := svc.Create(ctx, "Kvalitet")
	require.NoError(t, err)

	items, err := svc.Timeline(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	b.Server.FailPath("/timeline", http.StatusServiceUnavailable)
	_, err = svc.Timeline(ctx, p.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.ErrorContains(t, err, "listing timeline")
}
