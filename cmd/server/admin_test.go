package main

import (
	"bytes"
	"context"
	"testing"

	"portfolio/internal/auth"
	"portfolio/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	store := testutil.OpenTestStore(t)
	var out bytes.Buffer

	require.NoError(t, createAdmin(ctx, &out, store, "admin", "first-pass", false))
	assert.Contains(t, out.String(), `created user "admin"`)
	assert.Contains(t, out.String(), "created placeholder profile")

	about, err := store.About(ctx)
	require.NoError(t, err)
	assert.Equal(t, placeholderName, about.Name)

	out.Reset()
	require.NoError(t, createAdmin(ctx, &out, store, "admin", "other", false))
	assert.Contains(t, out.String(), "already exists")
	assert.NotContains(t, out.String(), "placeholder")

	authn, err := auth.NewAuthenticator(store, zerolog.Nop())
	require.NoError(t, err)
	_, err = authn.Authenticate(ctx, "admin", "first-pass")
	require.NoError(t, err, "second run must not change the password")

	require.NoError(t, createAdmin(ctx, &out, store, "admin", "second-pass", true))
	_, err = authn.Authenticate(ctx, "admin", "second-pass")
	require.NoError(t, err)
}
