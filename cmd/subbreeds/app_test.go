package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-breed-cache/breed"
	"github.com/goliatone/go-breed-cache/pkg/di"
	"github.com/goliatone/go-breed-cache/pkg/testsupport"
)

func TestCommand_LooksUpThroughCache(t *testing.T) {
	srv := testsupport.NewAPIServer(t, map[string]testsupport.Route{
		"/api/breed/hound/list": {Body: []byte(`{"status":"success","message":["afghan","basset"]}`)},
		"/api/breed/pug/list":   {Body: []byte(`{"status":"success","message":[]}`)},
	})

	var out bytes.Buffer
	cmd := newCommand(&out)

	err := cmd.Run(context.Background(), []string{
		"subbreeds", "--base-url", srv.URL, "Hound", "hound", "pug", "unicorn", "HOUND ",
	})
	require.NoError(t, err)

	assert.Equal(t, ""+
		"Hound: afghan, basset\n"+
		"hound: afghan, basset\n"+
		"pug: (no sub-breeds)\n"+
		"unicorn: not found\n"+
		"HOUND : afghan, basset\n"+
		"calls made: 3\n", out.String())
	assert.Equal(t, 3, srv.Hits())
}

func TestCommand_Bounded(t *testing.T) {
	srv := testsupport.NewAPIServer(t, map[string]testsupport.Route{
		"/api/breed/hound/list": {Body: []byte(`{"status":"success","message":["afghan"]}`)},
	})

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{
		"subbreeds", "--bounded", "--base-url", srv.URL, "hound", "Hound",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "calls made: 1\n")
}

func TestCommand_AllFailed(t *testing.T) {
	base := breed.FetcherFunc(func(ctx context.Context, b string) ([]string, error) {
		return nil, breed.NotFound(b, "offline", nil)
	})

	var out bytes.Buffer
	err := newCommand(&out, di.WithBaseFetcher(base)).Run(context.Background(), []string{
		"subbreeds", "a", "b", "a",
	})
	assert.ErrorIs(t, err, errAllFailed)
	assert.Contains(t, out.String(), "calls made: 3\n")
}

func TestCommand_InvalidBaseURL(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{
		"subbreeds", "--base-url", "not a url", "hound",
	})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestCommand_NoBreeds(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"subbreeds"})
	assert.ErrorIs(t, err, errNoBreeds)
}
