package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/justcopy/server/api/rest/generate"
	"codeberg.org/justcopy/server/api/rest/health"
	"codeberg.org/justcopy/server/api/rest/templates"
	"codeberg.org/justcopy/server/internal/copywriter"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", health.Handler)
	api := router.Group("/api")
	generate.RegisterRoutes(api, copywriter.New(0))
	templates.RegisterRoutes(api)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_Local(t *testing.T) {
	out, err := run(t, "generate", "--local", "Write", "a", "blog", "about", "cats")

	require.NoError(t, err)
	assert.Equal(t, copywriter.Render(copywriter.KindBlog, "Write a blog about cats")+"\n", out)
}

func TestGenerate_Remote(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "generate", "--endpoint", srv.URL, "email", "for", "launch")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Subject: You Won't Believe What We Have for You!"))
}

func TestGenerate_EndpointFromEnv(t *testing.T) {
	srv := newAPIServer(t)
	t.Setenv("JUSTCOPY_API_ENDPOINT", srv.URL)

	out, err := run(t, "generate", "new", "sneakers", "product")

	require.NoError(t, err)
	assert.Contains(t, out, "Transform your new sneakers product with")
}

func TestGenerate_RequiresPrompt(t *testing.T) {
	_, err := run(t, "generate")

	require.Error(t, err)
}

func TestTemplates(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "templates", "--endpoint", srv.URL)

	require.NoError(t, err)
	for _, tmpl := range copywriter.Catalog() {
		assert.Contains(t, out, tmpl.Name)
		assert.Contains(t, out, tmpl.Category)
	}
}

func TestHealth(t *testing.T) {
	srv := newAPIServer(t)

	out, err := run(t, "health", "--endpoint", srv.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "JustCopy.ai API is running!")
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	_, err := run(t, "health", "--endpoint", url)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is unreachable")
}
