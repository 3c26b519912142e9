package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStaticPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for page, want := range map[string]string{
		"impressum":   "Impressum",
		"datenschutz": "Datenschutz",
		"notfound":    "Totenbilder Archiv",
		"login":       "Admin Login",
	} {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, page, struct {
				Demo     bool
				Error    string
				Username string
			}{}))
			assert.Contains(t, buf.String(), "<title>")
			assert.Contains(t, buf.String(), want)
			assert.NotContains(t, buf.String(), "Demo Modus")
		})
	}
}

func TestRenderDemoBanner(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "impressum", struct{ Demo bool }{Demo: true}))
	assert.Contains(t, buf.String(), "Demo Modus")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	err = r.Render(&bytes.Buffer{}, "missing", nil)
	assert.ErrorContains(t, err, `unknown page "missing"`)
}
