package controller

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"

	"gerejaku_backend/internals/configs"
)

// secret contoh dari dokumentasi svix, hanya untuk test
const testSecret = "whsec_MfKW5eZBWhXrKZr8GKYqrTwjUPD8ILPZ"

func newWebhookApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.ClerkWebhookSecret = testSecret
	t.Cleanup(func() { configs.ClerkWebhookSecret = "" })

	app := fiber.New()
	// DB nil: semua skenario di sini harus ditolak SEBELUM menyentuh DB
	app.Post("/api/public/webhooks/clerk", NewClerkWebhookController(nil).Handle)
	return app
}

func TestClerkWebhook_MissingHeadersRejected(t *testing.T) {
	app := newWebhookApp(t)

	req := httptest.NewRequest("POST", "/api/public/webhooks/clerk",
		strings.NewReader(`{"type":"user.created","data":{"id":"user_123"}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClerkWebhook_InvalidSignatureRejected(t *testing.T) {
	app := newWebhookApp(t)

	req := httptest.NewRequest("POST", "/api/public/webhooks/clerk",
		strings.NewReader(`{"type":"user.created","data":{"id":"user_123"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", "msg_test")
	req.Header.Set("svix-timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("svix-signature", "v1,c2lnbmF0dXJlLXBhbHN1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClerkWebhook_SecretNotConfigured(t *testing.T) {
	configs.ClerkWebhookSecret = ""
	app := fiber.New()
	app.Post("/api/public/webhooks/clerk", NewClerkWebhookController(nil).Handle)

	req := httptest.NewRequest("POST", "/api/public/webhooks/clerk", strings.NewReader(`{}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestClerkWebhook_UnknownEventTypeRejected(t *testing.T) {
	app := newWebhookApp(t)

	payload := `{"type":"session.created","data":{"id":"user_123"}}`
	now := time.Now()

	wh, err := svix.NewWebhook(testSecret)
	require.NoError(t, err)
	sig, err := wh.Sign("msg_test", now, []byte(payload))
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/public/webhooks/clerk", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", "msg_test")
	req.Header.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
	req.Header.Set("svix-signature", sig)

	// signature lolos, tapi tipe event di luar kontrak → ditolak validasi
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
