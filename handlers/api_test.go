package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smartbank-go/config"
	"smartbank-go/database"
	"smartbank-go/store"
	"smartbank-go/utils"
)

func newTestAPI(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "smartbank.db"))
	require.NoError(t, err)

	st := store.New(db)
	tokens := utils.NewTokenService("test-secret-0123456789abcdef0123456789", 30*time.Minute)
	cfg := &config.Config{Environment: "test", TokenTTL: 30 * time.Minute}
	h := NewHandlers(st, tokens, cfg)

	return NewRouter(h, tokens, st), db
}

func sampleUser() map[string]string {
	return map[string]string{
		"email":         "test@example.com",
		"phone_number":  "+1234567890",
		"password":      "SecurePass123!",
		"first_name":    "John",
		"last_name":     "Doe",
		"date_of_birth": "1990-01-01",
		"address":       "123 Main St",
		"city":          "New York",
		"state":         "NY",
		"zip_code":      "10001",
		"country":       "US",
	}
}

func doJSON(t *testing.T, api http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, api http.Handler) string {
	t.Helper()

	rec := doJSON(t, api, "POST", "/api/v1/auth/register", "", sampleUser())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, api, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "SecurePass123!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, ok := decodeBody(t, rec)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

type filePart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func submitKYC(t *testing.T, api http.Handler, token string, fields map[string]string, files ...filePart) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/users/me/kyc", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func sampleKYCFields() map[string]string {
	return map[string]string{
		"document_type":        "passport",
		"document_number":      "AB1234567",
		"document_issued_date": "2020-01-01",
		"document_expiry_date": "2035-01-01",
	}
}

func frontJPEG() filePart {
	return filePart{
		field:       "document_front",
		filename:    "front.jpg",
		contentType: "image/jpeg",
		content:     []byte("fake image bytes"),
	}
}
