package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lumiere-backend/database"
)

const (
	testAdminEmail    = "admin@lumiere.example"
	testAdminPassword = "correct-horse-battery"
	testJWTSecret     = "test-secret"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:                db,
		Log:               zerolog.Nop(),
		JWTSecret:         testJWTSecret,
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: string(hash),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"email":    "someone@else.example",
		"password": testAdminPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login(t, r)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/admin/pages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/pages", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// token signed with a different secret is refused
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": testAdminEmail,
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	w = doJSON(t, r, http.MethodGet, "/admin/pages", signed, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a valid token without the admin role is refused too
	viewer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": testAdminEmail,
		"role":  "viewer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err = viewer.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	w = doJSON(t, r, http.MethodGet, "/admin/pages", signed, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/pages", login(t, r), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageLifecycle(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/pages", token, gin.H{
		"title": "Collections",
		"sections": []gin.H{
			{"type": "hero", "content": gin.H{"heading": "Lumière"}},
			{"type": "cta", "isShow": false},
			{"type": "contact"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// drafts are invisible on the storefront
	w = doJSON(t, r, http.MethodGet, "/pages/collections", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// but the admin editor sees the raw sections
	w = doJSON(t, r, http.MethodGet, "/admin/pages/collections", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/pages/collections", token, gin.H{
		"status": "published",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/pages/collections", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rendered struct {
		Title    string `json:"title"`
		Sections []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rendered))
	assert.Equal(t, "Collections", rendered.Title)
	// the hidden cta block is dropped from the render
	require.Len(t, rendered.Sections, 2)
	assert.Equal(t, "hero", rendered.Sections[0].Type)
	assert.Equal(t, "contact", rendered.Sections[1].Type)

	w = doJSON(t, r, http.MethodDelete, "/admin/pages/collections", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/pages/collections", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomePageCannotBeDeleted(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodDelete, "/admin/pages/home", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePageRejectsUnknownSectionType(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/pages", token, gin.H{
		"title":    "Broken",
		"sections": []gin.H{{"type": "video-wall"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// content that does not decode into the type's payload is refused too
	w = doJSON(t, r, http.MethodPost, "/admin/pages", token, gin.H{
		"title":    "Broken",
		"sections": []gin.H{{"type": "features", "content": gin.H{"items": "not-a-list"}}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicProductGating(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	seed := []gin.H{
		{"name": "Visible Ring", "status": "published"},
		{"name": "Hidden Ring", "status": "published", "isShow": false},
		{"name": "Draft Ring"},
	}
	for _, p := range seed {
		w := doJSON(t, r, http.MethodPost, "/admin/products", token, p)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Visible Ring", list.Items[0].Name)

	w = doJSON(t, r, http.MethodGet, "/products/hidden-ring", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/products/draft-ring", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the admin listing sees all three
	w = doJSON(t, r, http.MethodGet, "/admin/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 3, list.Total)
}

func TestSectionEditEndpoint(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/sections/edit", token, gin.H{
		"type":    "hero",
		"content": gin.H{"heading": "old"},
		"op":      "set",
		"path":    "heading",
		"value":   "new",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Content json.RawMessage `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, `{"heading":"new"}`, string(resp.Content))

	w = doJSON(t, r, http.MethodGet, "/admin/sections/new?type=hero", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/sections/new?type=video-wall", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaEndpointsWithoutCloudinary(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodDelete, "/admin/media/lumiere/ring", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAboutRoundTripOverHTTP(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPut, "/admin/about", token, gin.H{
		"title":  "Our Story",
		"blocks": []gin.H{{"type": "hero", "content": gin.H{"heading": "Since 1987"}}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rendered struct {
		Title    string `json:"title"`
		Slug     string `json:"slug"`
		Sections []struct {
			Type string `json:"type"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rendered))
	assert.Equal(t, "Our Story", rendered.Title)
	assert.Equal(t, "about", rendered.Slug)
	require.Len(t, rendered.Sections, 1)
	assert.Equal(t, "hero", rendered.Sections[0].Type)
}
