package vendors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserHeader = "X-Test-User"

func headerIdentity(r *http.Request) (string, bool) {
	id := r.Header.Get(testUserHeader)
	return id, id != ""
}

type apiFixture struct {
	repo   *memoryRepository
	router chi.Router
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	repo := newMemoryRepository()
	r := chi.NewRouter()
	r.Route("/api/vendor", NewAPI(nil, newTestService(repo), headerIdentity).MountRoutes)
	return &apiFixture{repo: repo, router: r}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (f *apiFixture) do(t *testing.T, method, path, user, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(testUserHeader, user)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	var env envelope
	if rec.Code != http.StatusUnauthorized {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func (f *apiFixture) create(t *testing.T, user string) Vendor {
	t.Helper()
	rec, env := f.do(t, http.MethodPost, "/api/vendor", user, `{"vendorName":"Acme","bankAccountNo":"123","bankName":"B","addressLine1":"1 St","city":"X","country":"Y","zipCode":"000"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var v Vendor
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestAPIRejectsAnonymousCallers(t *testing.T) {
	f := newAPIFixture(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/vendor"},
		{http.MethodPost, "/api/vendor"},
		{http.MethodGet, "/api/vendor/v01"},
		{http.MethodPut, "/api/vendor/v01"},
		{http.MethodDelete, "/api/vendor/v01"},
	} {
		rec, _ := f.do(t, tc.method, tc.path, "", `{}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	}
}

func TestAPICreateIgnoresClientOwner(t *testing.T) {
	f := newAPIFixture(t)
	rec, env := f.do(t, http.MethodPost, "/api/vendor", "u1",
		`{"vendorName":"Acme","bankAccountNo":"123","bankName":"B","addressLine1":"1 St","city":"X","country":"Y","zipCode":"000","userId":"someone-else"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Vendor created successfully", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "u1", data["userId"])
	assert.NotContains(t, data, "addressLine2")
	assert.NotEmpty(t, data["id"])
}

func TestAPICreateMissingFields(t *testing.T) {
	f := newAPIFixture(t)
	rec, env := f.do(t, http.MethodPost, "/api/vendor", "u1", `{"vendorName":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "These fields are required: addressLine1, bankAccountNo, bankName, city, country, zipCode", env.Message)
	assert.Zero(t, f.repo.count())
}

func TestAPICreateMalformedBody(t *testing.T) {
	f := newAPIFixture(t)
	rec, env := f.do(t, http.MethodPost, "/api/vendor", "u1", `{"vendorName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestAPIListEmptyIsArray(t *testing.T) {
	f := newAPIFixture(t)
	rec, env := f.do(t, http.MethodGet, "/api/vendor", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestAPIListOnlyOwnVendors(t *testing.T) {
	f := newAPIFixture(t)
	f.create(t, "u1")
	f.create(t, "u2")

	_, env := f.do(t, http.MethodGet, "/api/vendor", "u1", "")
	var vendors []Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendors))
	require.Len(t, vendors, 1)
	assert.Equal(t, "u1", vendors[0].UserID)
}

func TestAPIForeignVendorIsNotFound(t *testing.T) {
	f := newAPIFixture(t)
	v := f.create(t, "u1")

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"city":"Z"}`},
		{http.MethodDelete, ""},
	} {
		rec, env := f.do(t, tc.method, "/api/vendor/"+v.ID, "u2", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		assert.Equal(t, "Vendor not found", env.Message)
	}

	rec, _ := f.do(t, http.MethodGet, "/api/vendor/"+v.ID, "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIUpdate(t *testing.T) {
	f := newAPIFixture(t)
	v := f.create(t, "u1")

	rec, env := f.do(t, http.MethodPut, "/api/vendor/"+v.ID, "u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one field is required to update", env.Message)

	rec, env = f.do(t, http.MethodPut, "/api/vendor/"+v.ID, "u1", `{"city":"Berlin","addressLine2":"Suite 5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Vendor updated successfully", env.Message)
	var updated Vendor
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Berlin", updated.City)
	assert.Equal(t, "Suite 5", updated.AddressLine2.String)
	assert.Equal(t, "Acme", updated.VendorName)
}

func TestAPIMissingID(t *testing.T) {
	f := newAPIFixture(t)
	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		rec, env := f.do(t, method, "/api/vendor", "u1", `{"city":"Z"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Equal(t, "Vendor id is required", env.Message)
	}
}

func TestAPIDeleteTwice(t *testing.T) {
	f := newAPIFixture(t)
	v := f.create(t, "u1")

	rec, env := f.do(t, http.MethodDelete, "/api/vendor/"+v.ID, "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Vendor deleted successfully", env.Message)
	assert.Empty(t, env.Data)

	rec, env = f.do(t, http.MethodDelete, "/api/vendor/"+v.ID, "u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vendor not found", env.Message)
}

func TestAPIStorageFailure(t *testing.T) {
	f := newAPIFixture(t)
	f.repo.err = errors.New("")
	rec, env := f.do(t, http.MethodGet, "/api/vendor", "u1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Unknown error fetching vendors", env.Message)
}
