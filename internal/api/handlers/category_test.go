package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/devprince/ecommerce-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func putJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestCategoryHandler_Add(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]interface{}
		setup          func()
		expectedStatus int
	}{
		{
			name: "successful create",
			request: map[string]interface{}{
				"name": "Electronics",
				"slug": "electronics",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			request: map[string]interface{}{
				"slug": "electronics",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing slug",
			request: map[string]interface{}{
				"name": "Electronics",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate slug",
			request: map[string]interface{}{
				"name": "Electronics II",
				"slug": "electronics",
			},
			setup: func() {
				testutil.NewCategoryBuilder().
					WithName("Electronics").
					WithSlug("electronics").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/category/add"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCategoryHandler_GetUpdateRemove(t *testing.T) {
	ts := testutil.NewTestServer(t)

	category := testutil.NewCategoryBuilder().
		WithName("Books").
		WithSlug("books").
		Build(t, ts.DB.DB)

	// Get all
	listResp, err := http.Get(ts.APIURL("/category/get"))
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var categories []domain.Category
	testutil.AssertJSONResponse(t, listResp, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Books", categories[0].Name)

	// Get by id
	getResp, err := http.Get(ts.APIURL("/category/get/" + category.ID.String()))
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	// Unknown id
	missingResp, err := http.Get(ts.APIURL("/category/get/" + uuid.NewString()))
	require.NoError(t, err)
	defer missingResp.Body.Close()
	testutil.AssertErrorResponse(t, missingResp, http.StatusNotFound, "Category not found")

	// Partial update keeps untouched fields
	updateResp := putJSON(t, ts.APIURL("/category/update/"+category.ID.String()), map[string]interface{}{
		"description": "Printed and digital books",
	})
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	var updated domain.Category
	testutil.AssertJSONResponse(t, updateResp, &updated)
	assert.Equal(t, "Books", updated.Name)
	assert.Equal(t, "Printed and digital books", updated.Description)

	// Remove takes the id in the request body
	removeResp := deleteJSON(t, ts.APIURL("/category/remove"), map[string]string{
		"id": category.ID.String(),
	})
	defer removeResp.Body.Close()
	require.Equal(t, http.StatusOK, removeResp.StatusCode)

	goneResp, err := http.Get(ts.APIURL("/category/get/" + category.ID.String()))
	require.NoError(t, err)
	defer goneResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, goneResp.StatusCode)
}

func TestSubcategoryHandler_Add(t *testing.T) {
	ts := testutil.NewTestServer(t)

	category := testutil.NewCategoryBuilder().Build(t, ts.DB.DB)

	t.Run("successful create", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/subCategory/add"), map[string]interface{}{
			"name":       "Laptops",
			"slug":       "laptops",
			"categoryId": category.ID.String(),
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created domain.Subcategory
		testutil.AssertJSONResponse(t, resp, &created)
		assert.Equal(t, category.ID, created.CategoryID)
	})

	t.Run("unknown parent category", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/subCategory/add"), map[string]interface{}{
			"name":       "Phones",
			"slug":       "phones",
			"categoryId": uuid.NewString(),
		})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Category not found")
	})
}

func TestProductHandler_RequiresSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/product/get"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Unauthorized request")
}

func TestProductHandler_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("seller@x.com").
		Build(t, ts.DB.DB)

	loginResp := postJSON(t, ts.APIURL("/user/login"), map[string]string{
		"email":    user.Email,
		"password": rawPassword,
	})
	defer loginResp.Body.Close()
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var session loginResponse
	testutil.AssertJSONResponse(t, loginResp, &session)
	sessionCookie := &http.Cookie{Name: "accessToken", Value: session.AccessToken}

	category := testutil.NewCategoryBuilder().Build(t, ts.DB.DB)

	// Create
	addResp := postJSON(t, ts.APIURL("/product/add"), map[string]interface{}{
		"name":          "Mechanical Keyboard",
		"description":   "Tenkeyless, brown switches",
		"price":         129.99,
		"stockQuantity": 25,
		"sku":           "KB-TKL-BRN",
		"categoryId":    category.ID.String(),
		"attributes":    map[string]string{"layout": "ANSI"},
	}, sessionCookie)
	defer addResp.Body.Close()
	require.Equal(t, http.StatusCreated, addResp.StatusCode)

	var product domain.Product
	testutil.AssertJSONResponse(t, addResp, &product)
	assert.Equal(t, "Mechanical Keyboard", product.Name)
	assert.Equal(t, 129.99, product.Price)

	// Create against a missing category
	orphanResp := postJSON(t, ts.APIURL("/product/add"), map[string]interface{}{
		"name":          "Mouse",
		"price":         19.99,
		"stockQuantity": 5,
		"sku":           "MS-001",
		"categoryId":    uuid.NewString(),
	}, sessionCookie)
	defer orphanResp.Body.Close()
	testutil.AssertErrorResponse(t, orphanResp, http.StatusNotFound, "Category not found")

	// Update price only
	updateReq, err := http.NewRequest(http.MethodPut,
		ts.APIURL("/product/update/"+product.ID.String()),
		bytes.NewBufferString(`{"price": 99.99}`))
	require.NoError(t, err)
	updateReq.Header.Set("Content-Type", "application/json")
	updateReq.AddCookie(sessionCookie)
	updateResp, err := http.DefaultClient.Do(updateReq)
	require.NoError(t, err)
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	var updated domain.Product
	testutil.AssertJSONResponse(t, updateResp, &updated)
	assert.Equal(t, 99.99, updated.Price)
	assert.Equal(t, "KB-TKL-BRN", updated.SKU)

	// Remove
	removeReq, err := http.NewRequest(http.MethodDelete,
		ts.APIURL("/product/remove"),
		bytes.NewBufferString(fmt.Sprintf(`{"id": %q}`, product.ID)))
	require.NoError(t, err)
	removeReq.Header.Set("Content-Type", "application/json")
	removeReq.AddCookie(sessionCookie)
	removeResp, err := http.DefaultClient.Do(removeReq)
	require.NoError(t, err)
	defer removeResp.Body.Close()
	assert.Equal(t, http.StatusOK, removeResp.StatusCode)
}
