package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories/memory"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  *memory.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	repos := memory.NewRepositories(store)

	router := gin.New()
	router.Use(middleware.RequestID())
	SetupRouter(router, NewControllers(services.NewServices(repos), repos.Sessions), middleware.StoreSession(repos.Sessions))
	return &testAPI{t: t, router: router, store: store}
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) response {
	t.Helper()
	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}
	return resp
}

type idBody struct {
	ID int64 `json:"id"`
}

func (a *testAPI) create(path string, body interface{}) int64 {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var created idBody
	decode(a.t, w, &created)
	return created.ID
}

func TestPlaceholderRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var root map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.NotEmpty(t, root["message"])

	w = api.do(http.MethodGet, "/api/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":["item1","item2","item3"]}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	api.store.SetAvailable(false)
	w = api.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SRV_004", decode(t, w, nil).Error.Code)
}

func TestCourseLifecycle(t *testing.T) {
	api := newTestAPI(t)

	id := api.create("/api/v1/courses", map[string]interface{}{
		"course_program": "CY",
		"course_code":    2550,
		"title":          "Foundations of Cybersecurity",
		"attributes":     []string{"Ethical Reasoning"},
	})

	var course struct {
		CourseProgram string   `json:"course_program"`
		CourseCode    int      `json:"course_code"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Coreq         bool     `json:"coreq"`
		Terms         string   `json:"terms"`
		Attributes    []string `json:"attributes"`
		CategoryTag   []string `json:"category_tag"`
		TopicIDs      []int64  `json:"topic_ids"`
		PrereqIDs     []int64  `json:"prereq_ids"`
	}
	w := api.do(http.MethodGet, fmt.Sprintf("/api/v1/courses/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &course)
	assert.Equal(t, "CY", course.CourseProgram)
	assert.Equal(t, 2550, course.CourseCode)
	assert.Equal(t, []string{"Ethical Reasoning"}, course.Attributes)
	assert.NotNil(t, course.CategoryTag)
	assert.NotNil(t, course.TopicIDs)
	assert.False(t, course.Coreq)

	w = api.do(http.MethodPatch, fmt.Sprintf("/api/v1/courses/%d", id), map[string]interface{}{"terms": "Fall, Spring"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &course)
	assert.Equal(t, "Fall, Spring", course.Terms)
	assert.Equal(t, "Foundations of Cybersecurity", course.Title)

	w = api.do(http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []idBody
	decode(t, w, &list)
	assert.Len(t, list, 1)

	assert.Equal(t, 0, api.store.OpenSessions())
}

func TestCourseValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name  string
		body  interface{}
		field string
	}{
		{
			name:  "course code too large",
			body:  map[string]interface{}{"course_program": "CY", "course_code": 10000, "title": "X"},
			field: "course_code",
		},
		{
			name:  "course code negative",
			body:  map[string]interface{}{"course_program": "CY", "course_code": -1, "title": "X"},
			field: "course_code",
		},
		{
			name:  "unknown program",
			body:  map[string]interface{}{"course_program": "EE", "course_code": 2500, "title": "X"},
			field: "course_program",
		},
		{
			name:  "unknown category",
			body:  map[string]interface{}{"course_program": "CS", "course_code": 2500, "title": "X", "category_tag": []string{"Free Elective"}},
			field: "category_tag[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/api/v1/courses", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w, nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "VAL_001", resp.Error.Code)
			assert.Equal(t, tt.field, resp.Error.Field)
			require.Len(t, resp.Error.Details, 1)
		})
	}

	w := api.do(http.MethodGet, "/api/v1/courses", nil)
	var list []idBody
	decode(t, w, &list)
	assert.Empty(t, list)
}

func TestMalformedRequests(t *testing.T) {
	api := newTestAPI(t)

	body := []struct {
		name string
		path string
		raw  string
	}{
		{name: "truncated json", path: "/api/v1/topics", raw: `{"title": `},
		{name: "wrong type", path: "/api/v1/courses", raw: `{"course_program":"CY","course_code":"twenty","title":"X"}`},
	}
	for _, tt := range body {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, tt.path, tt.raw)
			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w, nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "VAL_001", resp.Error.Code)
			require.Len(t, resp.Error.Details, 1)
			assert.Equal(t, "body", resp.Error.Details[0].Field)
			assert.NotEmpty(t, resp.Error.Details[0].Message)
		})
	}

	for _, id := range []string{"abc", "0", "-3"} {
		t.Run("bad id "+id, func(t *testing.T) {
			w := api.do(http.MethodGet, "/api/v1/topics/"+id, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w, nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
			assert.Equal(t, "id", resp.Error.Field)
			require.Len(t, resp.Error.Details, 1)
			assert.Equal(t, "id", resp.Error.Details[0].Field)
			assert.Equal(t, "topic ID must be a positive number", resp.Error.Details[0].Message)
		})
	}

	w := api.do(http.MethodGet, "/api/v1/topics/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "topic not found", decode(t, w, nil).Error.Message)
}

func TestPrerequisiteRoutes(t *testing.T) {
	api := newTestAPI(t)

	cs := api.create("/api/v1/courses", map[string]interface{}{"course_program": "CS", "course_code": 2500, "title": "Fundamentals"})
	cy := api.create("/api/v1/courses", map[string]interface{}{"course_program": "CY", "course_code": 2550, "title": "Foundations"})

	w := api.do(http.MethodPut, fmt.Sprintf("/api/v1/courses/%d/prereqs/%d", cy, cs), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	// Idempotent
	w = api.do(http.MethodPut, fmt.Sprintf("/api/v1/courses/%d/prereqs/%d", cy, cs), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var requiredBy struct {
		CourseIDs []int64 `json:"course_ids"`
	}
	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/courses/%d/required-by", cs), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &requiredBy)
	assert.Equal(t, []int64{cy}, requiredBy.CourseIDs)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/courses/%d/required-by", cy), nil)
	decode(t, w, &requiredBy)
	assert.Empty(t, requiredBy.CourseIDs)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/v1/courses/%d/prereqs/%d", cy, cy), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/v1/courses/%d/prereqs/%d", cy, 99), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/courses/%d/prereqs/%d", cy, cs), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/courses/%d/required-by", cs), nil)
	decode(t, w, &requiredBy)
	assert.Empty(t, requiredBy.CourseIDs)
}

func TestTopicOffCampusRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	id := api.create("/api/v1/topics", map[string]interface{}{
		"title":      "Certifications",
		"off_campus": map[string]interface{}{"certifications": map[string]string{"CompTIA": "https://comptia.org"}},
	})

	var topic struct {
		OffCampus models.OffCampus `json:"off_campus"`
		Misc      models.Misc      `json:"misc"`
	}
	w := api.do(http.MethodGet, fmt.Sprintf("/api/v1/topics/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &topic)
	assert.Equal(t, map[string]string{"CompTIA": "https://comptia.org"}, topic.OffCampus.Certifications)
	assert.Empty(t, topic.OffCampus.Socials)
	assert.Empty(t, topic.Misc)
}

func TestClubTagsRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	id := api.create("/api/v1/clubs", map[string]interface{}{
		"name":     "Cyber Club",
		"location": "Boston",
		"level":    []string{"undergrad"},
		"tags":     []string{"Undergraduate", "Honors"},
	})

	var club struct {
		Tags []string `json:"tags"`
	}
	w := api.do(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &club)
	assert.ElementsMatch(t, []string{"Undergraduate", "Honors"}, club.Tags)
}

func TestResourceRoutes(t *testing.T) {
	for _, kind := range models.ResourceKinds() {
		t.Run(string(kind), func(t *testing.T) {
			api := newTestAPI(t)
			base := "/api/v1/" + kind.Path()

			id := api.create(base, map[string]interface{}{"title": "Guide", "tags": []string{"Junior"}})

			w := api.do(http.MethodPatch, fmt.Sprintf("%s/%d", base, id), map[string]interface{}{"url": "https://example.edu"})
			require.Equal(t, http.StatusOK, w.Code)
			var res struct {
				Title string   `json:"title"`
				Tags  []string `json:"tags"`
				URL   string   `json:"url"`
			}
			decode(t, w, &res)
			assert.Equal(t, "Guide", res.Title)
			assert.Equal(t, []string{"Junior"}, res.Tags)
			assert.Equal(t, "https://example.edu", res.URL)

			w = api.do(http.MethodGet, fmt.Sprintf("%s/%d", base, id+1), nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestStorageUnavailable(t *testing.T) {
	api := newTestAPI(t)
	api.store.SetAvailable(false)

	w := api.do(http.MethodGet, "/api/v1/topics", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w, nil)
	assert.Equal(t, "SRV_004", resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "memory store")
	assert.Equal(t, 0, api.store.OpenSessions())
}
