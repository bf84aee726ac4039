package notes

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-backend/cmd/server/testutil"
	"notes-backend/internal/services/notes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req notes.CreateNoteRequest) (*notes.NoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.NoteResponse), args.Error(1)
}

func (m *MockService) List(ctx context.Context, req notes.ListNotesRequest) ([]*notes.NoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notes.NoteResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int64) (*notes.NoteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.NoteResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, req notes.UpdateNoteRequest) (*notes.NoteResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notes.NoteResponse), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupApp(t *testing.T) (*fiber.App, *MockService) {
	t.Helper()

	app := testutil.CreateTestApp(t)
	svc := new(MockService)
	h := NewHandlers(svc, validator.New())

	grp := app.Group("/api/notes")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	return app, svc
}

func TestCreateHandler(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req notes.CreateNoteRequest) bool {
			return req.Title == "A" && len(req.Tags) == 2
		})).Return(&notes.NoteResponse{ID: 1, Title: "A", Tags: []string{"x", "y"}}, nil)

		req := testutil.CreateJSONRequest(t, "POST", "/api/notes", map[string]any{
			"title": "A", "content": "hello world", "tags": []string{"x", "y"},
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var note notes.NoteResponse
		testutil.DecodeJSON(t, resp, &note)
		assert.Equal(t, int64(1), note.ID)
		assert.Equal(t, []string{"x", "y"}, note.Tags)
		svc.AssertExpectations(t)
	})

	t.Run("400 on validation failure", func(t *testing.T) {
		for name, body := range map[string]map[string]any{
			"missing title":  {"content": "x"},
			"empty title":    {"title": ""},
			"title too long": {"title": strings.Repeat("a", 256)},
			"tag with comma": {"title": "A", "tags": []string{"x,y"}},
		} {
			t.Run(name, func(t *testing.T) {
				app, svc := setupApp(t)

				req := testutil.CreateJSONRequest(t, "POST", "/api/notes", body)
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.Equal(t, 400, resp.StatusCode)
				svc.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("title at the 255 boundary passes validation", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Create", mock.Anything, mock.Anything).Return(&notes.NoteResponse{ID: 1}, nil)

		req := testutil.CreateJSONRequest(t, "POST", "/api/notes", map[string]any{
			"title": strings.Repeat("a", 255),
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("400 on storage conflict", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, notes.ErrStorageConflict)

		req := testutil.CreateJSONRequest(t, "POST", "/api/notes", map[string]any{"title": "A"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("500 on storage unavailable", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, notes.ErrStorageUnavailable)

		req := testutil.CreateJSONRequest(t, "POST", "/api/notes", map[string]any{"title": "A"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestListHandler(t *testing.T) {
	t.Run("200 with query parameters", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("List", mock.Anything, mock.MatchedBy(func(req notes.ListNotesRequest) bool {
			return req.Q == "meeting" && req.Tag == "work" && req.Skip == 2 && req.Limit == 10
		})).Return([]*notes.NoteResponse{{ID: 1}}, nil)

		req := testutil.CreateJSONRequest(t, "GET", "/api/notes?q=meeting&tag=work&skip=2&limit=10", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var list []*notes.NoteResponse
		testutil.DecodeJSON(t, resp, &list)
		require.Len(t, list, 1)
		svc.AssertExpectations(t)
	})

	t.Run("400 on out-of-range pagination", func(t *testing.T) {
		for name, query := range map[string]string{
			"limit above max": "limit=201",
			"negative skip":   "skip=-1",
		} {
			t.Run(name, func(t *testing.T) {
				app, svc := setupApp(t)

				req := testutil.CreateJSONRequest(t, "GET", "/api/notes?"+query, nil)
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.Equal(t, 400, resp.StatusCode)
				svc.AssertNotCalled(t, "List")
			})
		}
	})
}

func TestGetHandler(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Get", mock.Anything, int64(42)).Return(&notes.NoteResponse{ID: 42, Title: "A"}, nil)

		req := testutil.CreateJSONRequest(t, "GET", "/api/notes/42", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("404 when absent", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Get", mock.Anything, int64(9)).Return(nil, notes.ErrNoteNotFound)

		req := testutil.CreateJSONRequest(t, "GET", "/api/notes/9", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("404 on malformed id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3"} {
			app, svc := setupApp(t)

			req := testutil.CreateJSONRequest(t, "GET", "/api/notes/"+id, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode, "id %q", id)
			svc.AssertNotCalled(t, "Get")
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("200 applies partial update", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(req notes.UpdateNoteRequest) bool {
			return req.Title == nil && req.Content != nil && req.Tags == nil
		})).Return(&notes.NoteResponse{ID: 1}, nil)

		req := testutil.CreateJSONRequest(t, "PUT", "/api/notes/1", map[string]any{"content": "new"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("explicit empty tags reach the service non-nil", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(req notes.UpdateNoteRequest) bool {
			return req.Tags != nil && len(req.Tags) == 0
		})).Return(&notes.NoteResponse{ID: 1}, nil)

		req := testutil.CreateJSONRequest(t, "PUT", "/api/notes/1", map[string]any{"tags": []string{}})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("400 on empty title", func(t *testing.T) {
		app, svc := setupApp(t)

		req := testutil.CreateJSONRequest(t, "PUT", "/api/notes/1", map[string]any{"title": ""})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		svc.AssertNotCalled(t, "Update")
	})

	t.Run("404 when absent", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Update", mock.Anything, int64(9), mock.Anything).Return(nil, notes.ErrNoteNotFound)

		req := testutil.CreateJSONRequest(t, "PUT", "/api/notes/9", map[string]any{"content": "new"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("204 on success", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Delete", mock.Anything, int64(1)).Return(nil)

		req := httptest.NewRequest("DELETE", "/api/notes/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	})

	t.Run("404 when absent", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Delete", mock.Anything, int64(9)).Return(notes.ErrNoteNotFound)

		req := httptest.NewRequest("DELETE", "/api/notes/9", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("500 on storage unavailable", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.On("Delete", mock.Anything, int64(1)).Return(notes.ErrStorageUnavailable)

		req := httptest.NewRequest("DELETE", "/api/notes/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}
