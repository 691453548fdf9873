package taskapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

type staticSource string

func (s staticSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: string(s)}, nil
}

// fakeBackend mirrors the backend's task slice: in-memory store,
// bearer auth, {"message": ...} failure bodies.
func fakeBackend(t *testing.T) (*httptest.Server, *[]Task) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tasks := &[]Task{}
	nextID := int64(1)

	r := gin.New()

	authed := r.Group("/", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer tok-123" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid or expired"})
		}
	})

	authed.GET("/tasks/", func(c *gin.Context) {
		c.JSON(http.StatusOK, *tasks)
	})
	authed.POST("/tasks/", func(c *gin.Context) {
		var req CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
			return
		}
		created := Task{
			ID:          nextID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Category:    req.Category,
			DueDate:     req.DueDate,
			CreatedAt:   "2026-08-28T10:00:00",
			UpdatedAt:   "2026-08-28T10:00:00",
		}
		nextID++
		*tasks = append(*tasks, created)
		c.JSON(http.StatusCreated, created)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, tasks
}

func TestClient_BearerToken(t *testing.T) {
	ctx := context.Background()
	srv, _ := fakeBackend(t)

	t.Run("valid token is attached", func(t *testing.T) {
		c := NewClient(srv.URL, staticSource("tok-123"), time.Second)
		if _, err := c.ListTasks(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty token goes out unauthenticated", func(t *testing.T) {
		c := NewClient(srv.URL, staticSource(""), time.Second)
		_, err := c.ListTasks(ctx)
		if !IsAuthError(err) {
			t.Fatalf("expected auth error, got %v", err)
		}
	})

	t.Run("nil source is tolerated", func(t *testing.T) {
		c := NewClient(srv.URL, nil, time.Second)
		if _, err := c.ListTasks(ctx); !IsAuthError(err) {
			t.Fatalf("expected auth error, got %v", err)
		}
	})
}

func TestClient_ErrorNormalization(t *testing.T) {
	ctx := context.Background()

	t.Run("backend message surfaces verbatim", func(t *testing.T) {
		srv, _ := fakeBackend(t)
		c := NewClient(srv.URL, staticSource("tok-123"), time.Second)

		_, err := c.CreateTask(ctx, CreateTaskRequest{Title: ""})
		if got := UserMessage(err); got != "Title is required" {
			t.Errorf("expected backend message verbatim, got %q", got)
		}
	})

	t.Run("unstructured failure body falls back to generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>oops</html>"))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.URL, nil, time.Second)
		_, err := c.ListTasks(ctx)
		if got := UserMessage(err); got != GenericConnectivityMessage {
			t.Errorf("expected generic message, got %q", got)
		}
	})

	t.Run("unreachable backend yields generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listens anymore

		c := NewClient(srv.URL, nil, time.Second)
		_, err := c.ListTasks(ctx)
		if err == nil {
			t.Fatal("expected error")
		}
		if got := UserMessage(err); got != GenericConnectivityMessage {
			t.Errorf("expected generic message, got %q", got)
		}
		if IsAuthError(err) {
			t.Error("connectivity failure must not look like an auth failure")
		}
	})
}

func TestClient_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv, store := fakeBackend(t)
	c := NewClient(srv.URL, staticSource("tok-123"), time.Second)

	due := "2026-09-01T00:00:00Z"
	created, err := c.CreateTask(ctx, CreateTaskRequest{
		Title:    "Write report",
		Priority: "high",
		Category: "work",
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 || created.Title != "Write report" {
		t.Errorf("unexpected created task: %+v", created)
	}

	listed, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("created task not listed: %+v", listed)
	}
	if len(*store) != 1 {
		t.Errorf("fake backend store out of sync: %+v", *store)
	}
}

func TestClient_RequestID(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, nil, time.Second)
	if _, err := c.ListTasks(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Error("expected a correlation id on the request")
	}
}
