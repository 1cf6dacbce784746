package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jiningying/property-chat-agent/config"
	"github.com/jiningying/property-chat-agent/internal/domain"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/catalog"
	"github.com/jiningying/property-chat-agent/internal/infrastructure/store"
	"github.com/jiningying/property-chat-agent/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestRouter wires the full service stack with the seeded catalog,
// no AI backend, and rate limiting off.
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	listings := catalog.NewSeeded()
	profiles := store.NewMemoryStore()
	engine := usecase.NewMatchEngine(usecase.MatchConfig{})
	chat := usecase.NewChatService(listings, profiles, nil, engine, zap.NewNop())
	handler := NewHandler(chat, listings)

	return SetupRouter(cfg, handler, zap.NewNop())
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, decoded
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter()

	w, response := doJSON(t, router, "GET", "/health", "")

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "property-chat-agent" {
		t.Errorf("service = %v, want property-chat-agent", response["service"])
	}
}

func TestChatEndpoint(t *testing.T) {
	t.Run("returns recommendations for a property message", func(t *testing.T) {
		router := setupTestRouter()

		w, response := doJSON(t, router, "POST", "/api/v1/chat",
			`{"message": "apartment in melbourne", "userId": "u1"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if response["type"] != domain.ResponseTypeAI {
			t.Errorf("type = %v, want %s", response["type"], domain.ResponseTypeAI)
		}

		recommendations, ok := response["recommendations"].([]interface{})
		if !ok || len(recommendations) != 1 {
			t.Fatalf("recommendations = %v, want exactly one", response["recommendations"])
		}
		first := recommendations[0].(map[string]interface{})
		if first["id"] != "prop_001" {
			t.Errorf("recommendation id = %v, want prop_001", first["id"])
		}

		criteria, ok := response["criteria"].(map[string]interface{})
		if !ok {
			t.Fatal("criteria missing from response")
		}
		if criteria["property_type"] != "apartment" || criteria["location"] != "melbourne" {
			t.Errorf("criteria = %v, want apartment in melbourne", criteria)
		}
	})

	t.Run("rejects a missing message", func(t *testing.T) {
		router := setupTestRouter()

		w, response := doJSON(t, router, "POST", "/api/v1/chat", `{"userId": "u1"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if response["type"] != domain.ResponseTypeError {
			t.Errorf("type = %v, want %s", response["type"], domain.ResponseTypeError)
		}
		recommendations, ok := response["recommendations"].([]interface{})
		if !ok || len(recommendations) != 0 {
			t.Errorf("recommendations = %v, want empty list", response["recommendations"])
		}
	})

	t.Run("defaults the user id", func(t *testing.T) {
		router := setupTestRouter()

		doJSON(t, router, "POST", "/api/v1/chat", `{"message": "hello"}`)

		// The default user now has a profile.
		w, _ := doJSON(t, router, "GET", "/api/v1/users/default", "")
		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := setupTestRouter()

	w, response := doJSON(t, router, "GET", "/api/v1/recommendations/u1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if response["userId"] != "u1" {
		t.Errorf("userId = %v, want u1", response["userId"])
	}

	recommendations, ok := response["recommendations"].([]interface{})
	if !ok || len(recommendations) == 0 {
		t.Fatalf("recommendations = %v, want a non-empty list", response["recommendations"])
	}

	// Default profile puts the Richmond townhouse on top.
	first := recommendations[0].(map[string]interface{})
	property := first["property"].(map[string]interface{})
	if property["id"] != "prop_002" {
		t.Errorf("top recommendation = %v, want prop_002", property["id"])
	}

	previous := 1.1
	for _, item := range recommendations {
		score := item.(map[string]interface{})["match_score"].(float64)
		if score <= 0.6 {
			t.Errorf("match_score = %v, want > 0.6", score)
		}
		if score > previous {
			t.Error("recommendations are not sorted by descending score")
		}
		previous = score
	}
}

func TestRecommendationsQueryCriteria(t *testing.T) {
	router := setupTestRouter()

	t.Run("narrows by budget", func(t *testing.T) {
		w, response := doJSON(t, router, "GET", "/api/v1/recommendations/u1?budget=700000", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		recommendations := response["recommendations"].([]interface{})
		for _, item := range recommendations {
			property := item.(map[string]interface{})["property"].(map[string]interface{})
			if property["price"].(float64) > 700000 {
				t.Errorf("property %v exceeds the requested budget", property["id"])
			}
		}
	})

	t.Run("rejects a malformed budget", func(t *testing.T) {
		w, _ := doJSON(t, router, "GET", "/api/v1/recommendations/u1?budget=cheap", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects an unknown property type", func(t *testing.T) {
		w, _ := doJSON(t, router, "GET", "/api/v1/recommendations/u1?property_type=castle", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestExplainEndpoint(t *testing.T) {
	t.Run("asks for a conversation first", func(t *testing.T) {
		router := setupTestRouter()

		w, response := doJSON(t, router, "GET", "/api/v1/recommendations/u1/prop_001/explain", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		message, _ := response["message"].(string)
		if !strings.Contains(message, "start a conversation first") {
			t.Errorf("message = %q, want conversation prompt", message)
		}
	})

	t.Run("reports an unknown property", func(t *testing.T) {
		router := setupTestRouter()
		doJSON(t, router, "POST", "/api/v1/chat", `{"message": "hello", "userId": "u1"}`)

		w, response := doJSON(t, router, "GET", "/api/v1/recommendations/u1/prop_999/explain", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if response["message"] != "Property not found." {
			t.Errorf("message = %v, want property-not-found text", response["message"])
		}
	})

	t.Run("returns a full breakdown", func(t *testing.T) {
		router := setupTestRouter()
		doJSON(t, router, "POST", "/api/v1/chat", `{"message": "hello", "userId": "u1"}`)

		w, response := doJSON(t, router, "GET", "/api/v1/recommendations/u1/prop_002/explain", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if response["propertyId"] != "prop_002" {
			t.Errorf("propertyId = %v, want prop_002", response["propertyId"])
		}
		score, ok := response["overallScore"].(float64)
		if !ok || score <= 0 {
			t.Errorf("overallScore = %v, want > 0", response["overallScore"])
		}
		for _, field := range []string{"budget", "type", "location", "features"} {
			if text, _ := response[field].(string); text == "" {
				t.Errorf("breakdown field %q is empty", field)
			}
		}
	})
}

func TestUpdatePreferencesEndpoint(t *testing.T) {
	t.Run("applies a valid patch", func(t *testing.T) {
		router := setupTestRouter()

		w, response := doJSON(t, router, "PUT", "/api/v1/users/u1/preferences",
			`{"budget_max": 1500000, "preferred_suburbs": ["Carlton"]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d: %v", w.Code, http.StatusOK, response)
		}
		profile, ok := response["profile"].(map[string]interface{})
		if !ok {
			t.Fatal("profile missing from response")
		}
		if profile["budget_max"].(float64) != 1500000 {
			t.Errorf("budget_max = %v, want 1500000", profile["budget_max"])
		}
	})

	t.Run("rejects a bad value type", func(t *testing.T) {
		router := setupTestRouter()

		w, _ := doJSON(t, router, "PUT", "/api/v1/users/u1/preferences",
			`{"budget_max": "a lot"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestPropertiesEndpoint(t *testing.T) {
	router := setupTestRouter()

	w, response := doJSON(t, router, "GET", "/api/v1/properties", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	properties, ok := response["properties"].([]interface{})
	if !ok || len(properties) != 5 {
		t.Errorf("properties = %d entries, want 5", len(properties))
	}
}

func TestSavePropertyEndpoint(t *testing.T) {
	t.Run("saves a known listing", func(t *testing.T) {
		router := setupTestRouter()

		w, _ := doJSON(t, router, "POST", "/api/v1/users/u1/saved/prop_001", "")
		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("404s an unknown listing", func(t *testing.T) {
		router := setupTestRouter()

		w, _ := doJSON(t, router, "POST", "/api/v1/users/u1/saved/prop_999", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestGetProfileEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("404s before any interaction", func(t *testing.T) {
		w, _ := doJSON(t, router, "GET", "/api/v1/users/u1", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("returns the profile after a chat", func(t *testing.T) {
		doJSON(t, router, "POST", "/api/v1/chat", `{"message": "hello", "userId": "u1"}`)

		w, response := doJSON(t, router, "GET", "/api/v1/users/u1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if response["name"] != "Property Seeker" {
			t.Errorf("name = %v, want default profile name", response["name"])
		}
	})
}
