package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/blogs/pkg/validator"
)

type signUp struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        signUp
		wantField string
		wantMsg   string
	}{
		{"valid", signUp{Email: "ada@example.com", Password: "correct horse"}, "", ""},
		{"missing email", signUp{Password: "correct horse"}, "email", "can't be blank"},
		{"malformed email", signUp{Email: "ada", Password: "correct horse"}, "email", "is invalid"},
		{"short password", signUp{Email: "ada@example.com", Password: "short"}, "password", "is too short (minimum is 8 characters)"},
		{"long password", signUp{Email: "ada@example.com", Password: strings.Repeat("x", 73)}, "password", "is too long (maximum is 72 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			m := pkgvalidator.FormatValidationErrors(err)
			if m[tt.wantField] != tt.wantMsg {
				t.Fatalf("expected %s message %q, got %q (all: %v)", tt.wantField, tt.wantMsg, m[tt.wantField], m)
			}
		})
	}
}

func TestFormatValidationErrors_numericBounds(t *testing.T) {
	type page struct {
		Limit int `json:"limit" validate:"min=1,max=100"`
	}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&page{Limit: 0}))
	if m["limit"] != "must be greater than or equal to 1" {
		t.Fatalf("unexpected message %q", m["limit"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- DecodeRequest / ValidateRequest ---

type blogReq struct {
	Title string `json:"title" validate:"required,max=255"`
}

func TestDecodeRequest_skipsValidation(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.DecodeRequest[blogReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "" {
		t.Errorf("unexpected Title: %q", req.Title)
	}
}

func TestValidateRequest_valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hello"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[blogReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "Hello" {
		t.Errorf("unexpected Title: %q", req.Title)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[blogReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestDecodeRequest_wrongFieldType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":123}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.DecodeRequest[blogReq](w, r)
	if ok {
		t.Fatal("expected ok=false for a numeric title")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"title":"is invalid"`) {
		t.Errorf("expected title field error in body, got: %s", w.Body.String())
	}
}

func TestDecodeRequest_wrongTopLevelType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`["Hello"]`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.DecodeRequest[blogReq](w, r); ok {
		t.Fatal("expected ok=false for an array body")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"body":"text"}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[blogReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing title")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"title":"can't be blank"`) {
		t.Errorf("expected title field error in body, got: %s", w.Body.String())
	}
}
