package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/model"
)

var archive = []byte("PK\x03\x04fake-archive")

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, WithHTTPClient(server.Client()), WithLogger(quietLogger())), server
}

func validRequest() model.GenerationRequest {
	return model.NewGenerationRequest(" MyApp ", "com.example.myapp", model.DefaultLibraryChoices())
}

func requireKind(t *testing.T, err error, kind model.ErrorKind) *model.GenerationError {
	t.Helper()
	genErr, ok := model.AsGenerationError(err)
	if !ok {
		t.Fatalf("Expected *GenerationError, got %T: %v", err, err)
	}
	if genErr.Kind != kind {
		t.Fatalf("Expected kind %s, got %s (%v)", kind, genErr.Kind, genErr)
	}
	return genErr
}

func TestGenerate_RequestContract(t *testing.T) {
	var got model.GenerationRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/templates/basic/generate" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected Content-Type %s", ct)
		}
		if accept := r.Header.Get("Accept"); accept != "application/octet-stream" {
			t.Errorf("Unexpected Accept %s", accept)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		w.Write(archive)
	})

	if _, err := client.Generate(context.Background(), model.TierBasic, validRequest()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := model.GenerationRequest{
		ProjectName:    "MyApp",
		PackageName:    "com.example.myapp",
		DependencyList: []string{"hilt", "ktor", "coroutines", "viewmodel"},
		CompilerType:   model.CompilerKsp,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_FilenameFromHeader(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="x.zip"`)
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	})

	result, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Filename != "x.zip" {
		t.Errorf("Expected filename x.zip, got %q", result.Filename)
	}
	if result.ContentType != "application/zip" {
		t.Errorf("Unexpected content type %q", result.ContentType)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("Unexpected status %d", result.StatusCode)
	}
	if diff := cmp.Diff(archive, result.Payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_FilenameFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})

	result, err := client.Generate(context.Background(), model.TierIntermediate, validRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Filename != "MyApp.zip" {
		t.Errorf("Expected fallback filename MyApp.zip, got %q", result.Filename)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename*=UTF-8''MyApp.zip`)
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	})

	first, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}

func TestGenerate_ServerErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"json message", http.StatusInternalServerError, `{"message":"quota exceeded"}`, "quota exceeded"},
		{"json error", http.StatusBadRequest, `{"error":"bad package"}`, "bad package"},
		{"message wins", http.StatusBadRequest, `{"message":"m","error":"e"}`, "m"},
		{"json without fields", http.StatusBadGateway, `{"code":7}`, `{"code":7}`},
		{"numeric message", http.StatusServiceUnavailable, `{"message":503}`, "503"},
		{"falsy message falls through", http.StatusBadRequest, `{"message":false,"error":"e"}`, "e"},
		{"object message is ignored", http.StatusBadRequest, `{"message":{"a":1}}`, `{"message":{"a":1}}`},
		{"plain text", http.StatusServiceUnavailable, "maintenance", "maintenance"},
		{"empty body", http.StatusNotFound, "", "Request failed with status 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
			genErr := requireKind(t, err, model.KindServer)
			if genErr.Status != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, genErr.Status)
			}
			if genErr.Message != tt.expected {
				t.Errorf("Expected message %q, got %q", tt.expected, genErr.Message)
			}
		})
	}
}

func TestGenerate_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	genErr := requireKind(t, err, model.KindInvalidBlob)
	if genErr.Message != MsgEmptyFile {
		t.Errorf("Unexpected message %q", genErr.Message)
	}
	if genErr.Status != http.StatusOK {
		t.Errorf("Expected status 200 attached, got %d", genErr.Status)
	}
}

func TestGenerate_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, WithLogger(quietLogger()))
	_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	genErr := requireKind(t, err, model.KindNetwork)
	if genErr.HasStatus() {
		t.Errorf("Network errors carry no status, got %d", genErr.Status)
	}
	if genErr.Unwrap() == nil {
		t.Error("Expected transport cause to be kept")
	}
}

func TestGenerate_CanceledContextIsUnknown(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, model.TierBasic, validRequest())
	genErr := requireKind(t, err, model.KindUnknown)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cause context.Canceled, got %v", genErr.Err)
	}
}

func TestGenerate_InvalidBaseURLIsUnknown(t *testing.T) {
	client := NewClient("http://bad host", WithLogger(quietLogger()))
	_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	genErr := requireKind(t, err, model.KindUnknown)
	if !strings.HasPrefix(genErr.Message, "Unexpected error: ") {
		t.Errorf("Unexpected message %q", genErr.Message)
	}
}

func TestGenerate_OneRequestPerCall(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	client.Generate(context.Background(), model.TierBasic, validRequest())
	if got := calls.Load(); got != 1 {
		t.Errorf("Expected exactly one request, got %d", got)
	}
}

func TestEndpoint(t *testing.T) {
	client := NewClient("http://localhost:8080/")
	if got := client.Endpoint(model.TierAdvanced); got != "http://localhost:8080/api/templates/advanced/generate" {
		t.Errorf("Unexpected endpoint %s", got)
	}
	if client.BaseURL() != "http://localhost:8080" {
		t.Errorf("Unexpected base URL %s", client.BaseURL())
	}
}

func TestGenerate_UnsupportedSchemeIsUnknown(t *testing.T) {
	client := NewClient("ftp://example.invalid", WithLogger(quietLogger()))
	_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	genErr := requireKind(t, err, model.KindUnknown)
	if !strings.Contains(genErr.Message, "unsupported protocol scheme") {
		t.Errorf("Unexpected message %q", genErr.Message)
	}
}

func TestGenerate_RedirectRefusalIsUnknown(t *testing.T) {
	refused := errors.New("redirects are not followed")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	hc := server.Client()
	hc.CheckRedirect = func(*http.Request, []*http.Request) error { return refused }
	client := NewClient(server.URL, WithHTTPClient(hc), WithLogger(quietLogger()))

	_, err := client.Generate(context.Background(), model.TierBasic, validRequest())
	requireKind(t, err, model.KindUnknown)
	if !errors.Is(err, refused) {
		t.Errorf("Expected cause to be kept, got %v", err)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	wrap := func(err error) error {
		return &url.Error{Op: "Post", URL: "http://localhost:8080", Err: err}
	}

	tests := []struct {
		name string
		err  error
		kind model.ErrorKind
	}{
		{"dial failure", wrap(&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}), model.KindNetwork},
		{"dns failure", wrap(&net.DNSError{Err: "no such host", Name: "example.invalid"}), model.KindNetwork},
		{"connection reset", wrap(syscall.ECONNRESET), model.KindNetwork},
		{"unexpected eof", wrap(io.ErrUnexpectedEOF), model.KindNetwork},
		{"server closed connection", wrap(io.EOF), model.KindNetwork},
		{"timeout", wrap(timeoutError{}), model.KindNetwork},
		{"body read cut short", io.ErrUnexpectedEOF, model.KindNetwork},
		{"url error without connection cause", wrap(errors.New("roundtrip refused")), model.KindUnknown},
		{"canceled", wrap(context.Canceled), model.KindUnknown},
		{"plain error", errors.New("boom"), model.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError(tt.err)
			if got.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, got.Kind)
			}
			if !errors.Is(got, tt.err) {
				t.Error("Expected original error to be kept as cause")
			}
		})
	}
}
