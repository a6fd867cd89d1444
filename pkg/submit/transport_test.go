package submit

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/propdesk/go-contractflow/pkg/payload"
)

func TestHTTPTransport_PostsMultipartBody(t *testing.T) {
	var (
		gotMethod string
		gotValue  string
		gotFile   []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("content type = %q (%v)", r.Header.Get("Content-Type"), err)
			return
		}
		reader := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("read part: %v", err)
				return
			}
			data, _ := io.ReadAll(part)
			switch part.FormName() {
			case "agente_nombre":
				gotValue = string(data)
			case "reporte_excel":
				gotFile = data
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := payload.New()
	p.SetValue("agente_nombre", "María Silva")
	p.SetFile("reporte_excel", payload.File{Filename: "Resumen_Operacion.xlsx", Content: []byte("PKxx")})

	if err := NewHTTPTransport(server.URL).Send(context.Background(), p); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %s, want POST", gotMethod)
	}
	if gotValue != "María Silva" {
		t.Fatalf("agente_nombre = %q", gotValue)
	}
	if string(gotFile) != "PKxx" {
		t.Fatalf("reporte_excel bytes = %q", gotFile)
	}
}

func TestHTTPTransport_NonSuccessBecomesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "solicitud malformada", http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewHTTPTransport(server.URL).Send(context.Background(), payload.New())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if statusErr.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", statusErr.Code)
	}
	if !strings.Contains(statusErr.Error(), "solicitud malformada") {
		t.Fatalf("error text should carry the body, got %q", statusErr.Error())
	}
}

func TestHTTPTransport_RequiresEndpoint(t *testing.T) {
	if err := NewHTTPTransport("  ").Send(context.Background(), payload.New()); err == nil {
		t.Fatal("expected error for blank endpoint")
	}
}

func TestHTTPTransport_HonoursContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewHTTPTransport(server.URL).Send(ctx, payload.New()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
