package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adamValent/CNC-code-utility/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(pipeline.Options{}, nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestTransform(t *testing.T) {
	srv := newTestServer(t)

	body := "X60.000Y5.000T02\nX40.000Y3.000T01\n"
	resp, err := http.Post(srv.URL+"/v1/transform", "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Job-ID") == "" {
		t.Error("missing X-Job-ID header")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	want := "X40.000Y3.000T01\nX60.000Y15.000T02\n"
	if string(data) != want {
		t.Errorf("body = %q, want %q", data, want)
	}
}

func TestTransform_EmptyBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/transform", "text/plain", strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("body = %q, want empty", data)
	}
}

func TestTransform_ParseError(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/transform", "text/plain", strings.NewReader("X1.2.3Y4.000\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "PARSE_ERROR" {
		t.Errorf("code = %q, want PARSE_ERROR", body.Code)
	}
	if !strings.Contains(body.Message, "line 1") {
		t.Errorf("message = %q, want line number", body.Message)
	}
}

func TestExtrema(t *testing.T) {
	srv := newTestServer(t)

	body := "X60.000Y5.000T02\nX40.000Y3.000T01\n"
	resp, err := http.Post(srv.URL+"/v1/extrema", "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got extremaResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}

	want := extremaResponse{
		XMin: "40.000", XMax: "60.000",
		YMin: "3.000", YMax: "15.000",
		Report: "40.000/60.000/3.000/15.000",
		Coords: 2,
	}
	if got != want {
		t.Errorf("response = %+v, want %+v", got, want)
	}
}

func TestExtrema_NoData(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/extrema", "text/plain", strings.NewReader("no coordinates\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got extremaResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Report != "-/-/-/-" || got.XMin != "-" {
		t.Errorf("response = %+v, want no-data markers", got)
	}
}
