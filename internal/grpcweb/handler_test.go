package grpcweb_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"clinic-calendar-api/internal/calendar"
	"clinic-calendar-api/internal/grpcweb"
	"clinic-calendar-api/internal/handler"
	"clinic-calendar-api/internal/model"
	"clinic-calendar-api/internal/rpc"
	"clinic-calendar-api/internal/store"
)

// newBridge builds a bridge whose direct handler serves everything
// in-process; the client conn is lazy and never dialed in these tests.
func newBridge(t *testing.T) http.Handler {
	t.Helper()
	st := store.NewMemory(
		[]model.Doctor{{ID: "doc-1", Name: "Dr. Sarah Chen", Specialty: model.Cardiology}},
		[]model.Patient{{ID: "pat-1", Name: "Alice Morgan"}},
		nil,
	)
	svc := calendar.NewService(st, calendar.DefaultConfig(), zap.NewNop())
	h := handler.New(svc, zap.NewNop())

	b, err := grpcweb.New("localhost:0", h, zap.NewNop())
	if err != nil {
		t.Fatalf("bridge: %v", err)
	}
	t.Cleanup(b.Close)
	return b.Handler()
}

func frame(payload []byte) []byte {
	out := make([]byte, 5+len(payload))
	binary.BigEndian.PutUint32(out[1:5], uint32(len(payload)))
	copy(out[5:], payload)
	return out
}

// splitFrames decodes the 1-byte-flag + 4-byte-length framing of a
// grpc-web response body.
func splitFrames(t *testing.T, body []byte) (data, trailer []byte) {
	t.Helper()
	for len(body) >= 5 {
		n := binary.BigEndian.Uint32(body[1:5])
		if int(n)+5 > len(body) {
			t.Fatalf("truncated frame: need %d, have %d", n+5, len(body))
		}
		payload := body[5 : 5+n]
		if body[0]&0x80 != 0 {
			trailer = payload
		} else {
			data = payload
		}
		body = body[5+n:]
	}
	return data, trailer
}

func grpcStatus(t *testing.T, trailer []byte) string {
	t.Helper()
	for _, line := range strings.Split(string(trailer), "\r\n") {
		if v, ok := strings.CutPrefix(line, "grpc-status:"); ok {
			return v
		}
	}
	t.Fatalf("no grpc-status in trailer %q", trailer)
	return ""
}

func post(t *testing.T, h http.Handler, method string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/calendar.v1.CalendarService/%s", method), bytes.NewReader(frame(payload)))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPreflight(t *testing.T) {
	h := newBridge(t)

	req := httptest.NewRequest(http.MethodOptions, "/calendar.v1.CalendarService/ListDoctors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Error("POST missing from allowed methods")
	}
}

func TestRejectsNonGrpcWeb(t *testing.T) {
	h := newBridge(t)

	req := httptest.NewRequest(http.MethodPost, "/calendar.v1.CalendarService/ListDoctors",
		strings.NewReader(`{"not":"grpc"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status %d, want 415", rec.Code)
	}
}

func TestRejectsShortBody(t *testing.T) {
	h := newBridge(t)

	req := httptest.NewRequest(http.MethodPost, "/calendar.v1.CalendarService/ListDoctors",
		bytes.NewReader([]byte{0x00}))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	_, trailer := splitFrames(t, rec.Body.Bytes())
	if got := grpcStatus(t, trailer); got != "3" {
		t.Fatalf("grpc-status %s, want 3 (invalid argument)", got)
	}
}

func TestListDoctorsDispatch(t *testing.T) {
	h := newBridge(t)

	rec := post(t, h, "ListDoctors", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/grpc-web+proto" {
		t.Errorf("content-type %q", ct)
	}

	data, trailer := splitFrames(t, rec.Body.Bytes())
	if got := grpcStatus(t, trailer); got != "0" {
		t.Fatalf("grpc-status %s, want 0", got)
	}

	var resp rpc.ListDoctorsResponse
	if err := (rpc.Codec{}).Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Doctors) != 1 || resp.Doctors[0].Name != "Dr. Sarah Chen" {
		t.Errorf("doctors = %+v", resp.Doctors)
	}
}

func TestGetDoctorNotFoundDispatch(t *testing.T) {
	h := newBridge(t)

	payload, err := (rpc.Codec{}).Marshal(&rpc.GetDoctorRequest{ID: "no-such-doctor"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec := post(t, h, "GetDoctor", payload)

	data, trailer := splitFrames(t, rec.Body.Bytes())
	if len(data) != 0 {
		t.Errorf("error response carries a data frame: %q", data)
	}
	if got := grpcStatus(t, trailer); got != "5" {
		t.Fatalf("grpc-status %s, want 5 (not found)", got)
	}
}

func TestGetDayScheduleDispatch(t *testing.T) {
	h := newBridge(t)

	payload, err := (rpc.Codec{}).Marshal(&rpc.ScheduleRequest{
		DoctorID: "doc-1",
		Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rec := post(t, h, "GetDaySchedule", payload)

	data, trailer := splitFrames(t, rec.Body.Bytes())
	if got := grpcStatus(t, trailer); got != "0" {
		t.Fatalf("grpc-status %s, want 0", got)
	}

	var resp rpc.ScheduleResponse
	if err := (rpc.Codec{}).Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Schedule == nil || len(resp.Schedule.Days) != 1 {
		t.Fatalf("schedule = %+v", resp.Schedule)
	}
	if len(resp.Schedule.Days[0].Slots) != 20 {
		t.Errorf("got %d slot rows, want 20", len(resp.Schedule.Days[0].Slots))
	}
}
