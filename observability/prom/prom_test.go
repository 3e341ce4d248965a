package prom

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paxelcool/ctrader-open-api-async/observability"
)

func TestClientObserverExportsMetrics(t *testing.T) {
	reg := NewRegistry()
	obs := NewClientObserver(reg)

	obs.Connected()
	obs.Call(observability.CallResultOK, 5*time.Millisecond)
	obs.Call(observability.CallResultTimeout, time.Second)
	obs.HeartbeatSent()
	obs.EventReceived(2131)
	obs.SendQueueDepth(2)
	obs.FrameError(observability.FrameRead)
	obs.Disconnected(observability.CloseReasonPeerClosed)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"ctrader_client_connected 0",
		`ctrader_client_calls_total{result="ok"} 1`,
		`ctrader_client_calls_total{result="timeout"} 1`,
		"ctrader_client_heartbeats_total 1",
		`ctrader_client_events_total{payload_type="2131"} 1`,
		"ctrader_client_send_queue_depth 2",
		`ctrader_client_frame_errors_total{direction="read"} 1`,
		`ctrader_client_disconnects_total{reason="peer_closed"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics body missing %q:\n%s", want, body)
		}
	}
}

func TestObserverRegistersOnFreshRegistry(t *testing.T) {
	// Two observers on two registries must not collide.
	NewClientObserver(NewRegistry())
	NewClientObserver(NewRegistry())
}
