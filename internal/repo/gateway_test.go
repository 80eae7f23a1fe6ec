package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
)

func TestFetchReadingsDecodesAndSkipsMalformed(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	client := NewGatewayClient("https://gateway.example.com", "/api/v1/readings/query", "tok-123", time.Second)
	client.httpClient = newTestClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/readings/query" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		var payload map[string]any
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request payload: %v", err)
		}
		if payload["site_id"] != "pit-a" {
			t.Fatalf("unexpected site in payload: %v", payload["site_id"])
		}

		body := map[string]any{
			"readings": []map[string]any{
				{
					"site_id":           "pit-a",
					"at":                at.Format(time.RFC3339),
					"waveform":          map[string]any{"samples": []float64{0.1, -0.2, 0.3}, "sample_rate_hz": 4096.0},
					"pore_pressure_kpa": 31.5,
					"displacement_mm":   0.42,
					"rate_mm_h":         0.02,
				},
				{
					// No waveform samples: must be dropped, not fatal.
					"site_id":           "pit-a",
					"at":                at.Add(10 * time.Minute).Format(time.RFC3339),
					"waveform":          map[string]any{"samples": []float64{}, "sample_rate_hz": 4096.0},
					"pore_pressure_kpa": 30.0,
				},
				{
					"site_id":           "",
					"at":                at.Add(20 * time.Minute).Format(time.RFC3339),
					"waveform":          map[string]any{"samples": []float64{0.5}, "sample_rate_hz": 2048.0},
					"pore_pressure_kpa": 29.0,
					"geometry": map[string]any{
						"slope_angle_deg":   20.0,
						"unit_weight_kn_m3": 22.0,
						"failure_depth_m":   6.0,
					},
				},
			},
		}
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal response: %v", err)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(data)),
			Header:     make(http.Header),
		}, nil
	}))

	query := models.ReadingsQuery{SiteID: "pit-a", Start: at.Add(-time.Hour), End: at.Add(time.Hour), Limit: 32}
	readings, skipped, err := client.FetchReadings(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped reading, got %d", skipped)
	}
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(readings))
	}
	if readings[0].PorePressureKPa != 31.5 || readings[0].Waveform.SampleRateHz != 4096 {
		t.Fatalf("first reading decoded wrong: %+v", readings[0])
	}
	if readings[0].Geometry != nil {
		t.Fatalf("first reading should have no geometry override")
	}
	if readings[1].SiteID != "pit-a" {
		t.Fatalf("blank wire site should fall back to the query site, got %q", readings[1].SiteID)
	}
	if readings[1].Geometry == nil || readings[1].Geometry.SlopeAngleDeg != 20 {
		t.Fatalf("geometry override lost: %+v", readings[1].Geometry)
	}
}

func TestFetchReadingsEmptyWindowIsNotAnError(t *testing.T) {
	client := NewGatewayClient("https://gateway.example.com", "/api/v1/readings/query", "", time.Second)
	client.httpClient = newTestClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("Authorization"); got != "" {
			t.Fatalf("expected no authorization header, got %q", got)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"readings":[]}`))),
			Header:     make(http.Header),
		}, nil
	}))

	readings, skipped, err := client.FetchReadings(context.Background(), models.ReadingsQuery{SiteID: "pit-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(readings) != 0 || skipped != 0 {
		t.Fatalf("expected empty batch, got %d readings %d skipped", len(readings), skipped)
	}
}

func TestFetchReadingsSurfacesHTTPFailure(t *testing.T) {
	client := NewGatewayClient("https://gateway.example.com", "/api/v1/readings/query", "", time.Second)
	client.httpClient = newTestClient(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     make(http.Header),
		}, nil
	}))

	if _, _, err := client.FetchReadings(context.Background(), models.ReadingsQuery{SiteID: "pit-a"}); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}

func TestFetchReadingsGuards(t *testing.T) {
	var nilClient *GatewayClient
	if _, _, err := nilClient.FetchReadings(context.Background(), models.ReadingsQuery{SiteID: "pit-a"}); err == nil {
		t.Fatal("expected error from nil client")
	}

	client := NewGatewayClient("", "/api/v1/readings/query", "", time.Second)
	if _, _, err := client.FetchReadings(context.Background(), models.ReadingsQuery{SiteID: "pit-a"}); err == nil {
		t.Fatal("expected error for missing base URL")
	}

	client = NewGatewayClient("https://gateway.example.com", "/api/v1/readings/query", "", time.Second)
	if _, _, err := client.FetchReadings(context.Background(), models.ReadingsQuery{}); err == nil {
		t.Fatal("expected error for missing site id")
	}
}
