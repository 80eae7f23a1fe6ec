package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/benchguard/slope-engine/internal/models"
	"github.com/benchguard/slope-engine/internal/utils"
)

// GatewayClient pulls instrumentation readings from the site telemetry
// gateway. Readings that fail validation are skipped and counted rather
// than failing the whole batch; the caller decides how loudly to complain.
type GatewayClient struct {
	baseURL      string
	readingsPath string
	authToken    string
	httpClient   *http.Client
}

// NewGatewayClient constructs a client targeting the configured gateway instance.
func NewGatewayClient(baseURL, readingsPath, authToken string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		readingsPath: readingsPath,
		authToken:    authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchReadings queries the gateway for readings in the window. It returns
// the readings that passed validation plus the count of malformed ones it
// dropped. An empty batch is not an error: a quiet window is normal between
// gateway ingest cycles.
func (c *GatewayClient) FetchReadings(ctx context.Context, q models.ReadingsQuery) ([]models.SensorReading, int, error) {
	if c == nil {
		return nil, 0, fmt.Errorf("readings gateway client not initialised")
	}
	if c.baseURL == "" {
		return nil, 0, fmt.Errorf("readings gateway base URL not configured")
	}
	if q.SiteID == "" {
		return nil, 0, fmt.Errorf("readings query needs a site id")
	}

	payload := map[string]interface{}{
		"site_id": q.SiteID,
		"start":   q.Start.Format(time.RFC3339),
		"end":     q.End.Format(time.RFC3339),
		"limit":   q.Limit,
	}

	var response struct {
		Readings []struct {
			SiteID   string    `json:"site_id"`
			At       time.Time `json:"at"`
			Waveform struct {
				Samples      []float64 `json:"samples"`
				SampleRateHz float64   `json:"sample_rate_hz"`
			} `json:"waveform"`
			PorePressureKPa float64 `json:"pore_pressure_kpa"`
			DisplacementMM  float64 `json:"displacement_mm"`
			RateMMPerHour   float64 `json:"rate_mm_h"`
			Geometry        *struct {
				SlopeAngleDeg  float64 `json:"slope_angle_deg"`
				UnitWeightKNM3 float64 `json:"unit_weight_kn_m3"`
				FailureDepthM  float64 `json:"failure_depth_m"`
			} `json:"geometry"`
		} `json:"readings"`
	}

	if err := c.postJSON(ctx, c.readingsURL(), payload, &response); err != nil {
		return nil, 0, utils.NewAppError("gateway query", "site "+q.SiteID, err)
	}

	readings := make([]models.SensorReading, 0, len(response.Readings))
	skipped := 0
	for _, wire := range response.Readings {
		reading := models.SensorReading{
			SiteID: firstNonEmpty(wire.SiteID, q.SiteID),
			At:     wire.At,
			Waveform: models.Waveform{
				Samples:      wire.Waveform.Samples,
				SampleRateHz: wire.Waveform.SampleRateHz,
			},
			PorePressureKPa: wire.PorePressureKPa,
			DisplacementMM:  wire.DisplacementMM,
			RateMMPerHour:   wire.RateMMPerHour,
		}
		if wire.Geometry != nil {
			reading.Geometry = &models.SlopeGeometry{
				SlopeAngleDeg:  wire.Geometry.SlopeAngleDeg,
				UnitWeightKNM3: wire.Geometry.UnitWeightKNM3,
				FailureDepthM:  wire.Geometry.FailureDepthM,
			}
		}
		if err := reading.Validate(); err != nil {
			skipped++
			continue
		}
		readings = append(readings, reading)
	}
	return readings, skipped, nil
}

func (c *GatewayClient) readingsURL() string { return c.resolvePath(c.readingsPath) }

func (c *GatewayClient) resolvePath(p string) string {
	if c.baseURL == "" {
		return ""
	}
	cleaned := "/" + strings.TrimLeft(p, "/")
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + cleaned
	}
	u.Path = path.Join(u.Path, cleaned)
	return u.String()
}

func (c *GatewayClient) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	if endpoint == "" {
		return fmt.Errorf("empty endpoint")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("readings gateway returned %s", resp.Status)
	}

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
