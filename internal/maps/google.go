package maps

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GoogleClient calls Google Fleet Routing, Directions and Geocoding with an
// API key
type GoogleClient struct {
	apiKey   string
	fleetURL string
	mapsURL  string
	timeout  time.Duration
}

func NewGoogleClient(apiKey, fleetURL, mapsURL string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:   apiKey,
		fleetURL: strings.TrimRight(fleetURL, "/"),
		mapsURL:  strings.TrimRight(mapsURL, "/"),
		timeout:  timeout,
	}
}

func (c *GoogleClient) OptimizeRoutes(ctx context.Context, req *OptimizeRequest) (*OptimizeResult, error) {
	q := url.Values{"key": {c.apiKey}}
	agent := fiber.Post(c.fleetURL + "/optimizeRoutes?" + q.Encode()).JSON(req)

	var out OptimizeResult
	if err := c.do(ctx, "optimizeRoutes", agent, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *GoogleClient) Directions(ctx context.Context, req *DirectionsRequest) (*DirectionsResult, error) {
	q := url.Values{
		"origin":      {req.Origin.String()},
		"destination": {req.Destination.String()},
		"mode":        {req.Mode},
		"key":         {c.apiKey},
	}
	if len(req.Waypoints) > 0 {
		points := make([]string, len(req.Waypoints))
		for i, wp := range req.Waypoints {
			points[i] = wp.String()
		}
		q.Set("waypoints", strings.Join(points, "|"))
	}

	var raw struct {
		Routes json.RawMessage `json:"routes"`
		Status string          `json:"status"`
	}
	if err := c.do(ctx, "directions", fiber.Get(c.mapsURL+"/directions/json?"+q.Encode()), &raw); err != nil {
		return nil, err
	}

	out := &DirectionsResult{Routes: raw.Routes, Status: raw.Status}
	out.TotalDistance, out.TotalDuration = sumFirstRoute(raw.Routes)
	return out, nil
}

func (c *GoogleClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	q := url.Values{"address": {address}, "key": {c.apiKey}}
	return c.geocode(ctx, "geocode", q)
}

func (c *GoogleClient) ReverseGeocode(ctx context.Context, at LatLng) (*GeocodeResult, error) {
	q := url.Values{"latlng": {at.String()}, "key": {c.apiKey}}
	return c.geocode(ctx, "reverseGeocode", q)
}

func (c *GoogleClient) geocode(ctx context.Context, op string, q url.Values) (*GeocodeResult, error) {
	var out GeocodeResult
	if err := c.do(ctx, op, fiber.Get(c.mapsURL+"/geocode/json?"+q.Encode()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends the request and decodes a 2xx body into out. The agent is released
// by Bytes.
func (c *GoogleClient) do(ctx context.Context, op string, agent *fiber.Agent, out interface{}) error {
	if timeout := c.effectiveTimeout(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		zap.L().Error("upstream request failed", zap.String("op", op), zap.Error(err))
		return &UpstreamError{Op: op, Details: err.Error()}
	}

	if code < 200 || code > 299 {
		zap.L().Error("upstream rejected request", zap.String("op", op), zap.Int("status", code), zap.ByteString("body", body))
		return &UpstreamError{Op: op, Status: code, Details: payload(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Op: op, Status: code, Details: "invalid upstream response: " + err.Error()}
	}
	return nil
}

func (c *GoogleClient) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}

// payload keeps JSON bodies as JSON so they are relayed unmodified
func payload(body []byte) interface{} {
	if json.Valid(body) {
		return json.RawMessage(append([]byte(nil), body...))
	}
	return string(body)
}

// sumFirstRoute adds up leg distance and duration of the first route
func sumFirstRoute(routes json.RawMessage) (distance, duration float64) {
	var parsed []struct {
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	}
	if len(routes) == 0 || json.Unmarshal(routes, &parsed) != nil || len(parsed) == 0 {
		return 0, 0
	}
	for _, leg := range parsed[0].Legs {
		distance += leg.Distance.Value
		duration += leg.Duration.Value
	}
	return distance, duration
}
