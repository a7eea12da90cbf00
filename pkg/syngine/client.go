package syngine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quakemetrics/groundmotion/internal/logging"
	"github.com/quakemetrics/groundmotion/pkg/ground/recordings"
	"github.com/quakemetrics/groundmotion/pkg/ground/units"
)

// DefaultEndpoint is the public IRIS Synthetics Engine query endpoint
const DefaultEndpoint = "http://service.iris.edu/irisws/syngine/1/query"

// ClientConfig contains configuration for the synthetics client
type ClientConfig struct {
	Endpoint     string
	DefaultModel string
	Timeout      time.Duration
	UserAgent    string
	Logger       logging.Logger
}

// Client retrieves synthetic recordings from the remote computation service.
// It performs a single request per call; retry policy belongs to the caller.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	defaultModel string
	userAgent    string
	logger       logging.Logger
}

// NewClient creates a synthetics client
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	model := config.DefaultModel
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		endpoint:     endpoint,
		defaultModel: model,
		userAgent:    config.UserAgent,
		logger: logger.WithFields(logging.Fields{
			"component": "syngine_client",
			"endpoint":  endpoint,
		}),
	}
}

// RecordingURL builds the query URL for a request, applying the client's
// default model when the request names none.
func (c *Client) RecordingURL(req *Request) (string, error) {
	if req.Model == "" && c.defaultModel != "" {
		withModel := *req
		withModel.Model = c.defaultModel
		return BuildURL(c.endpoint, &withModel)
	}
	return BuildURL(c.endpoint, req)
}

// Fetch retrieves one synthetic recording. The response traces are decoded
// into component seismograms carrying the stream's sample interval and the
// canonical unit of the requested ground-motion type.
func (c *Client) Fetch(ctx context.Context, req *Request) (*recordings.Recording, error) {
	queryURL, err := c.RecordingURL(req)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetching synthetic recording", logging.Fields{
		"url":        queryURL,
		"gmt":        req.GMT.String(),
		"components": string(req.Components),
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, NewServiceError(ErrCodeRequestFailed, queryURL, "building HTTP request failed", err)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, NewServiceError(ErrCodeRequestFailed, queryURL, "synthetics request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewServiceError(ErrCodeBadStatus, queryURL, fmt.Sprintf(
			"synthetics service returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewServiceError(ErrCodeRequestFailed, queryURL, "reading response body failed", err)
	}

	c.logger.Debug("Synthetic recording downloaded", logging.Fields{
		"bytes":       len(body),
		"download_ms": time.Since(start).Milliseconds(),
	})

	return DecodeRecording(body, req.GMT)
}

// DecodeRecording parses a miniSEED byte stream into a recording whose
// seismograms carry the canonical unit of the given ground-motion type.
func DecodeRecording(data []byte, gmt units.Kind) (*recordings.Recording, error) {
	traces, err := decodeTraces(data)
	if err != nil {
		return nil, err
	}

	components := make(map[string]*recordings.Seismogram, len(traces))
	for _, t := range traces {
		if t.sampleRate <= 0 {
			return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
				"channel %s carries no sample rate", t.channel), nil)
		}
		s, err := recordings.NewSeismogram(1/t.sampleRate, t.samples, gmt.CanonicalUnit())
		if err != nil {
			return nil, NewServiceError(ErrCodeDecodeFailed, "", fmt.Sprintf(
				"building seismogram for channel %s failed", t.channel), err)
		}
		components[t.componentCode()] = s
	}

	rec, err := recordings.NewRecording(components)
	if err != nil {
		return nil, NewServiceError(ErrCodeDecodeFailed, "",
			"decoded traces do not form a valid recording", err)
	}
	return rec, nil
}
