package actuation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrActivationFailed = errors.New("actuation request failed")

// Client activates a single hardware channel. The call exists for its side
// effect on the physical device — response bodies carry nothing useful.
type Client interface {
	Activate(ctx context.Context, channel int) error
}

// MotorClient talks to the dispensing controller's HTTP interface
// (GET {base}/run?motor=N).
type MotorClient struct {
	baseURL string
	http    *http.Client
}

func NewMotorClient(baseURL string) *MotorClient {
	return &MotorClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MotorClient) Activate(ctx context.Context, channel int) error {
	url := fmt.Sprintf("%s/run?motor=%d", m.baseURL, channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrActivationFailed, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the body itself is ignored.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: controller returned %d", ErrActivationFailed, resp.StatusCode)
	}

	return nil
}
