// Package notify posts completion messages to a chat incoming webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type SlackClient struct {
	webhookURL string
	httpClient HTTPClient
}

var _ interfaces.Notifier = (*SlackClient)(nil)

func NewSlack(webhookURL string, httpClient HTTPClient) (*SlackClient, error) {
	if webhookURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "slack webhook URL is empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SlackClient{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}, nil
}

func (x *SlackClient) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal slack payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.webhookURL, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create slack request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to post slack notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.New("slack webhook returned non-OK status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
