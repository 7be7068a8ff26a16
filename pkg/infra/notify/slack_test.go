package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/kagamino/repoforge/pkg/infra/notify"
	"github.com/m-mizutani/gt"
)

type httpClientMock struct {
	requests []*http.Request
	bodies   []string
	status   int
}

func (x *httpClientMock) Do(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	x.requests = append(x.requests, req)
	x.bodies = append(x.bodies, string(body))

	status := x.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}, nil
}

func TestSlackNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("empty webhook URL fails", func(t *testing.T) {
		_, err := notify.NewSlack("", nil)
		gt.Error(t, err)
	})

	t.Run("posts text as JSON payload", func(t *testing.T) {
		httpMock := &httpClientMock{}
		client := gt.R1(notify.NewSlack("https://hooks.slack.example/T000/B000", httpMock)).NoError(t)

		gt.NoError(t, client.Notify(ctx, "Repo svc-x created in acme."))

		gt.V(t, len(httpMock.requests)).Equal(1)
		req := httpMock.requests[0]
		gt.V(t, req.Method).Equal(http.MethodPost)
		gt.V(t, req.URL.String()).Equal("https://hooks.slack.example/T000/B000")
		gt.V(t, req.Header.Get("Content-Type")).Equal("application/json")

		var payload map[string]string
		gt.NoError(t, json.Unmarshal([]byte(httpMock.bodies[0]), &payload))
		gt.V(t, payload["text"]).Equal("Repo svc-x created in acme.")
	})

	t.Run("non-OK status is an error", func(t *testing.T) {
		httpMock := &httpClientMock{status: http.StatusNotFound}
		client := gt.R1(notify.NewSlack("https://hooks.slack.example/T000/B000", httpMock)).NoError(t)

		gt.Error(t, client.Notify(ctx, "hello"))
	})
}
