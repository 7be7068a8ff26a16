package infra

import (
	"net/http"

	"github.com/kagamino/repoforge/pkg/domain/interfaces"
)

type Clients struct {
	github       interfaces.GitHubClient
	httpClient   HTTPClient
	secretStores []interfaces.SecretStore
	notifier     interfaces.Notifier
	auditSinks   []interfaces.AuditSink
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) SecretStores() []interfaces.SecretStore {
	return x.secretStores
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) AuditSinks() []interfaces.AuditSink {
	return x.auditSinks
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithSecretStore(store interfaces.SecretStore) Option {
	return func(x *Clients) {
		x.secretStores = append(x.secretStores, store)
	}
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = notifier
	}
}

func WithAuditSink(sink interfaces.AuditSink) Option {
	return func(x *Clients) {
		x.auditSinks = append(x.auditSinks, sink)
	}
}
