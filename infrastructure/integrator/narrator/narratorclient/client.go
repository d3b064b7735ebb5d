package narratorclient

import (
	"net/http"
	"time"

	narratordomain "github.com/vfg2006/creator-pricing-api/infrastructure/integrator/narrator/domain"
	"github.com/vfg2006/creator-pricing-api/internal/config"
)

type Client interface {
	Complete(request narratordomain.NarrationRequest) (string, error)
}

type NarratorClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de narração.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Narrator.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &NarratorClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
