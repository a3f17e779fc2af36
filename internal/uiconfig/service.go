package uiconfig

import "github.com/wichananm65/citation-network-ui/internal/config"

// Service exposes the resolved config to the delivery layer.
type Service struct {
	cfg config.Config
}

func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// Current returns the payload for the config the process started with.
func (s *Service) Current() Payload {
	return Payload{
		BackendURL:  s.cfg.BackendURL,
		Environment: s.cfg.Environment,
	}
}
