package api

import (
	"FinPlanSaas/internal/config"
	"FinPlanSaas/internal/serviceiface"
)

type GatewayService struct {
	config map[string]interface{}
}

func NewGatewayService(cfg map[string]interface{}) serviceiface.Service {
	return &GatewayService{config: cfg}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	go StartGateway(s.port(), s.calcTargets())
	return nil
}

func (s *GatewayService) Stop() error {
	// Implement stop logic if needed
	return nil
}

func (s *GatewayService) port() int {
	if s.config == nil {
		return config.DefaultGatewayPort
	}
	switch v := s.config["port"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return config.DefaultGatewayPort
}

func (s *GatewayService) calcTargets() []string {
	if s.config == nil {
		return nil
	}
	raw, ok := s.config["calc_targets"].([]interface{})
	if !ok {
		return nil
	}
	targets := make([]string, 0, len(raw))
	for _, t := range raw {
		if str, ok := t.(string); ok {
			targets = append(targets, str)
		}
	}
	return targets
}
