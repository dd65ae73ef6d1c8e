package calc

import (
	"FinPlanSaas/internal/config"
	"FinPlanSaas/internal/serviceiface"
)

type CalcService struct {
	config map[string]interface{}
}

func NewCalcService(cfg map[string]interface{}) serviceiface.Service {
	return &CalcService{config: cfg}
}

func (s *CalcService) Name() string {
	return "calc"
}

func (s *CalcService) Start() error {
	go StartCalcService(s.port())
	return nil
}

func (s *CalcService) Stop() error {
	// Implement stop logic if needed
	return nil
}

func (s *CalcService) port() int {
	if s.config == nil {
		return config.DefaultCalcPort
	}
	switch v := s.config["port"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return config.DefaultCalcPort
}
