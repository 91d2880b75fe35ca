package service

import (
	"errors"
	"fmt"
	"log"
)

// Hub starts services in registration order and stops them in reverse
// A failed Start is reported but does not prevent the remaining services from starting
type Hub struct {
	services []Service
	running  map[string]bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{running: make(map[string]bool)}
}

// Register adds a service; names must be unique
func (h *Hub) Register(s Service) error {
	for _, existing := range h.services {
		if existing.Name() == s.Name() {
			return fmt.Errorf("service %q already registered", s.Name())
		}
	}
	h.services = append(h.services, s)
	return nil
}

// StartAll starts every registered service, joining the failures
func (h *Hub) StartAll() error {
	var errs []error
	for _, s := range h.services {
		if h.running[s.Name()] {
			continue
		}
		if err := s.Start(); err != nil {
			log.Printf("service %s: start failed: %v", s.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		h.running[s.Name()] = true
	}
	return errors.Join(errs...)
}

// StopAll stops running services in reverse registration order
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.services) - 1; i >= 0; i-- {
		s := h.services[i]
		if !h.running[s.Name()] {
			continue
		}
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
		delete(h.running, s.Name())
	}
	return errors.Join(errs...)
}

// Running reports whether the named service started successfully
func (h *Hub) Running(name string) bool {
	return h.running[name]
}
