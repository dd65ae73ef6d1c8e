package loadbalancer

import (
	"net/http"
	"sync"
)

// LoadBalancer rotates requests across calculator instances round-robin.
type LoadBalancer struct {
	targets []string
	mu      sync.Mutex
	current int
}

func NewLoadBalancer(targets []string) *LoadBalancer {
	return &LoadBalancer{
		targets: targets,
		current: 0,
	}
}

// NextTarget returns the base URL of the next instance in rotation.
func (lb *LoadBalancer) NextTarget() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	target := lb.targets[lb.current]
	lb.current = (lb.current + 1) % len(lb.targets)
	return target
}

// ServeHTTP redirects the caller to the next instance directly.
func (lb *LoadBalancer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := lb.NextTarget()
	http.Redirect(w, r, target+r.RequestURI, http.StatusTemporaryRedirect)
}
