package kestrel

import (
	"fmt"
	"sync"

	"github.com/kestrelvision/kestreld/internal/config"
	"github.com/kestrelvision/kestreld/pkg/frameprovider"
	"github.com/kestrelvision/kestreld/pkg/log"
	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
)

// Server builds the frame providers described by configuration and
// owns their lifecycle.
type Server interface {
	LoadConfiguration() error
	Build() []error
	Providers() []frameprovider.Provider
	Shutdown() chan interface{}
}

func NewServer(resolver config.Resolver, backend videobackend.Backend) Server {
	return &server{resolver: resolver, backend: backend}
}

// Provider with the teardown the concrete source types carry on top
// of the capability contract.
type closableProvider interface {
	frameprovider.Provider
	Close()
}

type server struct {
	shutdownDone chan interface{}
	resolver     config.Resolver
	backend      videobackend.Backend
	config       config.Values
	mu           sync.Mutex
	providers    []closableProvider
}

func (s *server) LoadConfiguration() error {
	values, err := s.resolver.Resolve()
	if err != nil {
		return err
	}

	s.config = values
	return nil
}

// Build constructs a provider per enabled configured source. Sources
// which fail construction are reported and skipped, they never
// produce a half-built provider.
func (s *server) Build() []error {
	s.shutdownDone = make(chan interface{})
	var errs []error

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, src := range s.config.Sources {
		if src.Disabled {
			log.Warn("Source [%s] is disabled... skipping...", src.Title)
			continue
		}

		provider, err := buildProvider(src, s.backend)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		log.Info("Built frame provider [%s] for source [%s]", provider.Name(), src.Title)
		s.providers = append(s.providers, provider)
	}
	return errs
}

func buildProvider(src config.Source, backend videobackend.Backend) (closableProvider, error) {
	var orientation *videoframe.Orientation
	if src.PitchDegrees != nil {
		orientation = &videoframe.Orientation{PitchDegrees: *src.PitchDegrees}
	}

	if src.Synthetic {
		provider, err := frameprovider.NewSynthetic(frameprovider.SyntheticSettings{
			Label:       src.Title,
			FOV:         src.FOV,
			MaxFPS:      src.MaxFPS,
			Orientation: orientation,
			Backend:     backend,
		})
		if err != nil {
			return nil, fmt.Errorf("unable to build synthetic provider for source [%s]: %w", src.Title, err)
		}
		return provider, nil
	}

	provider, err := frameprovider.NewFile(src.Path, frameprovider.FileSettings{
		FOV:         src.FOV,
		MaxFPS:      src.MaxFPS,
		Orientation: orientation,
		Backend:     backend,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to build file provider for source [%s]: %w", src.Title, err)
	}
	return provider, nil
}

func (s *server) Providers() []frameprovider.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	providers := make([]frameprovider.Provider, 0, len(s.providers))
	for _, p := range s.providers {
		providers = append(providers, p)
	}
	return providers
}

func (s *server) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdownDone == nil {
		s.shutdownDone = make(chan interface{})
	}
	for _, p := range s.providers {
		log.Warn("Closing frame provider: [%s]...", p.Name())
		p.Close()
	}
	s.providers = nil
	close(s.shutdownDone)
}

func (s *server) Shutdown() chan interface{} {
	s.shutdown()
	return s.shutdownDone
}
