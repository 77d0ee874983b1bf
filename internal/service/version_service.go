package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"

	"github.com/sirupsen/logrus"
)

// VersionStatus describes whether a newer build is available.
type VersionStatus struct {
	Current   string `json:"current"`
	Latest    string `json:"latest,omitempty"`
	UpdateDue bool   `json:"updateDue"`
	Applied   string `json:"applied,omitempty"` // last version marked as seen
}

// VersionService checks a remote version descriptor for updates. Network
// failures are swallowed; an update check must never break the tracker.
type VersionService interface {
	Status(ctx context.Context) VersionStatus
	MarkApplied(ctx context.Context, version string) error
}

type versionService struct {
	state      repository.StateRepository
	client     *http.Client
	descriptor string // URL of a {"version": "..."} JSON document
	current    string
}

// NewVersionService creates a new version service. An empty descriptor URL
// disables remote checks.
func NewVersionService(state repository.StateRepository, descriptorURL, currentVersion string) VersionService {
	return &versionService{
		state:      state,
		client:     &http.Client{Timeout: 5 * time.Second},
		descriptor: descriptorURL,
		current:    currentVersion,
	}
}

func (s *versionService) Status(ctx context.Context) VersionStatus {
	status := VersionStatus{
		Current: s.current,
		Applied: s.state.AppVersion(ctx),
	}
	latest, ok := s.fetchLatest(ctx)
	if !ok {
		return status
	}
	status.Latest = latest
	status.UpdateDue = latest != "" && latest != s.current
	return status
}

// MarkApplied records that the owner has seen and applied a version.
func (s *versionService) MarkApplied(ctx context.Context, version string) error {
	return s.state.SetAppVersion(ctx, version)
}

// fetchLatest pulls the remote descriptor. Any failure is logged at debug
// level and reported as not-ok.
func (s *versionService) fetchLatest(ctx context.Context) (string, bool) {
	if s.descriptor == "" {
		return "", false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.descriptor, nil)
	if err != nil {
		logrus.WithError(err).Debug("version check: bad descriptor URL")
		return "", false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).Debug("version check: fetch failed")
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Debug("version check: unexpected status")
		return "", false
	}
	var descriptor struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&descriptor); err != nil {
		logrus.WithError(err).Debug("version check: malformed descriptor")
		return "", false
	}
	return descriptor.Version, true
}
