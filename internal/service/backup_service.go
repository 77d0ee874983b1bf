package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/storage"
)

// --- Error Definitions ---
var (
	ErrImportInvalid      = errors.New("import document is malformed")
	ErrOffsiteUnavailable = errors.New("offsite backup storage is not configured")
)

// BackupService exports and restores the full tracker state as one
// versioned JSON document.
type BackupService interface {
	Export(ctx context.Context) (domain.BackupDocument, error)
	Import(ctx context.Context, raw []byte) error
	UploadOffsite(ctx context.Context) (objectKey string, err error)
}

type backupService struct {
	profiles   repository.ProfileRepository
	routines   repository.RoutineRepository
	lifts      repository.LiftRepository
	bodyweight repository.BodyweightRepository
	attendance repository.AttendanceRepository
	protein    repository.ProteinRepository
	state      repository.StateRepository
	offsite    storage.BackupStorage // nil when offsite backup is disabled
}

// NewBackupService creates a new backup service. Pass a nil offsite storage
// to disable the S3 path.
func NewBackupService(
	profiles repository.ProfileRepository,
	routines repository.RoutineRepository,
	lifts repository.LiftRepository,
	bodyweight repository.BodyweightRepository,
	attendance repository.AttendanceRepository,
	protein repository.ProteinRepository,
	state repository.StateRepository,
	offsite storage.BackupStorage,
) BackupService {
	return &backupService{
		profiles:   profiles,
		routines:   routines,
		lifts:      lifts,
		bodyweight: bodyweight,
		attendance: attendance,
		protein:    protein,
		state:      state,
		offsite:    offsite,
	}
}

// Export gathers every store into one document and stamps the last-backup
// timestamp. Empty collections are coerced to non-nil so the document always
// round-trips through Import's shape validation.
func (s *backupService) Export(ctx context.Context) (domain.BackupDocument, error) {
	exportedAt := time.Now().Format(time.RFC3339)
	doc := domain.BackupDocument{
		V:               domain.BackupVersion,
		ExportedAt:      exportedAt,
		Profile:         s.profiles.Get(ctx),
		BwLogs:          s.bodyweight.All(ctx),
		Attendance:      s.attendance.All(ctx),
		ProteinMap:      s.protein.Map(ctx),
		Lifts:           s.lifts.All(ctx),
		Routines:        s.routines.All(ctx),
		ActiveRoutineID: s.routines.ActiveID(ctx),
		LastBackup:      exportedAt,
		ActiveScreen:    s.state.ActiveScreen(ctx),
	}
	if doc.BwLogs == nil {
		doc.BwLogs = []domain.BodyweightEntry{}
	}
	if doc.Attendance == nil {
		doc.Attendance = []string{}
	}
	if doc.ProteinMap == nil {
		doc.ProteinMap = map[string]domain.ProteinDay{}
	}
	if doc.Lifts == nil {
		doc.Lifts = []domain.LiftEntry{}
	}
	if doc.Routines == nil {
		doc.Routines = []domain.Routine{}
	}
	if err := s.state.SetLastBackup(ctx, exportedAt); err != nil {
		return domain.BackupDocument{}, err
	}
	return doc, nil
}

// rawBackupDocument defers field decoding so shapes can be validated before
// any store is touched.
type rawBackupDocument struct {
	V          json.RawMessage `json:"v"`
	Profile    json.RawMessage `json:"profile"`
	BwLogs     json.RawMessage `json:"bwLogs"`
	Attendance json.RawMessage `json:"attendance"`
	ProteinMap json.RawMessage `json:"proteinMap"`
	Lifts      json.RawMessage `json:"lifts"`
	Routines   json.RawMessage `json:"routines"`
}

// Import validates the document shape up front and then replaces every
// store: all-or-nothing, nothing is written when validation fails.
func (s *backupService) Import(ctx context.Context, raw []byte) error {
	var shape rawBackupDocument
	if err := json.Unmarshal(raw, &shape); err != nil {
		return fmt.Errorf("%w: %v", ErrImportInvalid, err)
	}
	for name, field := range map[string]json.RawMessage{
		"bwLogs":     shape.BwLogs,
		"attendance": shape.Attendance,
		"lifts":      shape.Lifts,
		"routines":   shape.Routines,
	} {
		if !startsWith(field, '[') {
			return fmt.Errorf("%w: %s must be a list", ErrImportInvalid, name)
		}
	}
	if !startsWith(shape.ProteinMap, '{') {
		return fmt.Errorf("%w: proteinMap must be a mapping", ErrImportInvalid)
	}

	var doc domain.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrImportInvalid, err)
	}

	if err := s.profiles.Save(ctx, doc.Profile); err != nil {
		return err
	}
	if err := s.routines.SaveAll(ctx, doc.Routines); err != nil {
		return err
	}
	if err := s.routines.SetActiveID(ctx, doc.ActiveRoutineID); err != nil {
		return err
	}
	if err := s.lifts.SaveAll(ctx, doc.Lifts); err != nil {
		return err
	}
	if err := s.bodyweight.SaveAll(ctx, doc.BwLogs); err != nil {
		return err
	}
	if err := s.attendance.SaveAll(ctx, doc.Attendance); err != nil {
		return err
	}
	if err := s.protein.SaveMap(ctx, doc.ProteinMap); err != nil {
		return err
	}
	if doc.LastBackup != "" {
		if err := s.state.SetLastBackup(ctx, doc.LastBackup); err != nil {
			return err
		}
	}
	if doc.ActiveScreen != "" {
		if err := s.state.SetActiveScreen(ctx, doc.ActiveScreen); err != nil {
			return err
		}
	}
	return nil
}

// UploadOffsite exports and ships the document to the configured bucket.
func (s *backupService) UploadOffsite(ctx context.Context) (string, error) {
	if s.offsite == nil {
		return "", ErrOffsiteUnavailable
	}
	doc, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("backups/gym-dashboard-%s.json", time.Now().Format("2006-01-02T15-04-05"))
	if err := s.offsite.PutBackup(ctx, key, body); err != nil {
		return "", err
	}
	return key, nil
}

// startsWith reports whether the raw JSON value's first non-space byte is c.
func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == c
}
