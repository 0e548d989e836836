package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/visibility"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrReportFinalized = errors.New("report already actioned")
	ErrAlreadyBlocked  = errors.New("user already blocked")
	ErrSelfBlock       = errors.New("cannot block yourself")
)

var BannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "chink", "spic", "kike", "faggot", "fag",
	"retard", "retarded", "tranny",
	"porn", "porno", "nude", "nudes",
	"spam", "scam", "scammer", "phishing", "malware",
}

// ModerationService handles blocking, reporting and caption content
// filtering. It also owns the per-viewer in-memory blocklists that the
// visibility pipeline reads.
type ModerationService struct {
	db                *gorm.DB
	blocklists        *visibility.Blocklists
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
	emailPattern      *regexp.Regexp
	phonePattern      *regexp.Regexp
}

func NewModerationService(db *gorm.DB, blocklists *visibility.Blocklists) *ModerationService {
	ms := &ModerationService{db: db, blocklists: blocklists}
	ms.compilePatterns()
	return ms
}

func (ms *ModerationService) compilePatterns() {
	ms.bannedWordRegexps = make([]*regexp.Regexp, 0, len(BannedWords))
	for _, word := range BannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			ms.bannedWordRegexps = append(ms.bannedWordRegexps, re)
		}
	}

	ms.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	ms.emailPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	ms.phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
}

// FilterContent checks an update caption against the content rules. Returns
// false plus a machine-readable reason when the text is rejected.
func (ms *ModerationService) FilterContent(text string) (bool, string) {
	if text == "" {
		return true, ""
	}
	for _, re := range ms.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if ms.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if ms.emailPattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if ms.phonePattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	return true, ""
}

func (ms *ModerationService) GetRejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language":   "Your update contains inappropriate language.",
		"url_not_allowed":          "URLs and web links are not allowed.",
		"contact_info_not_allowed": "Contact information is not allowed.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your update does not meet our content guidelines."
}

func (s *ModerationService) CreateReport(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	validTypes := map[string]bool{
		models.ReportContentUpdate:        true,
		models.ReportContentProfile:       true,
		models.ReportContentShadowProfile: true,
		models.ReportContentUser:          true,
	}
	if !validTypes[req.ContentType] {
		return nil, errors.New("invalid content_type: must be update, profile, shadow_profile, or user")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, errors.New("reason is required")
	}

	report := models.Report{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ModerationService) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ActionReport moves a pending report to a terminal status. Transitions are
// one-way: a report that already left pending cannot be re-actioned.
func (s *ModerationService) ActionReport(reportID uuid.UUID, req *dto.ActionReportRequest) error {
	validStatuses := map[string]bool{
		models.ReportStatusReviewed:  true,
		models.ReportStatusResolved:  true,
		models.ReportStatusDismissed: true,
	}
	if !validStatuses[req.Status] {
		return errors.New("invalid status: must be reviewed, resolved, or dismissed")
	}

	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.ReportStatusPending).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"admin_note": req.AdminNote,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var existing models.Report
		if err := s.db.First(&existing, "id = ?", reportID).Error; err != nil {
			return ErrReportNotFound
		}
		return ErrReportFinalized
	}
	return nil
}

// BlockUser records the block in the viewer's in-memory blocklist first so
// the blocked account's content disappears from the very next read, then
// persists it. A failed persist leaves the optimistic entry in place:
// over-blocking on a transient error is the safe direction.
func (s *ModerationService) BlockUser(blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return ErrSelfBlock
	}

	s.blocklists.For(blockerID).Add(blockedID)

	var existing models.Block
	if err := s.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).First(&existing).Error; err == nil {
		return ErrAlreadyBlocked
	}

	block := models.Block{
		ID:        uuid.New(),
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	return s.db.Create(&block).Error
}

func (s *ModerationService) UnblockUser(blockerID, blockedID uuid.UUID) error {
	s.blocklists.For(blockerID).Remove(blockedID)

	return s.db.
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{}).Error
}

// GetBlockedIDs reads the persisted blocklist for a viewer.
func (s *ModerationService) GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := s.db.WithContext(ctx).Where("blocker_id = ?", userID).Find(&blocks).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.BlockedID
	}
	return ids, nil
}

// BlockedSet returns the viewer's current block set for the visibility
// pipeline, loading the in-memory store from Postgres on first use. A nil
// viewer (anonymous) blocks nothing.
func (s *ModerationService) BlockedSet(ctx context.Context, viewerID *uuid.UUID) visibility.BlockSet {
	if viewerID == nil {
		return nil
	}

	bl := s.blocklists.For(*viewerID)
	if !bl.Loaded() {
		bl.Load(ctx, func(ctx context.Context) ([]uuid.UUID, error) {
			return s.GetBlockedIDs(ctx, *viewerID)
		})
	}
	return bl.Snapshot()
}
