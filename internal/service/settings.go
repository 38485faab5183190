package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

const (
	darkModeKey     = "ramadhan_dark"
	globalNoteKey   = "ramadhan_global_note"
	cityKey         = "ramadhan_city"
	locationModeKey = "ramadhan_location_mode"

	noteMaxLen = 2000

	// 全量重置的确认短语，必须逐字匹配
	resetPhrase = "RESET"
)

// SettingsService 管理界面偏好、全局笔记和全量重置
type SettingsService struct {
	store kv.Store
}

func NewSettingsService(store kv.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get 返回当前设置，缺失的条目取默认值
func (s *SettingsService) Get(ctx context.Context) (*dto.SettingsData, error) {
	settings := &dto.SettingsData{LocationMode: "auto"}

	if raw, ok, err := s.store.Get(ctx, darkModeKey); err == nil && ok {
		settings.DarkMode = raw == "1"
	}
	if raw, ok, err := s.store.Get(ctx, locationModeKey); err == nil && ok && raw != "" {
		settings.LocationMode = raw
	}
	if raw, ok, err := s.store.Get(ctx, cityKey); err == nil && ok {
		settings.City = raw
	}
	return settings, nil
}

// Update 部分更新设置，nil 字段保持不变
func (s *SettingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsData, error) {
	if req.DarkMode != nil {
		value := "0"
		if *req.DarkMode {
			value = "1"
		}
		if err := s.store.Set(ctx, darkModeKey, value); err != nil {
			return nil, err
		}
	}

	if req.LocationMode != nil {
		mode := strings.TrimSpace(*req.LocationMode)
		if mode != "auto" && mode != "manual" {
			return nil, errors.InvalidLocation
		}
		if err := s.store.Set(ctx, locationModeKey, mode); err != nil {
			return nil, err
		}
	}

	if req.City != nil {
		city := utils.SanitizeName(*req.City)
		if city == "" {
			if err := s.store.Remove(ctx, cityKey); err != nil {
				return nil, err
			}
		} else if err := s.store.Set(ctx, cityKey, city); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx)
}

// Note 返回全局笔记，缺失时为空串
func (s *SettingsService) Note(ctx context.Context) (*dto.NoteData, error) {
	raw, _, err := s.store.Get(ctx, globalNoteKey)
	if err != nil {
		return nil, err
	}
	return &dto.NoteData{Text: raw}, nil
}

// UpdateNote 覆盖写入全局笔记，空文本等价于删除
func (s *SettingsService) UpdateNote(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteData, error) {
	if len([]rune(req.Text)) > noteMaxLen {
		return nil, errors.NoteTooLong
	}

	if req.Text == "" {
		if err := s.store.Remove(ctx, globalNoteKey); err != nil {
			return nil, err
		}
	} else if err := s.store.Set(ctx, globalNoteKey, req.Text); err != nil {
		return nil, err
	}
	return &dto.NoteData{Text: req.Text}, nil
}

// Reset 清空全部数据，确认短语不匹配时拒绝
func (s *SettingsService) Reset(ctx context.Context, req *dto.ResetRequest) error {
	if req.Confirmation != resetPhrase {
		return errors.ResetPhraseMismatch
	}

	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	logger.Logger.Info("All data has been reset", zap.String("phrase", resetPhrase))
	return nil
}
