package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/model/dto"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

const profileKey = "ramadhan_profile"

// 资料字段的长度上限，photo 按 base64 字符串长度算
const (
	nameMinLen  = 2
	nameMaxLen  = 30
	bioMaxLen   = 100
	goalsMaxLen = 150
	photoMaxLen = 2 * 1024 * 1024
)

// ProfileService 管理单例用户资料和建档流程
type ProfileService struct {
	store   kv.Store
	indexer *tracker.Indexer
}

func NewProfileService(store kv.Store) *ProfileService {
	return &ProfileService{
		store:   store,
		indexer: tracker.NewIndexer(store),
	}
}

// Onboard 建档：校验姓名、写入资料并设定斋月起始日期。
// 起始日期只在未设置时写入，重复建档不会挪动窗口。
func (s *ProfileService) Onboard(ctx context.Context, req *dto.OnboardRequest) (*model.Profile, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{Name: name}
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}

	if _, ok := s.indexer.StartDate(ctx); !ok {
		if err := s.indexer.SetStartDate(ctx, config.Cfg.RamadhanStartDate); err != nil {
			return nil, err
		}
	}

	logger.Logger.Info("Profile onboarded", zap.String("name", name))
	return profile, nil
}

// Get 返回资料，未建档时返回 ProfileNotFound
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	raw, ok, err := s.store.Get(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ProfileNotFound
	}

	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, errors.ProfileNotFound
	}
	return &profile, nil
}

// Update 部分更新资料，nil 字段保持不变
func (s *ProfileService) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*model.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		profile.Name = name
	}
	if req.Bio != nil {
		bio := utils.SanitizeName(*req.Bio)
		if len([]rune(bio)) > bioMaxLen {
			bio = string([]rune(bio)[:bioMaxLen])
		}
		profile.Bio = bio
	}
	if req.Goals != nil {
		goals := utils.SanitizeName(*req.Goals)
		if len([]rune(goals)) > goalsMaxLen {
			goals = string([]rune(goals)[:goalsMaxLen])
		}
		profile.Goals = goals
	}
	if req.Photo != nil {
		if len(*req.Photo) > photoMaxLen {
			return nil, errors.PhotoTooLarge
		}
		profile.Photo = *req.Photo
	}

	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemovePhoto 删除头像，其余字段不变
func (s *ProfileService) RemovePhoto(ctx context.Context) (*model.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile.Photo = ""
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) save(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.store.Set(ctx, profileKey, string(data))
}

// validateName 清洗并校验姓名，长度按字符数而不是字节数算
func validateName(raw string) (string, error) {
	name := utils.SanitizeName(raw)
	length := len([]rune(name))
	if length < nameMinLen {
		return "", errors.NameTooShort
	}
	if length > nameMaxLen {
		return "", errors.NameTooLong
	}
	return name, nil
}
