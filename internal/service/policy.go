package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/internal/storage"
)

const documentURLExpiry = 15 * time.Minute

type PolicyServiceImpl struct {
	repo        repository.PolicyRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewPolicyService(repo repository.PolicyRepository, fileStorage storage.FileStorage, logger *zap.Logger) *PolicyServiceImpl {
	return &PolicyServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *PolicyServiceImpl) List(ctx context.Context) ([]domain.Policy, error) {
	policies, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка полисов", zap.Error(err))
		return nil, err
	}
	return policies, nil
}

func (s *PolicyServiceImpl) GetByID(ctx context.Context, id string) (*domain.Policy, error) {
	policy, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("полис не найден", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return policy, nil
}

func (s *PolicyServiceImpl) UploadDocument(ctx context.Context, policyID string, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("хранилище документов не настроено")
	}

	if _, err := s.repo.GetByID(ctx, policyID); err != nil {
		s.logger.Error("полис не найден при загрузке документа", zap.String("policyID", policyID), zap.Error(err))
		return "", err
	}

	url, err := s.fileStorage.UploadFile(ctx, data, fmt.Sprintf("%s/%s", policyID, filename))
	if err != nil {
		s.logger.Error("ошибка загрузки документа полиса", zap.String("policyID", policyID), zap.Error(err))
		return "", err
	}

	s.logger.Info("документ полиса загружен", zap.String("policyID", policyID), zap.String("url", url))
	return url, nil
}

func (s *PolicyServiceImpl) ListDocuments(ctx context.Context, policyID string) ([]domain.PolicyDocument, error) {
	if s.fileStorage == nil {
		return []domain.PolicyDocument{}, nil
	}

	if _, err := s.repo.GetByID(ctx, policyID); err != nil {
		s.logger.Error("полис не найден при запросе документов", zap.String("policyID", policyID), zap.Error(err))
		return nil, err
	}

	urls, err := s.fileStorage.ListFiles(ctx, fmt.Sprintf("documents/%s/", policyID))
	if err != nil {
		s.logger.Error("ошибка получения документов полиса", zap.String("policyID", policyID), zap.Error(err))
		return nil, err
	}

	documents := make([]domain.PolicyDocument, 0, len(urls))
	for _, url := range urls {
		name := path.Base(url)
		documents = append(documents, domain.PolicyDocument{
			ID:       strings.TrimSuffix(name, path.Ext(name)),
			PolicyID: policyID,
			Name:     name,
			URL:      url,
		})
	}

	return documents, nil
}

func (s *PolicyServiceImpl) GetDocumentURL(ctx context.Context, policyID, documentURL string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("хранилище документов не настроено")
	}

	if _, err := s.repo.GetByID(ctx, policyID); err != nil {
		s.logger.Error("полис не найден при запросе документа", zap.String("policyID", policyID), zap.Error(err))
		return "", err
	}

	url, err := s.fileStorage.GetPresignedURL(ctx, documentURL, documentURLExpiry)
	if err != nil {
		s.logger.Error("ошибка генерации ссылки на документ", zap.String("policyID", policyID), zap.Error(err))
		return "", err
	}

	return url, nil
}
