package services

import (
	"context"

	"github.com/crewboard/crewboard/internal/app/models"
	"github.com/crewboard/crewboard/internal/app/models/dto"
	"github.com/crewboard/crewboard/internal/app/repositories"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
	"github.com/crewboard/crewboard/internal/pkg/logger"
	"github.com/crewboard/crewboard/internal/pkg/validation"
)

// AlunoStore is what the service needs from the persistence layer. Declared
// here, on the consumer side, so tests can swap in an in-memory fake.
type AlunoStore interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Aluno, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Aluno, error)
	Insert(ctx context.Context, aluno *models.Aluno) (*models.Aluno, error)
	Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Aluno, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.AlunoStats, error)
}

// AlunoService defines the aluno business operations.
type AlunoService interface {
	List(ctx context.Context, params repositories.ListParams) ([]models.Aluno, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Aluno, error)
	Create(ctx context.Context, req *dto.CreateAlunoRequest) (*models.Aluno, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAlunoRequest) (*models.Aluno, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.AlunoStats, error)
}

type alunoService struct {
	store AlunoStore
}

// NewAlunoService creates a new AlunoService.
func NewAlunoService(store AlunoStore) AlunoService {
	return &alunoService{store: store}
}

// List returns one page of alunos plus the total match count.
func (s *alunoService) List(ctx context.Context, params repositories.ListParams) ([]models.Aluno, int64, error) {
	return s.store.List(ctx, params)
}

// GetByID retrieves one aluno.
func (s *alunoService) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

// Create validates the payload and persists a new aluno.
func (s *alunoService) Create(ctx context.Context, req *dto.CreateAlunoRequest) (*models.Aluno, error) {
	if err := validation.ValidateCreate(req); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("alunoID", created.ID).Str("nome", created.Nome).Msg("Aluno registered")
	return created, nil
}

// Update applies a partial update. The stored record is fetched first, both
// for the not-found check and to evaluate the certificate rule against the
// merged state rather than the payload alone.
func (s *alunoService) Update(ctx context.Context, id int64, req *dto.UpdateAlunoRequest) (*models.Aluno, error) {
	if id <= 0 {
		return nil, apperrors.ErrInvalidID
	}
	if err := validation.ValidateUpdate(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tripulante := existing.Tripulante
	if req.Tripulante != nil {
		tripulante = *req.Tripulante
	}
	certificado := existing.Certificado
	if req.Certificado != nil {
		certificado = *req.Certificado
	}
	if certificado && !tripulante {
		verr := apperrors.NewValidationError()
		verr.Add("certificado", "aluno não pode ter certificado se não for tripulante")
		return nil, verr
	}

	// An empty patch still goes through: updated_at is refreshed either way.
	return s.store.Update(ctx, id, req.Patch())
}

// Delete removes an aluno permanently.
func (s *alunoService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}

// Stats returns the dashboard aggregates.
func (s *alunoService) Stats(ctx context.Context) (*models.AlunoStats, error) {
	return s.store.Stats(ctx)
}
