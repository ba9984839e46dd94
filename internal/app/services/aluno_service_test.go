package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/crewboard/crewboard/internal/app/models"
	"github.com/crewboard/crewboard/internal/app/models/dto"
	"github.com/crewboard/crewboard/internal/app/repositories"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
)

// fakeAlunoStore is an in-memory AlunoStore mirroring the repository
// contract: sentinel errors, partial patches, newest-first listing.
type fakeAlunoStore struct {
	nextID int64
	alunos map[int64]*models.Aluno
}

func newFakeStore() *fakeAlunoStore {
	return &fakeAlunoStore{nextID: 1, alunos: map[int64]*models.Aluno{}}
}

// List mirrors the real store's paging: newest-first (descending id, since
// inserts are sequential) with an offset/limit window over the sorted set.
func (f *fakeAlunoStore) List(ctx context.Context, params repositories.ListParams) ([]models.Aluno, int64, error) {
	ids := make([]int64, 0, len(f.alunos))
	for id := range f.alunos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	total := int64(len(ids))

	if params.PageSize > 0 {
		offset := (params.Page - 1) * params.PageSize
		if offset < 0 {
			offset = 0
		}
		if offset >= len(ids) {
			ids = nil
		} else {
			end := offset + params.PageSize
			if end > len(ids) {
				end = len(ids)
			}
			ids = ids[offset:end]
		}
	}

	out := make([]models.Aluno, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.alunos[id])
	}
	return out, total, nil
}

func (f *fakeAlunoStore) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	a, ok := f.alunos[id]
	if !ok {
		return nil, apperrors.ErrAlunoNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAlunoStore) Insert(ctx context.Context, aluno *models.Aluno) (*models.Aluno, error) {
	copied := *aluno
	copied.ID = f.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.nextID++
	f.alunos[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeAlunoStore) Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Aluno, error) {
	a, ok := f.alunos[id]
	if !ok {
		return nil, apperrors.ErrAlunoNotFound
	}
	for col, value := range patch {
		switch col {
		case "nome":
			a.Nome = value.(string)
		case "email":
			a.Email = value.(string)
		case "turma":
			a.Turma = value.(string)
		case "situacao_financeira":
			a.SituacaoFinanceira = value.(string)
		case "tripulante":
			a.Tripulante = value.(bool)
		case "certificado":
			a.Certificado = value.(bool)
		case "salario":
			a.Salario = value.(float64)
		}
	}
	a.UpdatedAt = time.Now()
	copied := *a
	return &copied, nil
}

func (f *fakeAlunoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.alunos[id]; !ok {
		return apperrors.ErrAlunoNotFound
	}
	delete(f.alunos, id)
	return nil
}

func (f *fakeAlunoStore) Stats(ctx context.Context) (*models.AlunoStats, error) {
	stats := &models.AlunoStats{PorSituacaoFinanceira: map[string]int64{}}
	for _, a := range f.alunos {
		stats.Total++
		if a.Tripulante {
			stats.Tripulantes++
		}
		if a.Certificado {
			stats.Certificados++
		}
		stats.PorSituacaoFinanceira[a.SituacaoFinanceira]++
	}
	return stats, nil
}

func validCreate() *dto.CreateAlunoRequest {
	return &dto.CreateAlunoRequest{
		Nome:               "Ana Silva",
		Documento:          "12345678900",
		Email:              "ana.silva@example.com",
		Pais:               "Brasil",
		Telefone:           "+55 11 99999-0000",
		Turma:              "Turma 10",
		DataConfirmacao:    models.NewDate(2025, time.March, 15),
		SituacaoFinanceira: models.SituacaoEmDia,
		PeriodoAcesso:      "12 meses",
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created record should have an id")
	}

	fetched, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Nome != "Ana Silva" || fetched.Email != "ana.silva@example.com" {
		t.Errorf("round trip mismatch: %+v", fetched)
	}
	if fetched.SituacaoFinanceira != models.SituacaoEmDia {
		t.Errorf("situacao_financeira: got %q", fetched.SituacaoFinanceira)
	}
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	store := newFakeStore()
	svc := NewAlunoService(store)

	req := validCreate()
	req.Email = "broken"

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(store.alunos) != 0 {
		t.Error("invalid payload must not be persisted")
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newSituacao := models.SituacaoPendente
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateAlunoRequest{
		SituacaoFinanceira: &newSituacao,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.SituacaoFinanceira != models.SituacaoPendente {
		t.Errorf("situacao_financeira not updated: %q", updated.SituacaoFinanceira)
	}
	// Untouched fields keep their stored values
	if updated.Nome != created.Nome || updated.Email != created.Email || updated.Turma != created.Turma {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestUpdateCertificateRuleUsesMergedState(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	req := validCreate()
	req.Tripulante = true
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Stored tripulante=true, so granting the certificate alone is fine
	yes := true
	if _, err := svc.Update(ctx, created.ID, &dto.UpdateAlunoRequest{Certificado: &yes}); err != nil {
		t.Fatalf("certificado with stored tripulante should pass: %v", err)
	}

	// Revoking tripulante while certified must fail
	no := false
	_, err = svc.Update(ctx, created.ID, &dto.UpdateAlunoRequest{Tripulante: &no})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestNotFoundSymmetry(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, apperrors.ErrAlunoNotFound) {
		t.Errorf("get: expected not found, got %v", err)
	}

	nome := "x"
	if _, err := svc.Update(ctx, 999, &dto.UpdateAlunoRequest{Nome: &nome}); !errors.Is(err, apperrors.ErrAlunoNotFound) {
		t.Errorf("update: expected not found, got %v", err)
	}

	if err := svc.Delete(ctx, 999); !errors.Is(err, apperrors.ErrAlunoNotFound) {
		t.Errorf("delete: expected not found, got %v", err)
	}
}

func TestInvalidIDRejectedBeforeStore(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 0); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("get: expected invalid id, got %v", err)
	}
	if err := svc.Delete(ctx, -1); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("delete: expected invalid id, got %v", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, apperrors.ErrAlunoNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestListPagesCoverAllRecordsExactlyOnce(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	const records = 25
	const pageSize = 10
	for i := 0; i < records; i++ {
		req := validCreate()
		req.Email = fmt.Sprintf("aluno%02d@example.com", i)
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	seen := map[int64]bool{}
	var lastID int64
	page := 1
	for {
		alunos, total, err := svc.List(ctx, repositories.ListParams{Page: page, PageSize: pageSize})
		if err != nil {
			t.Fatalf("list page %d: %v", page, err)
		}
		if total != records {
			t.Fatalf("page %d: total = %d, want %d", page, total, records)
		}
		if len(alunos) == 0 {
			break
		}
		for _, a := range alunos {
			if seen[a.ID] {
				t.Fatalf("page %d repeats id %d", page, a.ID)
			}
			seen[a.ID] = true
			// Ordering is strict across page boundaries too
			if lastID != 0 && a.ID >= lastID {
				t.Fatalf("page %d breaks ordering: id %d after %d", page, a.ID, lastID)
			}
			lastID = a.ID
		}
		page++
	}

	if len(seen) != records {
		t.Errorf("pages covered %d distinct ids, want %d", len(seen), records)
	}
	if page != 4 {
		t.Errorf("walk ended on page %d, want 4 (3 full pages then empty)", page)
	}
}

func TestListPastLastPageIsEmpty(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreate()); err != nil {
		t.Fatalf("create: %v", err)
	}

	alunos, total, err := svc.List(ctx, repositories.ListParams{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alunos) != 0 {
		t.Errorf("page past the end should be empty, got %d rows", len(alunos))
	}
	if total != 1 {
		t.Errorf("total must still count every match, got %d", total)
	}
}

func TestStatsCountsFlags(t *testing.T) {
	svc := NewAlunoService(newFakeStore())
	ctx := context.Background()

	first := validCreate()
	first.Tripulante = true
	if _, err := svc.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := validCreate()
	second.Email = "bruno@example.com"
	second.SituacaoFinanceira = models.SituacaoAtrasado
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.Tripulantes != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.PorSituacaoFinanceira[models.SituacaoEmDia] != 1 ||
		stats.PorSituacaoFinanceira[models.SituacaoAtrasado] != 1 {
		t.Errorf("unexpected breakdown: %v", stats.PorSituacaoFinanceira)
	}
}
