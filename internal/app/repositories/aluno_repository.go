package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewboard/crewboard/internal/app/models"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
	"github.com/crewboard/crewboard/internal/pkg/dberrors"
	"github.com/crewboard/crewboard/internal/pkg/logger"
)

// AlunoRepository handles aluno database operations.
type AlunoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlunoRepository creates a new AlunoRepository.
func NewAlunoRepository(db *pgxpool.Pool) *AlunoRepository {
	return &AlunoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List runs the paginated list query: one count over the full predicate,
// then one page of rows ordered by created_at DESC with id DESC as a
// stable tiebreak so consecutive pages never skip or repeat a row.
//
// Read paths degrade gracefully: if the store is unreachable or the table
// does not exist yet, the caller gets an empty result and the failure only
// reaches the logs. Other failures propagate.
func (r *AlunoRepository) List(ctx context.Context, params ListParams) ([]models.Aluno, int64, error) {
	conditions := buildListConditions(params)

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("alunos").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count alunos query: %w", err)
	}

	var total int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Msg("Record store unavailable, degrading aluno list to empty result")
			return []models.Aluno{}, 0, nil
		}
		logger.Error().Err(err).Msg("Error executing count alunos query")
		return nil, 0, fmt.Errorf("failed to count alunos: %w", err)
	}

	if total == 0 {
		return []models.Aluno{}, 0, nil
	}

	querySQL, queryArgs, err := buildPageQuery(r.sb, params).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list alunos query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Msg("Record store unavailable, degrading aluno list to empty result")
			return []models.Aluno{}, 0, nil
		}
		logger.Error().Err(err).Msg("Error executing list alunos query")
		return nil, 0, fmt.Errorf("failed to query alunos: %w", err)
	}

	alunos, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Aluno])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning aluno rows")
		return nil, 0, fmt.Errorf("failed to scan aluno rows: %w", err)
	}

	logger.Debug().Int("page", params.Page).Int("pageSize", params.PageSize).
		Int64("total", total).Int("returned", len(alunos)).Msg("Fetched alunos")
	return alunos, total, nil
}

// GetByID retrieves one aluno.
func (r *AlunoRepository) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	querySQL, args, err := r.sb.Select("*").
		From("alunos").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get aluno query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alunoID", id).Msg("Error executing get aluno query")
		return nil, fmt.Errorf("error getting aluno by ID: %w", err)
	}

	aluno, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Aluno])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlunoNotFound
		}
		logger.Error().Err(err).Int64("alunoID", id).Msg("Error scanning aluno row")
		return nil, fmt.Errorf("error getting aluno by ID: %w", err)
	}

	return aluno, nil
}

// Insert persists a new aluno and returns it with id and timestamps
// assigned by the store.
func (r *AlunoRepository) Insert(ctx context.Context, aluno *models.Aluno) (*models.Aluno, error) {
	querySQL, args, err := r.sb.Insert("alunos").
		SetMap(insertColumns(aluno)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create aluno query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		// Writes never degrade; the caller gets the unavailability sentinel
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Msg("Record store unavailable during aluno create")
			return nil, apperrors.ErrBackendUnavailable
		}
		logger.Error().Err(err).Msg("Error executing create aluno query")
		return nil, fmt.Errorf("error creating aluno: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Aluno])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning created aluno row")
		return nil, fmt.Errorf("error creating aluno: %w", err)
	}

	logger.Info().Int64("alunoID", created.ID).Msg("Aluno created successfully")
	return created, nil
}

// Update applies a partial column patch. updated_at is always refreshed,
// even for an empty patch. Returns the updated record.
func (r *AlunoRepository) Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Aluno, error) {
	querySQL, args, err := r.sb.Update("alunos").
		SetMap(patch).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update aluno query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Int64("alunoID", id).Msg("Record store unavailable during aluno update")
			return nil, apperrors.ErrBackendUnavailable
		}
		logger.Error().Err(err).Int64("alunoID", id).Msg("Error executing update aluno query")
		return nil, fmt.Errorf("error updating aluno ID=%d: %w", id, err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Aluno])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("alunoID", id).Msg("Attempted to update non-existent aluno")
			return nil, apperrors.ErrAlunoNotFound
		}
		logger.Error().Err(err).Int64("alunoID", id).Msg("Error scanning updated aluno row")
		return nil, fmt.Errorf("error updating aluno ID=%d: %w", id, err)
	}

	logger.Info().Int64("alunoID", id).Msg("Aluno updated successfully")
	return updated, nil
}

// Delete permanently removes an aluno. Hard delete, no tombstone.
func (r *AlunoRepository) Delete(ctx context.Context, id int64) error {
	querySQL, args, err := r.sb.Delete("alunos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete aluno query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySQL, args...)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Int64("alunoID", id).Msg("Record store unavailable during aluno delete")
			return apperrors.ErrBackendUnavailable
		}
		logger.Error().Err(err).Int64("alunoID", id).Msg("Error executing delete aluno query")
		return fmt.Errorf("error deleting aluno ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("alunoID", id).Msg("Attempted to delete non-existent aluno")
		return apperrors.ErrAlunoNotFound
	}

	logger.Info().Int64("alunoID", id).Msg("Aluno deleted successfully")
	return nil
}

// Stats computes the dashboard aggregates in two queries: flag counters and
// the breakdown by financial status. Degrades like List when the store is
// unreachable.
func (r *AlunoRepository) Stats(ctx context.Context) (*models.AlunoStats, error) {
	stats := &models.AlunoStats{PorSituacaoFinanceira: map[string]int64{}}

	countersSQL, _, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE tripulante)",
		"COUNT(*) FILTER (WHERE certificado)",
	).From("alunos").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build aluno stats query: %w", err)
	}

	err = r.db.QueryRow(ctx, countersSQL).Scan(&stats.Total, &stats.Tripulantes, &stats.Certificados)
	if err != nil {
		if dberrors.IsUnavailable(err) {
			logger.Error().Err(err).Msg("Record store unavailable, degrading aluno stats to zeros")
			return stats, nil
		}
		logger.Error().Err(err).Msg("Error executing aluno stats query")
		return nil, fmt.Errorf("failed to compute aluno stats: %w", err)
	}

	bySituacaoSQL, _, err := r.sb.Select("situacao_financeira", "COUNT(*)").
		From("alunos").
		GroupBy("situacao_financeira").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build situacao breakdown query: %w", err)
	}

	rows, err := r.db.Query(ctx, bySituacaoSQL)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing situacao breakdown query")
		return nil, fmt.Errorf("failed to compute situacao breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var situacao string
		var count int64
		if err := rows.Scan(&situacao, &count); err != nil {
			return nil, fmt.Errorf("failed to scan situacao breakdown row: %w", err)
		}
		stats.PorSituacaoFinanceira[situacao] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating situacao breakdown rows: %w", err)
	}

	return stats, nil
}

// insertColumns maps a model onto its column values for INSERT. Server
// owned columns (id, created_at, updated_at) come from table defaults.
func insertColumns(a *models.Aluno) map[string]interface{} {
	return map[string]interface{}{
		"nome":      a.Nome,
		"documento": a.Documento,
		"email":     a.Email,
		"pais":      a.Pais,
		"telefone":  a.Telefone,
		"whatsapp":  a.Whatsapp,
		"cidade":    a.Cidade,
		"estado":    a.Estado,

		"turma":               a.Turma,
		"data_confirmacao":    a.DataConfirmacao,
		"situacao_financeira": a.SituacaoFinanceira,
		"periodo_acesso":      a.PeriodoAcesso,
		"situacao_atual":      a.SituacaoAtual,

		"tripulante":          a.Tripulante,
		"pronto":              a.Pronto,
		"certificado":         a.Certificado,
		"stcw":                a.STCW,
		"status_vacina":       a.StatusVacina,
		"nivel_autoavaliacao": a.NivelAutoavaliacao,
		"crew_call":           a.CrewCall,
		"data_crew_call":      a.DataCrewCall,
		"entrevistador":       a.Entrevistador,
		"nivel_nivelamento":   a.NivelNivelamento,
		"observacao":          a.Observacao,

		"data_vencimento":    a.DataVencimento,
		"alerta_vencimento":  a.AlertaVencimento,
		"pagamentos_mensais": a.PagamentosMensais,

		"perfil":             a.Perfil,
		"postou_cv":          a.PostouCV,
		"analise_cv":         a.AnaliseCV,
		"entrevista_marcada": a.EntrevistaMarcada,
		"empresa":            a.Empresa,
		"cargo":              a.Cargo,
		"aprovado":           a.Aprovado,
		"data_embarque":      a.DataEmbarque,
		"salario":            a.Salario,
		"coleta_prova":       a.ColetaProva,
		"tipo_prova":         a.TipoProva,
		"link_arquivo":       a.LinkArquivo,

		"comunidade":    a.Comunidade,
		"participacao":  a.Participacao,
		"instagram":     a.Instagram,
		"close_friends": a.CloseFriends,
		"comentarios":   a.Comentarios,

		"contatos": a.Contatos,
	}
}
