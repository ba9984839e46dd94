package dto

import "github.com/crewboard/crewboard/internal/app/models"

// CreateAlunoRequest is the POST /alunos payload. Unknown JSON fields are
// accepted and ignored (permissive schema). Validation tags are resolved
// against the json names by the validation package.
type CreateAlunoRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Documento string `json:"documento" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Pais      string `json:"pais" validate:"required"`
	Telefone  string `json:"telefone" validate:"required"`
	Whatsapp  string `json:"whatsapp"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`

	Turma              string      `json:"turma" validate:"required"`
	DataConfirmacao    models.Date `json:"data_confirmacao" validate:"required"`
	SituacaoFinanceira string      `json:"situacao_financeira" validate:"required"`
	PeriodoAcesso      string      `json:"periodo_acesso" validate:"required"`
	SituacaoAtual      string      `json:"situacao_atual"`

	Tripulante         bool         `json:"tripulante"`
	Pronto             bool         `json:"pronto"`
	Certificado        bool         `json:"certificado"`
	STCW               bool         `json:"stcw"`
	StatusVacina       string       `json:"status_vacina"`
	NivelAutoavaliacao string       `json:"nivel_autoavaliacao"`
	CrewCall           bool         `json:"crew_call"`
	DataCrewCall       *models.Date `json:"data_crew_call"`
	Entrevistador      string       `json:"entrevistador"`
	NivelNivelamento   string       `json:"nivel_nivelamento"`
	Observacao         string       `json:"observacao"`

	DataVencimento    *models.Date    `json:"data_vencimento"`
	AlertaVencimento  *models.Date    `json:"alerta_vencimento"`
	PagamentosMensais map[string]bool `json:"pagamentos_mensais"`

	Perfil            string       `json:"perfil"`
	PostouCV          bool         `json:"postou_cv"`
	AnaliseCV         string       `json:"analise_cv"`
	EntrevistaMarcada bool         `json:"entrevista_marcada"`
	Empresa           string       `json:"empresa"`
	Cargo             string       `json:"cargo"`
	Aprovado          bool         `json:"aprovado"`
	DataEmbarque      *models.Date `json:"data_embarque"`
	Salario           float64      `json:"salario" validate:"gte=0"`
	ColetaProva       string       `json:"coleta_prova"`
	TipoProva         string       `json:"tipo_prova"`
	LinkArquivo       string       `json:"link_arquivo"`

	Comunidade   bool   `json:"comunidade"`
	Participacao string `json:"participacao"`
	Instagram    string `json:"instagram"`
	CloseFriends bool   `json:"close_friends"`
	Comentarios  string `json:"comentarios"`

	Contatos []models.Contato `json:"contatos"`
}

// ToModel maps the request onto a fresh Aluno. Server-assigned fields (id,
// timestamps) stay zero; the repository fills them on insert.
func (r *CreateAlunoRequest) ToModel() *models.Aluno {
	aluno := &models.Aluno{
		Nome:      r.Nome,
		Documento: r.Documento,
		Email:     r.Email,
		Pais:      r.Pais,
		Telefone:  r.Telefone,
		Whatsapp:  r.Whatsapp,
		Cidade:    r.Cidade,
		Estado:    r.Estado,

		Turma:              r.Turma,
		DataConfirmacao:    r.DataConfirmacao,
		SituacaoFinanceira: r.SituacaoFinanceira,
		PeriodoAcesso:      r.PeriodoAcesso,
		SituacaoAtual:      r.SituacaoAtual,

		Tripulante:         r.Tripulante,
		Pronto:             r.Pronto,
		Certificado:        r.Certificado,
		STCW:               r.STCW,
		StatusVacina:       r.StatusVacina,
		NivelAutoavaliacao: r.NivelAutoavaliacao,
		CrewCall:           r.CrewCall,
		DataCrewCall:       r.DataCrewCall,
		Entrevistador:      r.Entrevistador,
		NivelNivelamento:   r.NivelNivelamento,
		Observacao:         r.Observacao,

		DataVencimento:    r.DataVencimento,
		AlertaVencimento:  r.AlertaVencimento,
		PagamentosMensais: r.PagamentosMensais,

		Perfil:            r.Perfil,
		PostouCV:          r.PostouCV,
		AnaliseCV:         r.AnaliseCV,
		EntrevistaMarcada: r.EntrevistaMarcada,
		Empresa:           r.Empresa,
		Cargo:             r.Cargo,
		Aprovado:          r.Aprovado,
		DataEmbarque:      r.DataEmbarque,
		Salario:           r.Salario,
		ColetaProva:       r.ColetaProva,
		TipoProva:         r.TipoProva,
		LinkArquivo:       r.LinkArquivo,

		Comunidade:   r.Comunidade,
		Participacao: r.Participacao,
		Instagram:    r.Instagram,
		CloseFriends: r.CloseFriends,
		Comentarios:  r.Comentarios,

		Contatos: r.Contatos,
	}

	if aluno.PagamentosMensais == nil {
		aluno.PagamentosMensais = map[string]bool{}
	}
	if aluno.Contatos == nil {
		aluno.Contatos = []models.Contato{}
	}
	return aluno
}

// UpdateAlunoRequest is the PUT /alunos/:id payload. Every field is a
// pointer: nil means "not supplied, keep the stored value". There is no way
// to clear an optional date back to null through this payload; that
// mirrors the partial-update contract.
type UpdateAlunoRequest struct {
	Nome      *string `json:"nome" validate:"omitempty,min=1"`
	Documento *string `json:"documento" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Pais      *string `json:"pais" validate:"omitempty,min=1"`
	Telefone  *string `json:"telefone" validate:"omitempty,min=1"`
	Whatsapp  *string `json:"whatsapp"`
	Cidade    *string `json:"cidade"`
	Estado    *string `json:"estado"`

	Turma              *string      `json:"turma" validate:"omitempty,min=1"`
	DataConfirmacao    *models.Date `json:"data_confirmacao"`
	SituacaoFinanceira *string      `json:"situacao_financeira" validate:"omitempty,min=1"`
	PeriodoAcesso      *string      `json:"periodo_acesso" validate:"omitempty,min=1"`
	SituacaoAtual      *string      `json:"situacao_atual"`

	Tripulante         *bool        `json:"tripulante"`
	Pronto             *bool        `json:"pronto"`
	Certificado        *bool        `json:"certificado"`
	STCW               *bool        `json:"stcw"`
	StatusVacina       *string      `json:"status_vacina"`
	NivelAutoavaliacao *string      `json:"nivel_autoavaliacao"`
	CrewCall           *bool        `json:"crew_call"`
	DataCrewCall       *models.Date `json:"data_crew_call"`
	Entrevistador      *string      `json:"entrevistador"`
	NivelNivelamento   *string      `json:"nivel_nivelamento"`
	Observacao         *string      `json:"observacao"`

	DataVencimento    *models.Date     `json:"data_vencimento"`
	AlertaVencimento  *models.Date     `json:"alerta_vencimento"`
	PagamentosMensais *map[string]bool `json:"pagamentos_mensais"`

	Perfil            *string      `json:"perfil"`
	PostouCV          *bool        `json:"postou_cv"`
	AnaliseCV         *string      `json:"analise_cv"`
	EntrevistaMarcada *bool        `json:"entrevista_marcada"`
	Empresa           *string      `json:"empresa"`
	Cargo             *string      `json:"cargo"`
	Aprovado          *bool        `json:"aprovado"`
	DataEmbarque      *models.Date `json:"data_embarque"`
	Salario           *float64     `json:"salario" validate:"omitempty,gte=0"`
	ColetaProva       *string      `json:"coleta_prova"`
	TipoProva         *string      `json:"tipo_prova"`
	LinkArquivo       *string      `json:"link_arquivo"`

	Comunidade   *bool   `json:"comunidade"`
	Participacao *string `json:"participacao"`
	Instagram    *string `json:"instagram"`
	CloseFriends *bool   `json:"close_friends"`
	Comentarios  *string `json:"comentarios"`

	Contatos *[]models.Contato `json:"contatos"`
}

// Patch returns the column map of the supplied fields only, ready for a
// SQL SET clause. updated_at is owned by the repository, not the payload.
func (r *UpdateAlunoRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}

	setString := func(col string, v *string) {
		if v != nil {
			patch[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			patch[col] = *v
		}
	}
	setDate := func(col string, v *models.Date) {
		if v != nil {
			patch[col] = *v
		}
	}

	setString("nome", r.Nome)
	setString("documento", r.Documento)
	setString("email", r.Email)
	setString("pais", r.Pais)
	setString("telefone", r.Telefone)
	setString("whatsapp", r.Whatsapp)
	setString("cidade", r.Cidade)
	setString("estado", r.Estado)

	setString("turma", r.Turma)
	setDate("data_confirmacao", r.DataConfirmacao)
	setString("situacao_financeira", r.SituacaoFinanceira)
	setString("periodo_acesso", r.PeriodoAcesso)
	setString("situacao_atual", r.SituacaoAtual)

	setBool("tripulante", r.Tripulante)
	setBool("pronto", r.Pronto)
	setBool("certificado", r.Certificado)
	setBool("stcw", r.STCW)
	setString("status_vacina", r.StatusVacina)
	setString("nivel_autoavaliacao", r.NivelAutoavaliacao)
	setBool("crew_call", r.CrewCall)
	setDate("data_crew_call", r.DataCrewCall)
	setString("entrevistador", r.Entrevistador)
	setString("nivel_nivelamento", r.NivelNivelamento)
	setString("observacao", r.Observacao)

	setDate("data_vencimento", r.DataVencimento)
	setDate("alerta_vencimento", r.AlertaVencimento)
	if r.PagamentosMensais != nil {
		patch["pagamentos_mensais"] = *r.PagamentosMensais
	}

	setString("perfil", r.Perfil)
	setBool("postou_cv", r.PostouCV)
	setString("analise_cv", r.AnaliseCV)
	setBool("entrevista_marcada", r.EntrevistaMarcada)
	setString("empresa", r.Empresa)
	setString("cargo", r.Cargo)
	setBool("aprovado", r.Aprovado)
	setDate("data_embarque", r.DataEmbarque)
	if r.Salario != nil {
		patch["salario"] = *r.Salario
	}
	setString("coleta_prova", r.ColetaProva)
	setString("tipo_prova", r.TipoProva)
	setString("link_arquivo", r.LinkArquivo)

	setBool("comunidade", r.Comunidade)
	setString("participacao", r.Participacao)
	setString("instagram", r.Instagram)
	setBool("close_friends", r.CloseFriends)
	setString("comentarios", r.Comentarios)

	if r.Contatos != nil {
		patch["contatos"] = *r.Contatos
	}

	return patch
}
