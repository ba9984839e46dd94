package models

import "time"

// Financial status values the UI offers. The column itself is free text.
const (
	SituacaoEmDia    = "Em dia"
	SituacaoPendente = "Pendente"
	SituacaoAtrasado = "Atrasado"
)

// Contato is an emergency/reference contact attached to an aluno.
// The list is stored as JSONB and carries no validation schema.
type Contato struct {
	Nome     string `json:"nome"`
	Relacao  string `json:"relacao"`
	Telefone string `json:"telefone"`
}

// Aluno is the student/crew-trainee record, the system's sole business
// entity. Field names follow the wire contract of the dashboard client.
type Aluno struct {
	ID int64 `db:"id" json:"id"`

	// Identification
	Nome      string `db:"nome" json:"nome"`
	Documento string `db:"documento" json:"documento"`
	Email     string `db:"email" json:"email"`
	Pais      string `db:"pais" json:"pais"`
	Telefone  string `db:"telefone" json:"telefone"`
	Whatsapp  string `db:"whatsapp" json:"whatsapp"`
	Cidade    string `db:"cidade" json:"cidade"`
	Estado    string `db:"estado" json:"estado"`

	// Enrollment
	Turma              string `db:"turma" json:"turma"`
	DataConfirmacao    Date   `db:"data_confirmacao" json:"data_confirmacao"`
	SituacaoFinanceira string `db:"situacao_financeira" json:"situacao_financeira"`
	PeriodoAcesso      string `db:"periodo_acesso" json:"periodo_acesso"`
	SituacaoAtual      string `db:"situacao_atual" json:"situacao_atual"`

	// Academic
	Tripulante         bool   `db:"tripulante" json:"tripulante"`
	Pronto             bool   `db:"pronto" json:"pronto"`
	Certificado        bool   `db:"certificado" json:"certificado"`
	STCW               bool   `db:"stcw" json:"stcw"`
	StatusVacina       string `db:"status_vacina" json:"status_vacina"`
	NivelAutoavaliacao string `db:"nivel_autoavaliacao" json:"nivel_autoavaliacao"`
	CrewCall           bool   `db:"crew_call" json:"crew_call"`
	DataCrewCall       *Date  `db:"data_crew_call" json:"data_crew_call,omitempty"`
	Entrevistador      string `db:"entrevistador" json:"entrevistador"`
	NivelNivelamento   string `db:"nivel_nivelamento" json:"nivel_nivelamento"`
	Observacao         string `db:"observacao" json:"observacao"`

	// Financial
	DataVencimento    *Date           `db:"data_vencimento" json:"data_vencimento,omitempty"`
	AlertaVencimento  *Date           `db:"alerta_vencimento" json:"alerta_vencimento,omitempty"`
	PagamentosMensais map[string]bool `db:"pagamentos_mensais" json:"pagamentos_mensais"`

	// Professional
	Perfil            string  `db:"perfil" json:"perfil"`
	PostouCV          bool    `db:"postou_cv" json:"postou_cv"`
	AnaliseCV         string  `db:"analise_cv" json:"analise_cv"`
	EntrevistaMarcada bool    `db:"entrevista_marcada" json:"entrevista_marcada"`
	Empresa           string  `db:"empresa" json:"empresa"`
	Cargo             string  `db:"cargo" json:"cargo"`
	Aprovado          bool    `db:"aprovado" json:"aprovado"`
	DataEmbarque      *Date   `db:"data_embarque" json:"data_embarque,omitempty"`
	Salario           float64 `db:"salario" json:"salario"`
	ColetaProva       string  `db:"coleta_prova" json:"coleta_prova"`
	TipoProva         string  `db:"tipo_prova" json:"tipo_prova"`
	LinkArquivo       string  `db:"link_arquivo" json:"link_arquivo"`

	// Community
	Comunidade   bool   `db:"comunidade" json:"comunidade"`
	Participacao string `db:"participacao" json:"participacao"`
	Instagram    string `db:"instagram" json:"instagram"`
	CloseFriends bool   `db:"close_friends" json:"close_friends"`
	Comentarios  string `db:"comentarios" json:"comentarios"`

	// Free-form contact list
	Contatos []Contato `db:"contatos" json:"contatos"`

	// Auditing, server-set
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AlunoStats holds the dashboard aggregates.
type AlunoStats struct {
	Total                 int64            `json:"total"`
	Tripulantes           int64            `json:"tripulantes"`
	Certificados          int64            `json:"certificados"`
	PorSituacaoFinanceira map[string]int64 `json:"por_situacao_financeira"`
}
