package repositories

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
)

func TestParseBoolFilter(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"TRUE", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ParseBoolFilter(tt.value); got != tt.want {
			t.Errorf("ParseBoolFilter(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func renderConditions(t *testing.T, params ListParams) (string, []interface{}) {
	t.Helper()
	sql, args, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("*").From("alunos").Where(buildListConditions(params)).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	return sql, args
}

func TestBuildListConditionsEmpty(t *testing.T) {
	sql, args := renderConditions(t, ListParams{})
	// Empty And renders a tautology, matching every row
	if !strings.Contains(sql, "(1=1)") {
		t.Errorf("expected tautology for empty conditions, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildListConditionsSearch(t *testing.T) {
	sql, args := renderConditions(t, ListParams{Search: "  silva  "})

	for _, col := range []string{"nome", "email", "documento"} {
		if !strings.Contains(sql, col+" ILIKE") {
			t.Errorf("expected ILIKE on %s, got %q", col, sql)
		}
	}
	if !strings.Contains(sql, " OR ") {
		t.Errorf("search terms should be ORed, got %q", sql)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	for _, arg := range args {
		if arg != "%silva%" {
			t.Errorf("search should be trimmed and wrapped, got %v", arg)
		}
	}
}

func TestBuildListConditionsTextFilter(t *testing.T) {
	sql, args := renderConditions(t, ListParams{
		Filters: map[string]string{"turma": "Turma 10"},
	})

	if !strings.Contains(sql, "turma = ") {
		t.Errorf("expected equality on turma, got %q", sql)
	}
	if len(args) != 1 || args[0] != "Turma 10" {
		t.Errorf("expected [Turma 10], got %v", args)
	}
}

func TestBuildListConditionsBoolCoercion(t *testing.T) {
	_, args := renderConditions(t, ListParams{
		Filters: map[string]string{"tripulante": "true"},
	})
	if len(args) != 1 || args[0] != true {
		t.Errorf("tripulante=true should bind boolean true, got %v", args)
	}

	_, args = renderConditions(t, ListParams{
		Filters: map[string]string{"certificado": "1"},
	})
	if len(args) != 1 || args[0] != false {
		t.Errorf("certificado=1 should coerce to false, got %v", args)
	}
}

func TestBuildPageQueryWindow(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	tests := []struct {
		name           string
		page, pageSize int
		wantWindow     string
	}{
		{"first page", 1, 10, "LIMIT 10 OFFSET 0"},
		{"third page", 3, 10, "LIMIT 10 OFFSET 20"},
		{"odd size", 2, 25, "LIMIT 25 OFFSET 25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := buildPageQuery(sb, ListParams{Page: tt.page, PageSize: tt.pageSize}).ToSql()
			if err != nil {
				t.Fatalf("ToSql: %v", err)
			}
			if !strings.Contains(sql, tt.wantWindow) {
				t.Errorf("expected %q in %q", tt.wantWindow, sql)
			}
		})
	}
}

func TestBuildPageQueryStableOrdering(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, _, err := buildPageQuery(sb, ListParams{Page: 1, PageSize: 10}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	// The id tiebreak keeps rows with equal created_at in a fixed order, so
	// consecutive pages never skip or repeat a row
	if !strings.Contains(sql, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("expected stable ordering clause, got %q", sql)
	}
}

func TestBuildPageQueryCarriesPredicate(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, args, err := buildPageQuery(sb, ListParams{
		Page:     2,
		PageSize: 10,
		Filters:  map[string]string{"turma": "Turma 10"},
	}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(sql, "turma = ") {
		t.Errorf("page query must keep the list predicate, got %q", sql)
	}
	if len(args) != 1 || args[0] != "Turma 10" {
		t.Errorf("expected [Turma 10], got %v", args)
	}
	if !strings.Contains(sql, "LIMIT 10 OFFSET 10") {
		t.Errorf("expected window for page 2, got %q", sql)
	}
}

func TestBuildListConditionsConjunction(t *testing.T) {
	sql, args := renderConditions(t, ListParams{
		Search: "ana",
		Filters: map[string]string{
			"turma": "Turma 10",
		},
	})

	if !strings.Contains(sql, " AND ") {
		t.Errorf("search and filters should be ANDed, got %q", sql)
	}
	if len(args) != 4 {
		t.Errorf("expected 4 args (3 search + 1 filter), got %d", len(args))
	}
}
