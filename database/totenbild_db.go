package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/totenbilder/models"
)

const (
	totenbilderTable = "totenbilder a"
	imagesJoin       = "totenbilder_bilder b ON a.nid = b.nid"
)

// likeEscaper escapes LIKE wildcards; '!' works as ESCAPE character in MySQL and SQLite alike.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsAny(columns []string, fragment string) sq.Or {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"
	or := sq.Or{}
	for _, col := range columns {
		or = append(or, sq.Expr("LOWER(a."+col+") LIKE ? ESCAPE '!'", pattern))
	}
	return or
}

// filterConditions translates the listing filter into WHERE conditions.
// Only criteria that are present contribute.
func filterConditions(f models.SearchFilter) sq.And {
	f = f.Normalized()
	conds := sq.And{}
	if f.Name != "" {
		conds = append(conds, containsAny(models.NameColumns, f.Name))
	}
	if f.Location != "" {
		conds = append(conds, containsAny(models.LocationColumns, f.Location))
	}
	if f.BirthYear != nil {
		conds = append(conds, sq.Eq{"a.Geburtsjahr": *f.BirthYear})
	}
	if f.DeathYear != nil {
		conds = append(conds, sq.Eq{"a.Sterbejahr": *f.DeathYear})
	}
	return conds
}

func applyFilter(b sq.SelectBuilder, f models.SearchFilter) sq.SelectBuilder {
	if conds := filterConditions(f); len(conds) > 0 {
		return b.Where(conds)
	}
	return b
}

func orderClauses(keys []models.SortKey) []string {
	clauses := make([]string, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, k.SQL("a"))
	}
	return clauses
}

// CountTotenbilder counts the distinct persons matching the filter.
func CountTotenbilder(ctx context.Context, db Querier, f models.SearchFilter) (int, error) {
	queryBuilder := applyFilter(psql.Select("COUNT(DISTINCT a.nid)").From(totenbilderTable), f)
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CountTotenbilder: %w", err)
	}
	var total int
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to execute CountTotenbilder query: %w", err)
	}
	return total, nil
}

// ListTotenbildIDs selects one page of person identifiers. Paging over the
// plain table keeps the join's row multiplication out of LIMIT/OFFSET.
func ListTotenbildIDs(ctx context.Context, db Querier, f models.SearchFilter, order []models.SortKey, limit, offset int) ([]int64, error) {
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("invalid page window limit=%d offset=%d", limit, offset)
	}
	queryBuilder := applyFilter(psql.Select("a.nid").From(totenbilderTable), f).
		OrderBy(orderClauses(order)...).
		Limit(uint64(limit)).
		Offset(uint64(offset))
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListTotenbildIDs: %w", err)
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListTotenbildIDs query: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan totenbild id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totenbild ids: %w", err)
	}
	return ids, nil
}

// idOrderClause orders rows by the position of a.nid in ids.
// The identifiers are integers read back from the database, so they are inlined.
func idOrderClause(ids []int64) string {
	var b strings.Builder
	b.WriteString("CASE a.nid")
	for i, id := range ids {
		b.WriteString(" WHEN ")
		b.WriteString(strconv.FormatInt(id, 10))
		b.WriteString(" THEN ")
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteString(" END")
	return b.String()
}

// GetTotenbilderByIDs loads full records with images for exactly the given
// identifiers, returned in the order of ids.
func GetTotenbilderByIDs(ctx context.Context, db Querier, ids []int64) ([]models.Totenbild, error) {
	if len(ids) == 0 {
		return []models.Totenbild{}, nil
	}
	queryBuilder := psql.Select(joinedColumns()...).
		From(totenbilderTable).
		LeftJoin(imagesJoin).
		Where(sq.Eq{"a.nid": ids}).
		OrderBy(idOrderClause(ids), "b.delta ASC")
	return queryJoined(ctx, db, queryBuilder, "GetTotenbilderByIDs")
}

// ListTotenbilderDiedOn loads every person who died on day.month of any year.
// order must end in a unique key so each person's rows stay adjacent.
func ListTotenbilderDiedOn(ctx context.Context, db Querier, day, month int, order []models.SortKey) ([]models.Totenbild, error) {
	queryBuilder := psql.Select(joinedColumns()...).
		From(totenbilderTable).
		LeftJoin(imagesJoin).
		Where(sq.Eq{"a.Sterbemonat": month, "a.Sterbetag": day}).
		OrderBy(orderClauses(order)...).
		OrderBy("b.delta ASC")
	return queryJoined(ctx, db, queryBuilder, "ListTotenbilderDiedOn")
}

// GetTotenbildByID returns sql.ErrNoRows when no person has that nid.
func GetTotenbildByID(ctx context.Context, db Querier, nid int64) (models.Totenbild, error) {
	return getOne(ctx, db, sq.Eq{"a.nid": nid}, "GetTotenbildByID")
}

// GetTotenbildByAlias returns sql.ErrNoRows when no person has that alias.
func GetTotenbildByAlias(ctx context.Context, db Querier, alias string) (models.Totenbild, error) {
	return getOne(ctx, db, sq.Eq{"a.alias": alias}, "GetTotenbildByAlias")
}

func getOne(ctx context.Context, db Querier, where sq.Eq, op string) (models.Totenbild, error) {
	queryBuilder := psql.Select(joinedColumns()...).
		From(totenbilderTable).
		LeftJoin(imagesJoin).
		Where(where).
		OrderBy("a.nid ASC", "b.delta ASC")
	records, err := queryJoined(ctx, db, queryBuilder, op)
	if err != nil {
		return models.Totenbild{}, err
	}
	if len(records) == 0 {
		return models.Totenbild{}, sql.ErrNoRows
	}
	return records[0], nil
}

func queryJoined(ctx context.Context, db Querier, queryBuilder sq.SelectBuilder, op string) ([]models.Totenbild, error) {
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for %s: %w", op, err)
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", op, err)
	}
	joined, err := collectJoinedRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return AssembleTotenbilder(joined), nil
}
